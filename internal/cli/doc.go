// Package cli wires the Cobra command tree for the mobiforge binary:
// repository scaffolding (create repo), environment diagnostics (doctor),
// user settings (config), and build info (version).
package cli
