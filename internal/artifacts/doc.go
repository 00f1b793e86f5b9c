// Package artifacts declares the fixed repository skeleton and the set of
// generated files (README, dependency manifest, setup script, server stub,
// dashboard configuration and template, setup documentation). Definitions are
// static process-wide data; rendering happens against an explicit context so
// artifacts never depend on each other's output.
package artifacts
