// Package scaffold materializes repository skeletons on disk. It provides
// crash-safe single-file writes (write-to-temp-then-rename) and best-effort
// expansion of a declarative directory tree into directories, per-directory
// documentation, and version-control tracking markers. A target path either
// ends up with its full final content or is left exactly as it was.
package scaffold
