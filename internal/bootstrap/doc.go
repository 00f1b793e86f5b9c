// Package bootstrap turns an empty target directory into a version-controlled
// scaffolded repository. Progress is a linear state machine; every stage is
// attempted once, a failure halts where it happened, and nothing already on
// disk is rolled back. Per-directory and per-artifact problems are recorded
// as warnings and do not stop the run; version-control failures do.
package bootstrap
