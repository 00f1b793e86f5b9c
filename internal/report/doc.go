// Package report aggregates the outcome of a bootstrap run into an immutable
// completion record. Building a report is pure: it reads only the handle and
// the configuration tables, never the filesystem. A report is produced for
// failed runs too, with flags reflecting exactly the stages reached.
package report
