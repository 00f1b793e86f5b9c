// Package platform provides cross-platform permission management. On Unix
// systems it uses chmod directly. On Windows permission bits are a no-op
// because the filesystem does not support them.
package platform
