// Package workspace resolves where scaffolded repositories live on disk,
// along with the run outputs written next to them (the completion report and
// the setup instructions document).
package workspace
