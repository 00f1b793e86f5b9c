// Package gitops wraps the external git commands the bootstrapper needs:
// init, add, commit, and remote-add. The Runner interface keeps the surface
// narrow so the bootstrap state machine can be driven by a fake in tests.
// Exit status is the only success signal; command output is carried in error
// messages for diagnosis but never parsed.
package gitops
