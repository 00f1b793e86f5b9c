//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	WorkspaceDir string // MOBIFORGE_WORKSPACE — where repositories land
}

// setupTestEnv creates an isolated workspace and points the environment at
// it so the run never touches the real home directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{WorkspaceDir: t.TempDir()}
	t.Setenv("MOBIFORGE_WORKSPACE", env.WorkspaceDir)

	// Commit identity so git commit works without user-level config.
	t.Setenv("GIT_AUTHOR_NAME", "integration-test")
	t.Setenv("GIT_AUTHOR_EMAIL", "integration@test.local")
	t.Setenv("GIT_COMMITTER_NAME", "integration-test")
	t.Setenv("GIT_COMMITTER_EMAIL", "integration@test.local")

	return env
}

// requireGit skips the test when git is not on PATH.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
