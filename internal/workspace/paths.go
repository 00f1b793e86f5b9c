package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mobiforge-labs/mobiforge/internal/branding"
	"github.com/mobiforge-labs/mobiforge/internal/report"
)

// WorkspaceDir is the directory name under the CLI home dir.
const WorkspaceDir = "workspace"

// Root returns the workspace directory where repositories are scaffolded.
// It checks the MOBIFORGE_WORKSPACE environment variable first, then falls
// back to ~/.mobiforge/workspace.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("WORKSPACE")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), WorkspaceDir), nil
}

// RepoRoot returns the target root for a repository inside the workspace.
func RepoRoot(root, repoName string) string {
	return filepath.Join(root, repoName)
}

// ReportPath returns where the completion report is written.
func ReportPath(root string) string {
	return filepath.Join(root, report.FileName)
}

// InstructionsPath returns where the setup instructions document is written.
func InstructionsPath(root, fileName string) string {
	return filepath.Join(root, fileName)
}
