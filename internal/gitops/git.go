package gitops

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds each git invocation. A hung subprocess halts the
// whole run otherwise, since nothing else is concurrent.
const DefaultTimeout = 60 * time.Second

// Runner is the version-control capability the bootstrapper depends on.
type Runner interface {
	Init(root string) error
	Add(root string) error
	Commit(root, message string) error
	AddRemote(root, name, url string) error
}

// ExecRunner runs real git subprocesses with a per-command timeout.
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner returns an ExecRunner with the default timeout.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Timeout: DefaultTimeout}
}

func (r *ExecRunner) Init(root string) error {
	return r.run(root, "init")
}

func (r *ExecRunner) Add(root string) error {
	return r.run(root, "add", ".")
}

func (r *ExecRunner) Commit(root, message string) error {
	return r.run(root, "commit", "-m", message)
}

func (r *ExecRunner) AddRemote(root, name, url string) error {
	return r.run(root, "remote", "add", name, url)
}

func (r *ExecRunner) run(root string, args ...string) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = root
	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("git %s timed out after %s", args[0], timeout)
	}
	if err != nil {
		return fmt.Errorf("git %s: %w\n%s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// EnsureGit checks that git is available on PATH.
func EnsureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}

// Version returns the installed git version string, e.g. "2.39.2".
func Version() (string, error) {
	output, err := exec.Command("git", "version").Output()
	if err != nil {
		return "", fmt.Errorf("running git version: %w", err)
	}
	return ParseVersionOutput(string(output))
}

// ParseVersionOutput extracts the version number from `git version` output
// of the form "git version 2.39.2" or "git version 2.39.2.windows.1".
func ParseVersionOutput(output string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return "", fmt.Errorf("unexpected git version output %q", strings.TrimSpace(output))
	}

	// Keep only the leading numeric dotted segments.
	parts := strings.Split(fields[2], ".")
	numeric := make([]string, 0, 3)
	for _, p := range parts {
		if p == "" || strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
			break
		}
		numeric = append(numeric, p)
		if len(numeric) == 3 {
			break
		}
	}
	if len(numeric) < 2 {
		return "", fmt.Errorf("unparseable git version %q", fields[2])
	}
	return strings.Join(numeric, "."), nil
}
