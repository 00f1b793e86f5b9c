package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mobiforge-labs/mobiforge/internal/artifacts"
	"github.com/mobiforge-labs/mobiforge/internal/gitops"
	"github.com/mobiforge-labs/mobiforge/internal/render"
	"github.com/mobiforge-labs/mobiforge/internal/scaffold"
)

// Stage tracks how far the bootstrap progressed. Stages only move forward.
type Stage int

const (
	StageUninitialized Stage = iota
	StageDirStructureCreated
	StageArtifactsWritten
	StageVCSInitialized
	StageStaged
	StageCommitted
	StageRemoteConfigured
)

var stageNames = map[Stage]string{
	StageUninitialized:       "UNINITIALIZED",
	StageDirStructureCreated: "DIR_STRUCTURE_CREATED",
	StageArtifactsWritten:    "ARTIFACTS_WRITTEN",
	StageVCSInitialized:      "VCS_INITIALIZED",
	StageStaged:              "STAGED",
	StageCommitted:           "COMMITTED",
	StageRemoteConfigured:    "REMOTE_CONFIGURED",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Reached reports whether the bootstrap got at least as far as target.
func (s Stage) Reached(target Stage) bool { return s >= target }

// CommitMessage is the fixed message for the initial commit.
const CommitMessage = "Initial commit - Mobile Access Setup"

// RemoteName is the single remote configured on the new repository.
const RemoteName = "origin"

// Handle is the bootstrapped repository: its root path plus how far the
// state machine progressed. It is created once per invocation and read by
// the reporter; it is never rolled back.
type Handle struct {
	Root      string
	RemoteURL string
	Stage     Stage
	Err       error
	Warnings  []string
}

func (h *Handle) warnf(format string, args ...any) {
	h.Warnings = append(h.Warnings, fmt.Sprintf(format, args...))
}

// Run executes the bootstrap sequence against root: directory skeleton,
// artifact generation, then git init/add/commit/remote-add through git.
// If remoteURL is empty the remote stage is skipped and the handle stops at
// COMMITTED. Progress lines go to w; the returned handle records the stage
// reached, the halting error if any, and accumulated warnings.
func Run(w io.Writer, root string, tree scaffold.TreeSpec, arts []artifacts.Artifact, ctx render.Context, remoteURL string, git gitops.Runner) *Handle {
	h := &Handle{Root: root, RemoteURL: remoteURL}

	if err := os.MkdirAll(root, 0755); err != nil {
		h.Err = fmt.Errorf("creating repository root: %w", err)
		return h
	}

	fmt.Fprintln(w, "Creating directory structure:")
	for _, res := range scaffold.ExpandTree(w, root, tree) {
		if res.Err != nil {
			h.warnf("directory %s: %v", res.Path, res.Err)
		}
	}
	h.Stage = StageDirStructureCreated

	fmt.Fprintln(w, "Generating artifacts:")
	for _, a := range arts {
		if err := writeArtifact(root, a, ctx); err != nil {
			h.warnf("artifact %s: %v", a.RelPath, err)
			fmt.Fprintf(w, "  [WARN] %s: %v\n", a.RelPath, err)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s\n", a.RelPath)
	}
	h.Stage = StageArtifactsWritten

	if err := git.Init(root); err != nil {
		h.Err = fmt.Errorf("initializing repository: %w", err)
		return h
	}
	h.Stage = StageVCSInitialized

	if err := git.Add(root); err != nil {
		h.Err = fmt.Errorf("staging files: %w", err)
		return h
	}
	h.Stage = StageStaged

	if err := git.Commit(root, CommitMessage); err != nil {
		h.Err = fmt.Errorf("committing: %w", err)
		return h
	}
	h.Stage = StageCommitted

	if remoteURL == "" {
		return h
	}
	if err := git.AddRemote(root, RemoteName, remoteURL); err != nil {
		h.Err = fmt.Errorf("adding remote: %w", err)
		return h
	}
	h.Stage = StageRemoteConfigured

	return h
}

// writeArtifact renders one artifact and lands it atomically under root.
// A render failure writes nothing to disk.
func writeArtifact(root string, a artifacts.Artifact, ctx render.Context) error {
	content, err := a.Render(ctx)
	if err != nil {
		return err
	}

	path := filepath.Join(root, a.RelPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if res := scaffold.WriteFile(path, content, a.Executable); res.Err != nil {
		return res.Err
	}
	return nil
}
