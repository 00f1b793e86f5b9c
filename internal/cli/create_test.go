package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mobiforge-labs/mobiforge/internal/config"
)

func TestResolveWorkspace_FlagWins(t *testing.T) {
	createWorkspace = "/tmp/flagged"
	defer func() { createWorkspace = "" }()
	t.Setenv("MOBIFORGE_WORKSPACE", "/srv/forge")

	got, err := resolveWorkspace()
	if err != nil {
		t.Fatalf("resolveWorkspace failed: %v", err)
	}
	if got != "/tmp/flagged" {
		t.Errorf("workspace = %q, want /tmp/flagged", got)
	}
}

func TestResolveWorkspace_EnvFallback(t *testing.T) {
	createWorkspace = ""
	t.Setenv("MOBIFORGE_WORKSPACE", "/srv/forge")
	config.Load()

	got, err := resolveWorkspace()
	if err != nil {
		t.Fatalf("resolveWorkspace failed: %v", err)
	}
	if got != "/srv/forge" {
		t.Errorf("workspace = %q, want /srv/forge", got)
	}
}

func TestResolveWorkspace_DefaultUnderHome(t *testing.T) {
	createWorkspace = ""
	t.Setenv("MOBIFORGE_WORKSPACE", "")
	config.Load()

	got, err := resolveWorkspace()
	if err != nil {
		t.Fatalf("resolveWorkspace failed: %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join(".mobiforge", "workspace")) {
		t.Errorf("workspace = %q, want suffix .mobiforge/workspace", got)
	}
}
