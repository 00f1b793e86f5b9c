package artifacts

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mobiforge-labs/mobiforge/internal/profile"
	"github.com/mobiforge-labs/mobiforge/internal/render"
)

func testContext(t *testing.T) (profile.Profile, render.Context) {
	t.Helper()
	p, err := profile.Default()
	if err != nil {
		t.Fatal(err)
	}
	return p, p.RenderContext("https://github.com", "2025-01-01T00:00:00Z")
}

func TestAll_EveryArtifactRenders(t *testing.T) {
	p, ctx := testContext(t)

	for _, a := range All(p) {
		content, err := a.Render(ctx)
		if err != nil {
			t.Errorf("%s failed to render: %v", a.RelPath, err)
			continue
		}
		if len(content) == 0 {
			t.Errorf("%s rendered empty", a.RelPath)
		}
	}
}

func TestAll_ExecutableFlags(t *testing.T) {
	p, _ := testContext(t)

	want := map[string]bool{
		"README.md":                           false,
		"requirements.txt":                    false,
		"mobile_setup.sh":                     true,
		"mobile_server.py":                    true,
		"config/mobile_dashboard_config.json": false,
		"templates/mobile_dashboard.html":     false,
		"docs/mobile_setup.md":                false,
	}

	arts := All(p)
	if len(arts) != len(want) {
		t.Fatalf("got %d artifacts, want %d", len(arts), len(want))
	}
	for _, a := range arts {
		exec, ok := want[a.RelPath]
		if !ok {
			t.Errorf("unexpected artifact %s", a.RelPath)
			continue
		}
		if a.Executable != exec {
			t.Errorf("%s executable = %v, want %v", a.RelPath, a.Executable, exec)
		}
	}
}

func TestReadme_ContainsCloneURL(t *testing.T) {
	p, ctx := testContext(t)

	for _, a := range All(p) {
		if a.RelPath != "README.md" {
			continue
		}
		content, err := a.Render(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), "git clone https://github.com/worldwidebro/iza-os-ecosystem.git") {
			t.Error("README missing clone command with remote URL")
		}
		if !strings.Contains(string(content), "http://localhost:8000") {
			t.Error("README missing dashboard URL")
		}
	}
}

func TestDashboardConfig_ValidJSON(t *testing.T) {
	p, ctx := testContext(t)

	var content []byte
	for _, a := range All(p) {
		if a.RelPath == "config/mobile_dashboard_config.json" {
			var err error
			content, err = a.Render(ctx)
			if err != nil {
				t.Fatal(err)
			}
		}
	}
	if content == nil {
		t.Fatal("dashboard config artifact missing")
	}

	var cfg map[string]any
	if err := json.Unmarshal(content, &cfg); err != nil {
		t.Fatalf("dashboard config is not valid JSON: %v", err)
	}

	for _, key := range []string{"mobile_dashboard", "api_endpoints", "mobile_features", "port_range", "created_at"} {
		if _, ok := cfg[key]; !ok {
			t.Errorf("dashboard config missing key %q", key)
		}
	}

	portRange := cfg["port_range"].(map[string]any)
	if portRange["start"].(float64) != 8000 || portRange["end"].(float64) != 8601 {
		t.Errorf("port_range = %v", portRange)
	}
	if cfg["created_at"] != "2025-01-01T00:00:00Z" {
		t.Errorf("created_at = %v", cfg["created_at"])
	}
}

func TestDashboardConfig_RequiresTimestamp(t *testing.T) {
	p, _ := testContext(t)

	a := dashboardConfigArtifact(p)
	if _, err := a.Render(render.Context{}); err == nil {
		t.Fatal("expected error when context lacks generated_at")
	}
}

func TestArtifacts_Deterministic(t *testing.T) {
	p, ctx := testContext(t)

	for _, a := range All(p) {
		first, err := a.Render(ctx)
		if err != nil {
			t.Fatal(err)
		}
		second, err := a.Render(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("%s renders differ between runs", a.RelPath)
		}
	}
}

func TestArtifacts_FailOnIncompleteContext(t *testing.T) {
	p, _ := testContext(t)

	// A context missing the URL table must fail fast, not emit placeholders.
	bad := render.Context{"repo_name": "x", "generated_at": "2025-01-01T00:00:00Z"}
	for _, a := range All(p) {
		if a.RelPath == "requirements.txt" || a.RelPath == "config/mobile_dashboard_config.json" {
			continue // no URL variables in these
		}
		if _, err := a.Render(bad); err == nil {
			t.Errorf("%s rendered against incomplete context", a.RelPath)
		}
	}
}

func TestInstructions_Renders(t *testing.T) {
	_, ctx := testContext(t)

	content, err := Instructions().Render(ctx)
	if err != nil {
		t.Fatalf("Instructions failed to render: %v", err)
	}
	if !strings.Contains(string(content), "Mobile Access Setup Instructions") {
		t.Error("instructions missing heading")
	}
	if !strings.Contains(string(content), "https://github.com/worldwidebro/iza-os-ecosystem.git") {
		t.Error("instructions missing remote URL")
	}
}

func TestDefaultTree_TwelveDirectories(t *testing.T) {
	if len(DefaultTree) != 12 {
		t.Fatalf("tree has %d entries, want 12", len(DefaultTree))
	}
	for _, e := range DefaultTree {
		if e.RelPath == "" || e.Description == "" {
			t.Errorf("incomplete entry: %+v", e)
		}
		if strings.HasPrefix(e.RelPath, "/") {
			t.Errorf("entry path must be relative: %s", e.RelPath)
		}
	}
}
