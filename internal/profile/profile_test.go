package profile

import "testing"

func TestDefault_PortTable(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if p.Ports.MobileDashboard != 8000 {
		t.Errorf("dashboard port = %d, want 8000", p.Ports.MobileDashboard)
	}
	if p.Ports.Start != 8000 || p.Ports.End != 8601 {
		t.Errorf("port range = %d-%d, want 8000-8601", p.Ports.Start, p.Ports.End)
	}
	if p.Ports.Total != 602 {
		t.Errorf("total ports = %d, want 602", p.Ports.Total)
	}
}

func TestDefault_URLTable(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	if p.URLs.MobileDashboard != "http://localhost:8000" {
		t.Errorf("dashboard URL = %q", p.URLs.MobileDashboard)
	}
	if p.URLs.APIEndpoints != "http://localhost:8001/api/" {
		t.Errorf("api URL = %q", p.URLs.APIEndpoints)
	}
}

func TestRemoteURL(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	got := p.RemoteURL("https://github.com")
	want := "https://github.com/worldwidebro/iza-os-ecosystem.git"
	if got != want {
		t.Errorf("RemoteURL = %q, want %q", got, want)
	}
}

func TestRenderContext(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	ctx := p.RenderContext("https://github.com", "2025-01-01T00:00:00Z")

	if ctx["main_dashboard_url"] != "http://localhost:8000" {
		t.Errorf("main_dashboard_url = %v", ctx["main_dashboard_url"])
	}
	if ctx["generated_at"] != "2025-01-01T00:00:00Z" {
		t.Errorf("generated_at = %v", ctx["generated_at"])
	}

	ports, ok := ctx["ports"].(map[string]any)
	if !ok {
		t.Fatal("ports table missing from context")
	}
	if ports["total"] != 602 {
		t.Errorf("ports.total = %v, want 602", ports["total"])
	}
}
