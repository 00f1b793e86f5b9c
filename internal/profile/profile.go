package profile

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/mobiforge-labs/mobiforge/internal/render"
)

//go:embed defaults.yaml
var rawDefaults []byte

// Ports is the port allocation table for the generated ecosystem.
type Ports struct {
	MobileDashboard int `yaml:"mobile_dashboard"`
	APIEndpoints    int `yaml:"api_endpoints"`
	Monitoring      int `yaml:"monitoring"`
	Research        int `yaml:"research"`
	GitHub          int `yaml:"github"`
	Start           int `yaml:"start"`
	End             int `yaml:"end"`
	Total           int `yaml:"total"`
}

// URLs is the access-point address table.
type URLs struct {
	Base            string `yaml:"base"`
	MobileDashboard string `yaml:"mobile_dashboard"`
	APIEndpoints    string `yaml:"api_endpoints"`
	Monitoring      string `yaml:"monitoring"`
	Research        string `yaml:"research"`
	GitHub          string `yaml:"github"`
}

// GitHub identifies the account and repository the remote is built from.
type GitHub struct {
	Username   string `yaml:"username"`
	Repository string `yaml:"repository"`
}

// Profile is an immutable snapshot of the configuration tables. It is built
// once per invocation and passed by value to the renderer and reporter.
type Profile struct {
	Ports  Ports  `yaml:"ports"`
	URLs   URLs   `yaml:"urls"`
	GitHub GitHub `yaml:"github"`
}

// Default returns the embedded default profile.
func Default() (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(rawDefaults, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing embedded profile: %w", err)
	}
	return p, nil
}

// RepoURL returns the browsable repository address, e.g.
// https://github.com/worldwidebro/iza-os-ecosystem.
func (p Profile) RepoURL(host string) string {
	return fmt.Sprintf("%s/%s/%s", host, p.GitHub.Username, p.GitHub.Repository)
}

// RemoteURL returns the git remote address, e.g.
// https://github.com/worldwidebro/iza-os-ecosystem.git.
func (p Profile) RemoteURL(host string) string {
	return p.RepoURL(host) + ".git"
}

// RenderContext builds the template variable table from the profile.
// generatedAt is supplied by the caller so rendering stays deterministic.
func (p Profile) RenderContext(host, generatedAt string) render.Context {
	return render.Context{
		"github_username":    p.GitHub.Username,
		"repo_name":          p.GitHub.Repository,
		"repo_url":           p.RepoURL(host),
		"remote_url":         p.RemoteURL(host),
		"main_dashboard_url": p.URLs.MobileDashboard,
		"generated_at":       generatedAt,
		"urls": map[string]any{
			"base":       p.URLs.Base,
			"dashboard":  p.URLs.MobileDashboard,
			"api":        p.URLs.APIEndpoints,
			"monitoring": p.URLs.Monitoring,
			"research":   p.URLs.Research,
			"github":     p.URLs.GitHub,
		},
		"ports": map[string]any{
			"dashboard":  p.Ports.MobileDashboard,
			"api":        p.Ports.APIEndpoints,
			"monitoring": p.Ports.Monitoring,
			"research":   p.Ports.Research,
			"github":     p.Ports.GitHub,
			"start":      p.Ports.Start,
			"end":        p.Ports.End,
			"total":      p.Ports.Total,
		},
	}
}
