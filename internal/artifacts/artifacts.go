package artifacts

import (
	"encoding/json"
	"fmt"

	"github.com/mobiforge-labs/mobiforge/internal/profile"
	"github.com/mobiforge-labs/mobiforge/internal/render"
)

// Artifact is one generated file: where it lands relative to the repository
// root, whether it is a script, and how its content is produced from a
// rendering context.
type Artifact struct {
	RelPath    string
	Executable bool
	Render     func(render.Context) ([]byte, error)
}

// InstructionsFileName is the setup-instructions document written next to
// the repository root rather than inside it.
const InstructionsFileName = "MOBILE_SETUP_INSTRUCTIONS.md"

// templated builds an Artifact whose content comes from a template string.
func templated(relPath, tmpl string, executable bool) Artifact {
	return Artifact{
		RelPath:    relPath,
		Executable: executable,
		Render: func(ctx render.Context) ([]byte, error) {
			return render.Render(relPath, tmpl, ctx)
		},
	}
}

// All returns the artifact set generated inside the repository root.
// Each artifact renders independently; none reads another's output.
func All(p profile.Profile) []Artifact {
	return []Artifact{
		templated("README.md", readmeTemplate, false),
		templated("requirements.txt", requirementsTemplate, false),
		templated("mobile_setup.sh", setupScriptTemplate, true),
		templated("mobile_server.py", serverStubTemplate, true),
		dashboardConfigArtifact(p),
		templated("templates/mobile_dashboard.html", dashboardHTMLTemplate, false),
		templated("docs/mobile_setup.md", mobileDocsTemplate, false),
	}
}

// Instructions returns the workspace-level setup instructions artifact.
func Instructions() Artifact {
	return templated(InstructionsFileName, instructionsTemplate, false)
}

// Dashboard configuration JSON structure, mirroring the documented layout.
type dashboardConfig struct {
	MobileDashboard dashboardMain     `json:"mobile_dashboard"`
	APIEndpoints    dashboardAPIs     `json:"api_endpoints"`
	MobileFeatures  dashboardFeatures `json:"mobile_features"`
	PortRange       dashboardPorts    `json:"port_range"`
	CreatedAt       string            `json:"created_at"`
}

type dashboardMain struct {
	Enabled          bool `json:"enabled"`
	Port             int  `json:"port"`
	MobileOptimized  bool `json:"mobile_optimized"`
	ResponsiveDesign bool `json:"responsive_design"`
	TouchFriendly    bool `json:"touch_friendly"`
}

type dashboardAPIs struct {
	MainAPI struct {
		Port            int  `json:"port"`
		MobileOptimized bool `json:"mobile_optimized"`
		Compression     bool `json:"compression"`
		Caching         bool `json:"caching"`
	} `json:"main_api"`
	Monitoring struct {
		Port            int  `json:"port"`
		MobileDashboard bool `json:"mobile_dashboard"`
		RealTimeUpdates bool `json:"real_time_updates"`
	} `json:"monitoring"`
	Research struct {
		Port           int  `json:"port"`
		MobileAccess   bool `json:"mobile_access"`
		OfflineSupport bool `json:"offline_support"`
	} `json:"research"`
	GitHub struct {
		Port             int  `json:"port"`
		MobileInterface  bool `json:"mobile_interface"`
		RepositoryAccess bool `json:"repository_access"`
	} `json:"github"`
}

type dashboardFeatures struct {
	OfflineSupport    bool `json:"offline_support"`
	PushNotifications bool `json:"push_notifications"`
	MobileAPI         bool `json:"mobile_api"`
	ResponsiveImages  bool `json:"responsive_images"`
	TouchGestures     bool `json:"touch_gestures"`
}

type dashboardPorts struct {
	Start           int  `json:"start"`
	End             int  `json:"end"`
	TotalPorts      int  `json:"total_ports"`
	MobileAllocated bool `json:"mobile_allocated"`
}

// dashboardConfigArtifact builds config/mobile_dashboard_config.json from the
// port table. The generation timestamp comes from the context so rendering
// stays deterministic for a fixed context.
func dashboardConfigArtifact(p profile.Profile) Artifact {
	const relPath = "config/mobile_dashboard_config.json"
	return Artifact{
		RelPath: relPath,
		Render: func(ctx render.Context) ([]byte, error) {
			createdAt, ok := ctx["generated_at"].(string)
			if !ok || createdAt == "" {
				return nil, fmt.Errorf("rendering %s: context missing generated_at", relPath)
			}

			cfg := dashboardConfig{
				MobileDashboard: dashboardMain{
					Enabled:          true,
					Port:             p.Ports.MobileDashboard,
					MobileOptimized:  true,
					ResponsiveDesign: true,
					TouchFriendly:    true,
				},
				MobileFeatures: dashboardFeatures{
					OfflineSupport:    true,
					PushNotifications: true,
					MobileAPI:         true,
					ResponsiveImages:  true,
					TouchGestures:     true,
				},
				PortRange: dashboardPorts{
					Start:           p.Ports.Start,
					End:             p.Ports.End,
					TotalPorts:      p.Ports.Total,
					MobileAllocated: true,
				},
				CreatedAt: createdAt,
			}
			cfg.APIEndpoints.MainAPI.Port = p.Ports.APIEndpoints
			cfg.APIEndpoints.MainAPI.MobileOptimized = true
			cfg.APIEndpoints.MainAPI.Compression = true
			cfg.APIEndpoints.MainAPI.Caching = true
			cfg.APIEndpoints.Monitoring.Port = p.Ports.Monitoring
			cfg.APIEndpoints.Monitoring.MobileDashboard = true
			cfg.APIEndpoints.Monitoring.RealTimeUpdates = true
			cfg.APIEndpoints.Research.Port = p.Ports.Research
			cfg.APIEndpoints.Research.MobileAccess = true
			cfg.APIEndpoints.Research.OfflineSupport = true
			cfg.APIEndpoints.GitHub.Port = p.Ports.GitHub
			cfg.APIEndpoints.GitHub.MobileInterface = true
			cfg.APIEndpoints.GitHub.RepositoryAccess = true

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("encoding %s: %w", relPath, err)
			}
			return append(data, '\n'), nil
		},
	}
}
