package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mobiforge-labs/mobiforge/internal/bootstrap"
	"github.com/mobiforge-labs/mobiforge/internal/profile"
)

// FileName is the report written into the workspace after a run.
const FileName = "mobile_access_report.json"

// CompletionReport is the durable record of one bootstrap invocation.
type CompletionReport struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`

	MobileAccessEnabled   bool `json:"mobile_access_enabled"`
	MainRepositoryCreated bool `json:"main_repository_created"`
	SubdirectoryStructure bool `json:"subdirectory_structure"`
	MobileOptimization    bool `json:"mobile_optimization"`
	DashboardAccess       bool `json:"dashboard_access"`
	APIEndpoints          bool `json:"api_endpoints"`

	MobileFeatures MobileFeatures `json:"mobile_features"`
	AccessPoints   AccessPoints   `json:"access_points"`
	PortAllocation PortAllocation `json:"port_allocation"`
	RepositoryInfo RepositoryInfo `json:"repository_info"`

	Warnings  []string `json:"warnings,omitempty"`
	NextSteps []string `json:"next_steps"`
}

// MobileFeatures is the generated feature flag set.
type MobileFeatures struct {
	ResponsiveDesign  bool `json:"responsive_design"`
	TouchFriendly     bool `json:"touch_friendly"`
	OfflineSupport    bool `json:"offline_support"`
	PushNotifications bool `json:"push_notifications"`
	MobileAPI         bool `json:"mobile_api"`
	Compression       bool `json:"compression"`
	Caching           bool `json:"caching"`
}

// AccessPoints lists the named URLs of the generated ecosystem.
type AccessPoints struct {
	MainDashboard string `json:"main_dashboard"`
	APIEndpoints  string `json:"api_endpoints"`
	Monitoring    string `json:"monitoring"`
	Research      string `json:"research"`
	GitHub        string `json:"github"`
}

// PortAllocation records the allocated port bounds.
type PortAllocation struct {
	StartPort       int  `json:"start_port"`
	EndPort         int  `json:"end_port"`
	TotalPorts      int  `json:"total_ports"`
	MobileAllocated bool `json:"mobile_allocated"`
}

// RepositoryInfo identifies the bootstrapped repository.
type RepositoryInfo struct {
	Name        string `json:"name"`
	GitHubURL   string `json:"github_url"`
	LocalPath   string `json:"local_path"`
	MobileReady bool   `json:"mobile_ready"`
}

// Statuses for the report's status field.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var defaultNextSteps = []string{
	"Execute Complete Integration Resolution",
	"Final System Verification",
	"Mobile Access Testing",
}

// Build produces the completion report for a finished (or halted) bootstrap.
// Boolean flags are derived solely from the stage the handle reached, so a
// caller can tell exactly how far the run progressed.
func Build(h *bootstrap.Handle, p profile.Profile, githubHost string, now time.Time) CompletionReport {
	stage := h.Stage

	rep := CompletionReport{
		Timestamp: now.Format(time.RFC3339),
		Status:    StatusSuccess,

		MobileAccessEnabled:   stage.Reached(bootstrap.StageRemoteConfigured),
		MainRepositoryCreated: stage.Reached(bootstrap.StageCommitted),
		SubdirectoryStructure: stage.Reached(bootstrap.StageDirStructureCreated),
		MobileOptimization:    stage.Reached(bootstrap.StageArtifactsWritten),
		DashboardAccess:       stage.Reached(bootstrap.StageArtifactsWritten),
		APIEndpoints:          stage.Reached(bootstrap.StageArtifactsWritten),

		MobileFeatures: MobileFeatures{
			ResponsiveDesign:  true,
			TouchFriendly:     true,
			OfflineSupport:    true,
			PushNotifications: true,
			MobileAPI:         true,
			Compression:       true,
			Caching:           true,
		},
		AccessPoints: AccessPoints{
			MainDashboard: p.URLs.MobileDashboard,
			APIEndpoints:  p.URLs.APIEndpoints,
			Monitoring:    p.URLs.Monitoring,
			Research:      p.URLs.Research,
			GitHub:        p.URLs.GitHub,
		},
		PortAllocation: PortAllocation{
			StartPort:       p.Ports.Start,
			EndPort:         p.Ports.End,
			TotalPorts:      p.Ports.Total,
			MobileAllocated: true,
		},
		RepositoryInfo: RepositoryInfo{
			Name:        p.GitHub.Repository,
			GitHubURL:   p.RepoURL(githubHost),
			LocalPath:   h.Root,
			MobileReady: stage.Reached(bootstrap.StageCommitted),
		},

		Warnings:  h.Warnings,
		NextSteps: defaultNextSteps,
	}

	if h.Err != nil {
		rep.Status = StatusError
		rep.Error = h.Err.Error()
		rep.NextSteps = append([]string{
			fmt.Sprintf("Resolve the failure at stage %s and re-run", stage),
		}, defaultNextSteps...)
	}

	return rep
}

// Encode renders the report as indented JSON with a trailing newline.
func (r CompletionReport) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return append(data, '\n'), nil
}
