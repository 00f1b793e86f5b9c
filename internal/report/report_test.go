package report

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mobiforge-labs/mobiforge/internal/bootstrap"
	"github.com/mobiforge-labs/mobiforge/internal/profile"
)

const testHost = "https://github.com"

var testTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func testProfile(t *testing.T) profile.Profile {
	t.Helper()
	p, err := profile.Default()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuild_FlagsPerHaltingStage(t *testing.T) {
	p := testProfile(t)

	tests := []struct {
		stage        bootstrap.Stage
		subdirs      bool
		optimization bool
		repoCreated  bool
		accessOn     bool
	}{
		{bootstrap.StageUninitialized, false, false, false, false},
		{bootstrap.StageDirStructureCreated, true, false, false, false},
		{bootstrap.StageArtifactsWritten, true, true, false, false},
		{bootstrap.StageVCSInitialized, true, true, false, false},
		{bootstrap.StageStaged, true, true, false, false},
		{bootstrap.StageCommitted, true, true, true, false},
		{bootstrap.StageRemoteConfigured, true, true, true, true},
	}

	for _, tt := range tests {
		h := &bootstrap.Handle{Root: "/tmp/repo", Stage: tt.stage}
		rep := Build(h, p, testHost, testTime)

		if rep.SubdirectoryStructure != tt.subdirs {
			t.Errorf("%s: subdirectory_structure = %v, want %v", tt.stage, rep.SubdirectoryStructure, tt.subdirs)
		}
		if rep.MobileOptimization != tt.optimization {
			t.Errorf("%s: mobile_optimization = %v, want %v", tt.stage, rep.MobileOptimization, tt.optimization)
		}
		if rep.MainRepositoryCreated != tt.repoCreated {
			t.Errorf("%s: main_repository_created = %v, want %v", tt.stage, rep.MainRepositoryCreated, tt.repoCreated)
		}
		if rep.MobileAccessEnabled != tt.accessOn {
			t.Errorf("%s: mobile_access_enabled = %v, want %v", tt.stage, rep.MobileAccessEnabled, tt.accessOn)
		}
		if len(rep.NextSteps) == 0 {
			t.Errorf("%s: next_steps must always be populated", tt.stage)
		}
	}
}

func TestBuild_CommitFailureScenario(t *testing.T) {
	p := testProfile(t)
	h := &bootstrap.Handle{
		Root:  "/tmp/repo",
		Stage: bootstrap.StageStaged,
		Err:   errors.New("committing: git commit: exit status 1"),
	}

	rep := Build(h, p, testHost, testTime)

	if rep.MainRepositoryCreated {
		t.Error("main_repository_created must be false when commit failed")
	}
	if rep.Status != StatusError {
		t.Errorf("status = %q, want %q", rep.Status, StatusError)
	}
	if rep.Error == "" {
		t.Error("error field must be set")
	}
	if len(rep.NextSteps) == 0 {
		t.Fatal("next_steps must still be populated")
	}
	if !strings.Contains(rep.NextSteps[0], "STAGED") {
		t.Errorf("first next step should name the halting stage, got %q", rep.NextSteps[0])
	}
}

func TestBuild_StaticTables(t *testing.T) {
	p := testProfile(t)
	h := &bootstrap.Handle{Root: "/data/repos/iza-os-ecosystem", Stage: bootstrap.StageRemoteConfigured}

	rep := Build(h, p, testHost, testTime)

	if rep.AccessPoints.MainDashboard != "http://localhost:8000" {
		t.Errorf("main_dashboard = %q", rep.AccessPoints.MainDashboard)
	}
	if rep.PortAllocation.StartPort != 8000 || rep.PortAllocation.EndPort != 8601 || rep.PortAllocation.TotalPorts != 602 {
		t.Errorf("port allocation = %+v", rep.PortAllocation)
	}
	if rep.RepositoryInfo.Name != "iza-os-ecosystem" {
		t.Errorf("repo name = %q", rep.RepositoryInfo.Name)
	}
	if rep.RepositoryInfo.GitHubURL != "https://github.com/worldwidebro/iza-os-ecosystem" {
		t.Errorf("github_url = %q", rep.RepositoryInfo.GitHubURL)
	}
	if rep.RepositoryInfo.LocalPath != h.Root {
		t.Errorf("local_path = %q", rep.RepositoryInfo.LocalPath)
	}
	if rep.Timestamp != "2025-01-01T12:00:00Z" {
		t.Errorf("timestamp = %q", rep.Timestamp)
	}
}

func TestEncode_ValidatesAgainstSchema(t *testing.T) {
	p := testProfile(t)

	for _, h := range []*bootstrap.Handle{
		{Root: "/tmp/repo", Stage: bootstrap.StageRemoteConfigured},
		{Root: "/tmp/repo", Stage: bootstrap.StageStaged, Err: errors.New("boom"), Warnings: []string{"artifact x: bad"}},
	} {
		data, err := Build(h, p, testHost, testTime).Encode()
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		result, err := Validate(data)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if !result.Valid {
			t.Errorf("report failed its own schema: %+v", result.Issues)
		}
	}
}

func TestValidate_RejectsMalformedReport(t *testing.T) {
	result, err := Validate([]byte(`{"timestamp": "x", "status": "weird"}`))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("malformed report passed validation")
	}
	if len(result.Issues) == 0 {
		t.Error("expected validation issues")
	}
}

func TestValidate_BadJSONIsError(t *testing.T) {
	if _, err := Validate([]byte("{not json")); err == nil {
		t.Fatal("expected error for unparseable JSON")
	}
}
