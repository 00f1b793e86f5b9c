package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/mobiforge-labs/mobiforge/internal/artifacts"
	"github.com/mobiforge-labs/mobiforge/internal/bootstrap"
	"github.com/mobiforge-labs/mobiforge/internal/branding"
	"github.com/mobiforge-labs/mobiforge/internal/config"
	"github.com/mobiforge-labs/mobiforge/internal/gitops"
	"github.com/mobiforge-labs/mobiforge/internal/profile"
	"github.com/mobiforge-labs/mobiforge/internal/report"
	"github.com/mobiforge-labs/mobiforge/internal/scaffold"
	"github.com/mobiforge-labs/mobiforge/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	createWorkspace string
	createSkip      bool
)

func init() {
	createRepoCmd.Flags().StringVar(&createWorkspace, "workspace", "", "Workspace directory (default: ~/.mobiforge/workspace)")
	createRepoCmd.Flags().BoolVar(&createSkip, "skip-remote", false, "Do not configure the origin remote")
	createCmd.AddCommand(createRepoCmd)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Scaffold project infrastructure",
}

var createRepoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Bootstrap the mobile-access ecosystem repository",
	Long: `Create the ecosystem repository inside the workspace: the directory
skeleton, the generated mobile dashboard and API artifacts, an initial git
commit, and the origin remote. A completion report and a setup instructions
document are written next to the repository.

Examples:
  mobiforge create repo
  mobiforge create repo --workspace /srv/forge --skip-remote`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := gitops.EnsureGit(); err != nil {
			return err
		}

		p, err := profile.Default()
		if err != nil {
			return err
		}
		if v := config.Get(config.KeyGitHubUsername); v != "" {
			p.GitHub.Username = v
		}
		if v := config.Get(config.KeyRepoName); v != "" {
			p.GitHub.Repository = v
		}

		root, err := resolveWorkspace()
		if err != nil {
			return err
		}

		host := branding.GitHubHost()
		remoteURL := p.RemoteURL(host)
		if createSkip {
			remoteURL = ""
		}

		now := time.Now()
		ctx := p.RenderContext(host, now.Format(time.RFC3339))

		fmt.Printf("Bootstrapping %s in %s\n", p.GitHub.Repository, root)
		repoRoot := workspace.RepoRoot(root, p.GitHub.Repository)
		h := bootstrap.Run(os.Stdout, repoRoot, artifacts.DefaultTree, artifacts.All(p), ctx, remoteURL, gitops.NewExecRunner())

		// Run outputs land in the workspace even when the bootstrap halted,
		// so a partial run still leaves a usable record.
		instructions := artifacts.Instructions()
		if content, rerr := instructions.Render(ctx); rerr != nil {
			h.Warnings = append(h.Warnings, fmt.Sprintf("instructions: %v", rerr))
		} else {
			path := workspace.InstructionsPath(root, artifacts.InstructionsFileName)
			if res := scaffold.WriteFile(path, content, false); res.Err != nil {
				h.Warnings = append(h.Warnings, fmt.Sprintf("instructions: %v", res.Err))
			}
		}

		rep := report.Build(h, p, host, time.Now())
		data, err := rep.Encode()
		if err != nil {
			return err
		}
		reportPath := workspace.ReportPath(root)
		if res := scaffold.WriteFile(reportPath, data, false); res.Err != nil {
			return fmt.Errorf("writing completion report: %w", res.Err)
		}

		printSummary(h, rep, reportPath)

		if h.Err != nil {
			return fmt.Errorf("bootstrap halted at stage %s: %w", h.Stage, h.Err)
		}
		return nil
	},
}

// resolveWorkspace picks the workspace root: flag, then config key, then the
// environment/home default.
func resolveWorkspace() (string, error) {
	if createWorkspace != "" {
		return createWorkspace, nil
	}
	if v := config.Get(config.KeyWorkspace); v != "" {
		return v, nil
	}
	return workspace.Root()
}

func printSummary(h *bootstrap.Handle, rep report.CompletionReport, reportPath string) {
	fmt.Println()
	if h.Err == nil {
		fmt.Println("✅ Mobile access setup complete")
	} else {
		fmt.Printf("❌ Mobile access setup failed: %v\n", h.Err)
	}

	fmt.Printf("  Repository: %s\n", h.Root)
	fmt.Printf("  Stage:      %s\n", h.Stage)
	fmt.Printf("  Dashboard:  %s\n", rep.AccessPoints.MainDashboard)
	fmt.Printf("  API:        %s\n", rep.AccessPoints.APIEndpoints)
	fmt.Printf("  Report:     %s\n", reportPath)

	if len(h.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range h.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	fmt.Println("\nNext steps:")
	for i, step := range rep.NextSteps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
}
