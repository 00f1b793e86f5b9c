package cli

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/mobiforge-labs/mobiforge/internal/config"
	"github.com/mobiforge-labs/mobiforge/internal/gitops"
	"github.com/mobiforge-labs/mobiforge/internal/report"
	"github.com/mobiforge-labs/mobiforge/internal/workspace"
	"github.com/spf13/cobra"
)

// minGitVersion is the oldest git release the bootstrap sequence is tested
// against.
const minGitVersion = ">= 2.0.0"

var checkReport string

func init() {
	doctorCmd.Flags().StringVar(&checkReport, "check-report", "", "Validate a completion report file at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the mobiforge environment",
	Long:  `Run diagnostic checks on git, the workspace, and the user configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkReport != "" {
			return runReportCheck(checkReport)
		}

		runGitCheck()
		runWorkspaceCheck()
		runConfigCheck()
		return nil
	},
}

func runGitCheck() {
	fmt.Println("Git check:")

	if err := gitops.EnsureGit(); err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return
	}
	fmt.Println("  [ OK ] git found in PATH")

	raw, err := gitops.Version()
	if err != nil {
		fmt.Printf("  [WARN] cannot determine git version: %v\n", err)
		return
	}

	constraint, err := semver.NewConstraint(minGitVersion)
	if err != nil {
		fmt.Printf("  [WARN] bad version constraint %q: %v\n", minGitVersion, err)
		return
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		fmt.Printf("  [WARN] unparseable git version %q: %v\n", raw, err)
		return
	}
	if constraint.Check(v) {
		fmt.Printf("  [ OK ] git %s satisfies %s\n", raw, minGitVersion)
	} else {
		fmt.Printf("  [FAIL] git %s does not satisfy %s\n", raw, minGitVersion)
	}
}

func runWorkspaceCheck() {
	fmt.Println("Workspace check:")

	root, err := resolveWorkspace()
	if err != nil {
		fmt.Printf("  [FAIL] cannot resolve workspace: %v\n", err)
		return
	}

	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		fmt.Printf("  [INFO] %s does not exist yet (created on first run)\n", root)
	case err != nil:
		fmt.Printf("  [WARN] cannot stat %s: %v\n", root, err)
	case !info.IsDir():
		fmt.Printf("  [FAIL] %s exists but is not a directory\n", root)
	default:
		fmt.Printf("  [ OK ] %s\n", root)
		checkExistingReport(root)
	}
}

// checkExistingReport validates the last run's report if one is present.
func checkExistingReport(root string) {
	path := workspace.ReportPath(root)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}
	result, err := report.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [WARN] cannot validate %s: %v\n", path, err)
		return
	}
	if result.Valid {
		fmt.Printf("  [ OK ] %s is a valid completion report\n", path)
	} else {
		fmt.Printf("  [WARN] %s has %d validation issue(s)\n", path, len(result.Issues))
	}
}

func runConfigCheck() {
	fmt.Println("Config check:")

	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("  [INFO] no config file at %s (using embedded defaults)\n", path)
		return
	}
	fmt.Printf("  [ OK ] %s\n", path)
}

func runReportCheck(path string) error {
	fmt.Printf("Report validation: %s\n", path)

	result, err := report.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("report validation failed: %w", err)
	}

	if result.Valid {
		fmt.Println("  [ OK ] Valid completion report")
		return nil
	}

	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("report %s has %d validation issue(s)", path, len(result.Issues))
}
