package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/skills"
	"github.com/nvdnvd00/agent-kits/internal/techstack"
)

// scanCmd emits the tech stack profile for a workspace
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Detect the workspace tech stack",
	Long: `Scans the workspace for config files, languages, frameworks,
databases, and tools, and prints the profile as JSON.

Example:
  agentkit scan
  agentkit scan ./my-app`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

// analyzeCmd recommends which skills to enable for a workspace
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Recommend skills for the workspace",
	Long: `Scans the workspace and computes which skills should be enabled
for the detected stack. Core skills are always kept enabled; skills with
no matching technology are recommended for disabling.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func runScan(cmd *cobra.Command, args []string) error {
	profile, err := techstack.Scan(targetDir(args))
	if err != nil {
		_ = report.Print(os.Stdout, report.NewError(err.Error()))
		return errCheckFailed
	}
	return report.Print(os.Stdout, profile)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analysis, err := skills.Analyze(targetDir(args))
	if err != nil {
		_ = report.Print(os.Stdout, report.NewError(err.Error()))
		return errCheckFailed
	}
	return report.Print(os.Stdout, analysis)
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(analyzeCmd)
}
