package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvdnvd00/agent-kits/internal/kit"
	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/term"
)

var statusJSON bool

// validateCmd validates kit structure before packaging
var validateCmd = &cobra.Command{
	Use:   "validate <kit-path>",
	Short: "Validate a kit directory against the standard layout",
	Long: `Validates a kit directory: required directories, ARCHITECTURE.md
sections, rule file frontmatter, agent and skill definitions, workflow
descriptions, and path references.

Exits nonzero when any ERROR-severity check fails. Warnings do not fail
validation. Use --verbose to also show informational results.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

// kitStatusCmd reports the installed kit inventory
var kitStatusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "Show the installed kit inventory and integrity",
	Long: `Finds the installed kit (walks up from the given path looking
for .agent/ARCHITECTURE.md), then reports its agents, skills, workflows,
and integrity issues.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKitStatus,
}

func runValidate(cmd *cobra.Command, args []string) error {
	rep := kit.NewValidator(args[0]).Validate()
	out := os.Stdout

	term.Header(out, "Kit Validation")
	term.Dim(out, "Kit: %s", rep.KitPath)
	fmt.Fprintln(out)

	for _, res := range rep.Results {
		if res.Severity == kit.SeverityInfo && !verbose {
			continue
		}
		switch {
		case res.Passed:
			term.Success(out, "[%s] %s", res.Category, res.Message)
		case res.Severity == kit.SeverityError:
			term.Error(out, "[%s] %s", res.Category, res.Message)
		default:
			term.Warn(out, "[%s] %s", res.Category, res.Message)
		}
	}

	fmt.Fprintln(out)
	term.Dim(out, "agents: %d, skills: %d, workflows: %d, rule files: %d",
		rep.Stats.Agents, rep.Stats.Skills, rep.Stats.Workflows, rep.Stats.RuleFiles)
	if rep.Passed {
		term.Success(out, "validation passed (%d warnings)", rep.Warnings)
		return nil
	}
	term.Error(out, "validation failed (%d errors, %d warnings)", rep.Errors, rep.Warnings)
	return errCheckFailed
}

func runKitStatus(cmd *cobra.Command, args []string) error {
	root, err := kit.FindRoot(targetDir(args))
	if err != nil {
		return err
	}
	st, err := kit.CollectStatus(root)
	if err != nil {
		return err
	}

	if statusJSON {
		return report.Print(os.Stdout, st)
	}

	out := os.Stdout
	term.Header(out, "Kit Status")
	term.Dim(out, "Kit: %s", st.KitPath)
	term.Dim(out, "agents: %d, skills: %d, workflows: %d",
		st.Statistics.Agents, st.Statistics.Skills, st.Statistics.Workflows)
	fmt.Fprintln(out)

	term.Section(out, "Agents")
	for _, a := range st.Agents {
		term.Dim(out, "  %s - %s", a.Name, a.Description)
		if len(a.Skills) > 0 {
			term.Dim(out, "    skills: %v", a.Skills)
		}
	}

	term.Section(out, "Skills")
	for _, s := range st.Skills {
		marker := ""
		if s.HasScripts {
			marker = " [scripts]"
		}
		term.Dim(out, "  %s%s - %s", s.Name, marker, s.Description)
	}

	term.Section(out, "Workflows")
	for _, w := range st.Workflows {
		term.Dim(out, "  %s - %s", w.Command, w.Description)
	}

	fmt.Fprintln(out)
	for _, issue := range st.Validation.Issues {
		term.Error(out, "%s", issue)
	}
	for _, warning := range st.Validation.Warnings {
		term.Warn(out, "%s", warning)
	}
	if st.Validation.Valid {
		term.Success(out, "kit integrity ok")
	} else {
		term.Error(out, "kit has integrity issues")
		return errCheckFailed
	}
	return nil
}

func init() {
	kitStatusCmd.Flags().BoolVar(&statusJSON, "json", false, "Print the status as JSON")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(kitStatusCmd)
}
