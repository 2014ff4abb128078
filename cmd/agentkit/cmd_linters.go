package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nvdnvd00/agent-kits/internal/checks/a11y"
	"github.com/nvdnvd00/agent-kits/internal/checks/api"
	"github.com/nvdnvd00/agent-kits/internal/checks/i18n"
	"github.com/nvdnvd00/agent-kits/internal/checks/schema"
	"github.com/nvdnvd00/agent-kits/internal/checks/seo"
	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/term"
)

// a11yCmd audits UI files for accessibility issues
var a11yCmd = &cobra.Command{
	Use:   "a11y [path]",
	Short: "Audit UI components for accessibility issues",
	Long: `Checks UI files (tsx, jsx, html, vue) for common accessibility
problems: missing alt text, unlabeled inputs, broken heading hierarchy,
icon-only buttons, vague link text, and missing skip links.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runA11y,
}

// seoCmd scores page files against SEO heuristics
var seoCmd = &cobra.Command{
	Use:   "seo [path]",
	Short: "Score pages against SEO and E-E-A-T heuristics",
	Long: `Scores page files on structured data, heading structure, meta
tags, authorship signals, dates, Open Graph tags, and content structure.
The project passes when the average page score meets the threshold.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSEO,
}

// i18nCmd checks locale completeness and hardcoded strings
var i18nCmd = &cobra.Command{
	Use:   "i18n [path]",
	Short: "Check locale completeness and hardcoded strings",
	Long: `Compares translation keys across locale files and looks for
user-facing strings that bypass the translation layer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runI18n,
}

// schemaCmd validates database schema conventions
var schemaCmd = &cobra.Command{
	Use:   "schema [path]",
	Short: "Validate database schema conventions",
	Long: `Validates Prisma, Drizzle, and TypeORM schema files against
naming and modeling conventions. Advisory only; always exits zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

// apiCmd checks API specs and handler code
var apiCmd = &cobra.Command{
	Use:   "api [path]",
	Short: "Check API specs and handler code quality",
	Long: `Checks OpenAPI specs for completeness and route/controller code
for error handling, status codes, validation, auth, rate limiting, and
logging.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAPI,
}

func runA11y(cmd *cobra.Command, args []string) error {
	rep := a11y.Check(targetDir(args), cfg)
	for _, r := range rep.Results {
		printFindings(r.File, r.Passed, r.Issues)
	}
	if err := report.Print(os.Stdout, rep); err != nil {
		return err
	}
	if !rep.Passed {
		return errCheckFailed
	}
	return nil
}

func runSEO(cmd *cobra.Command, args []string) error {
	rep := seo.Check(targetDir(args), cfg)
	for _, r := range rep.Results {
		term.Section(os.Stdout, r.File)
		term.Dim(os.Stdout, "  score: %d", r.Score)
		printIssueLines(r.Issues)
	}
	if err := report.Print(os.Stdout, rep); err != nil {
		return err
	}
	if !rep.Passed {
		return errCheckFailed
	}
	return nil
}

func runI18n(cmd *cobra.Command, args []string) error {
	rep := i18n.Check(targetDir(args), cfg)
	printFindings("Locale completeness", rep.Locales.Passed, rep.Locales.Issues)
	printFindings("Hardcoded strings", rep.Code.Passed, rep.Code.Issues)
	if err := report.Print(os.Stdout, rep); err != nil {
		return err
	}
	if !rep.Passed {
		return errCheckFailed
	}
	return nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	rep := schema.Check(targetDir(args), cfg)
	return report.Print(os.Stdout, rep)
}

func runAPI(cmd *cobra.Command, args []string) error {
	rep := api.Check(targetDir(args), cfg)
	for _, r := range rep.Results {
		printFindings(r.File, r.Passed, r.Issues)
	}
	if err := report.Print(os.Stdout, rep); err != nil {
		return err
	}
	if !rep.Passed {
		return errCheckFailed
	}
	return nil
}

// printFindings renders one checked unit: passes only under --verbose,
// issues always.
func printFindings(title string, passed, issues []string) {
	if len(issues) == 0 && !verbose {
		return
	}
	term.Section(os.Stdout, title)
	if verbose {
		for _, p := range passed {
			term.Success(os.Stdout, "%s", p)
		}
	}
	printIssueLines(issues)
}

func printIssueLines(issues []string) {
	for _, issue := range issues {
		term.Warn(os.Stdout, "%s", issue)
	}
}

func init() {
	rootCmd.AddCommand(a11yCmd)
	rootCmd.AddCommand(seoCmd)
	rootCmd.AddCommand(i18nCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(apiCmd)
}
