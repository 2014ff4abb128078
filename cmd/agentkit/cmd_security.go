package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvdnvd00/agent-kits/internal/checks/security"
	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/term"
)

var (
	securityScanType string
	securityOutput   string
)

// securityCmd runs the security scanner
var securityCmd = &cobra.Command{
	Use:   "security [path]",
	Short: "Scan for secrets, dangerous code patterns, and dependency risks",
	Long: `Runs the security scanner over the project:

  deps     - lock file presence and npm audit results
  secrets  - hardcoded credentials, keys, and tokens
  patterns - dangerous code constructs (eval, innerHTML, SQL concat, ...)

Exits nonzero when critical findings are present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSecurity,
}

func runSecurity(cmd *cobra.Command, args []string) error {
	valid := false
	for _, t := range security.ValidScanTypes {
		if securityScanType == t {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid scan type %q (valid: %s)",
			securityScanType, strings.Join(security.ValidScanTypes, ", "))
	}

	scanner := security.NewScanner(cfg, logger)
	rep, err := scanner.Run(cmd.Context(), targetDir(args), securityScanType)
	if err != nil {
		return err
	}

	if securityOutput == "json" {
		if err := report.Print(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		printSecuritySummary(rep)
	}

	if rep.HasCritical() {
		return errCheckFailed
	}
	return nil
}

func printSecuritySummary(rep *security.Report) {
	out := os.Stdout
	term.Header(out, "Security Scan")
	term.Dim(out, "Project: %s", rep.Project)

	if d := rep.Scans.Dependencies; d != nil {
		term.Section(out, "Dependencies")
		printScanStatus(out, d.Status, len(d.Findings))
		for sev, n := range d.NPMAudit {
			if n > 0 {
				term.Dim(out, "  npm audit: %d %s", n, sev)
			}
		}
	}
	if s := rep.Scans.Secrets; s != nil {
		term.Section(out, "Secrets")
		printScanStatus(out, s.Status, len(s.Findings))
		for _, f := range s.Findings {
			term.Dim(out, "  %s: %s (%s)", f.File, f.Type, f.Severity)
		}
	}
	if p := rep.Scans.CodePatterns; p != nil {
		term.Section(out, "Code Patterns")
		printScanStatus(out, p.Status, len(p.Findings))
		for _, f := range p.Findings {
			term.Dim(out, "  %s:%d %s (%s)", f.File, f.Line, f.Pattern, f.Severity)
		}
	}

	fmt.Fprintln(out)
	term.Section(out, "Summary")
	term.Dim(out, "  findings: %d (critical: %d, high: %d)",
		rep.Summary.TotalFindings, rep.Summary.Critical, rep.Summary.High)
	if rep.HasCritical() {
		term.Error(out, "overall: %s", rep.Summary.OverallStatus)
	} else if rep.Summary.TotalFindings > 0 {
		term.Warn(out, "overall: %s", rep.Summary.OverallStatus)
	} else {
		term.Success(out, "overall: %s", rep.Summary.OverallStatus)
	}
}

func printScanStatus(out *os.File, status string, findings int) {
	if findings == 0 {
		term.Success(out, "%s", status)
	} else {
		term.Warn(out, "%s", status)
	}
}

func init() {
	securityCmd.Flags().StringVar(&securityScanType, "scan-type", "all", "Scan type: all, deps, secrets, patterns")
	securityCmd.Flags().StringVar(&securityOutput, "output", "summary", "Output format: json, summary")
	rootCmd.AddCommand(securityCmd)
}
