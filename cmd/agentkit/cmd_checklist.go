package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/runner"
	"github.com/nvdnvd00/agent-kits/internal/term"
)

var (
	checklistURL        string
	checklistQuick      bool
	checklistStopOnFail bool
	checklistJSON       bool

	verifyURL        string
	verifyNoE2E      bool
	verifyStopOnFail bool
	verifyJSON       bool
)

// checklistCmd runs the pre-ship core checks
var checklistCmd = &cobra.Command{
	Use:   "checklist [path]",
	Short: "Run the pre-ship checklist",
	Long: `Runs the core checks in priority order through the installed
skill scripts. Checks without an installed script are skipped.

Performance checks (Lighthouse, E2E) run only when --url is given.
--quick restricts the run to security, lint, and tests.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChecklist,
}

// verifyCmd runs the full verification suite
var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Run the full verification suite",
	Long: `Runs every verification category that applies to the detected
project type: frontend projects add UX, SEO, performance, and E2E
categories; backend and Python projects add data layer and API; Flutter
adds mobile.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func runChecklist(cmd *cobra.Command, args []string) error {
	r, err := runner.New(targetDir(args), cfg, logger)
	if err != nil {
		return err
	}

	out := os.Stdout
	if !checklistJSON {
		term.Header(out, "Pre-Ship Checklist")
		r.OnStart = printCheckStart
		r.OnCheck = printCheckResult
	}

	rep := r.RunChecklist(cmd.Context(), runner.ChecklistOptions{
		URL:        checklistURL,
		Quick:      checklistQuick,
		StopOnFail: checklistStopOnFail,
	})

	if checklistJSON {
		if err := report.Print(out, rep); err != nil {
			return err
		}
	} else {
		printTally(rep.Tally, rep.Aborted)
	}
	if !rep.AllPassed {
		return errCheckFailed
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	r, err := runner.New(targetDir(args), cfg, logger)
	if err != nil {
		return err
	}

	out := os.Stdout
	if !verifyJSON {
		term.Header(out, "Full Verification")
		r.OnStart = printCheckStart
		r.OnCheck = printCheckResult
	}

	rep := r.RunVerify(cmd.Context(), runner.VerifyOptions{
		URL:        verifyURL,
		NoE2E:      verifyNoE2E,
		StopOnFail: verifyStopOnFail,
	})

	if verifyJSON {
		if err := report.Print(out, rep); err != nil {
			return err
		}
	} else {
		term.Dim(out, "project type: %s", rep.ProjectInfo.Type)
		printTally(rep.Tally, rep.Aborted)
		term.Dim(out, "total duration: %.1fs", rep.TotalDuration)
	}
	if !rep.AllPassed {
		return errCheckFailed
	}
	return nil
}

func printCheckStart(check runner.Check) {
	term.Step(os.Stdout, "%s", check.Name)
}

func printCheckResult(res runner.Result) {
	out := os.Stdout
	label := res.Name
	if res.Category != "" {
		label = res.Category + " / " + res.Name
	}
	fmt.Fprintf(out, "%s %s (%.1fs)\n", term.StatusLine(res.Passed, res.Skipped), label, res.Duration)
	if res.Reason != "" {
		term.Dim(out, "    %s", res.Reason)
	}
	if res.Error != "" {
		term.Dim(out, "    %s", res.Error)
	}
}

func printTally(t runner.Tally, aborted bool) {
	out := os.Stdout
	fmt.Fprintln(out)
	if aborted {
		term.Error(out, "run aborted on required check failure")
	}
	if t.Failed > 0 {
		term.Error(out, "%d passed, %d failed, %d skipped", t.Passed, t.Failed, t.Skipped)
	} else {
		term.Success(out, "%d passed, %d failed, %d skipped", t.Passed, t.Failed, t.Skipped)
	}
}

func init() {
	checklistCmd.Flags().StringVar(&checklistURL, "url", "", "Deployed URL for performance checks")
	checklistCmd.Flags().BoolVar(&checklistQuick, "quick", false, "Run only security, lint, and tests")
	checklistCmd.Flags().BoolVar(&checklistStopOnFail, "stop-on-fail", false, "Abort on the first required check failure")
	checklistCmd.Flags().BoolVar(&checklistJSON, "json", false, "Print the report as JSON")

	verifyCmd.Flags().StringVar(&verifyURL, "url", "", "Deployed URL for performance and E2E checks (required)")
	verifyCmd.Flags().BoolVar(&verifyNoE2E, "no-e2e", false, "Skip E2E test categories")
	verifyCmd.Flags().BoolVar(&verifyStopOnFail, "stop-on-fail", false, "Abort on the first required check failure")
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Print the report as JSON")
	_ = verifyCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(verifyCmd)
}
