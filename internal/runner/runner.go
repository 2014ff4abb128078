package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/nvdnvd00/agent-kits/internal/config"
)

// Result is the outcome of one external check.
type Result struct {
	Name     string  `json:"name"`
	Skill    string  `json:"skill"`
	Category string  `json:"category,omitempty"`
	Passed   bool    `json:"passed"`
	Skipped  bool    `json:"skipped"`
	Reason   string  `json:"reason,omitempty"`
	Output   string  `json:"output,omitempty"`
	Error    string  `json:"error,omitempty"`
	Duration float64 `json:"duration"`
}

// Tally counts results by outcome. Skipped checks count as neither
// passed nor failed.
type Tally struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

func tally(results []Result) Tally {
	var t Tally
	for _, r := range results {
		switch {
		case r.Skipped:
			t.Skipped++
		case r.Passed:
			t.Passed++
		default:
			t.Failed++
		}
	}
	return t
}

// ChecklistReport is the outcome of a checklist run.
type ChecklistReport struct {
	Project     string   `json:"project"`
	ProjectType string   `json:"projectType"`
	Results     []Result `json:"results"`
	Tally       Tally    `json:"tally"`
	AllPassed   bool     `json:"allPassed"`
	Aborted     bool     `json:"aborted,omitempty"`
}

// VerifyReport is the outcome of a full verification run.
type VerifyReport struct {
	Project       string      `json:"project"`
	ProjectInfo   ProjectInfo `json:"projectInfo"`
	Results       []Result    `json:"results"`
	Tally         Tally       `json:"tally"`
	TotalDuration float64     `json:"totalDuration"`
	AllPassed     bool        `json:"allPassed"`
	Aborted       bool        `json:"aborted,omitempty"`
}

// ChecklistOptions tune a checklist run.
type ChecklistOptions struct {
	URL        string
	Quick      bool
	StopOnFail bool
}

// VerifyOptions tune a verification run.
type VerifyOptions struct {
	URL        string
	NoE2E      bool
	StopOnFail bool
}

// Runner executes skill scripts against one project directory. Scripts
// live inside the target project under .agent/skills/; a project that
// has not installed a given skill simply has that check skipped.
type Runner struct {
	projectDir  string
	interpreter string
	cfg         *config.Config
	logger      *zap.Logger

	// OnStart, when set, is called with each check before it runs.
	OnStart func(Check)

	// OnCheck, when set, is called with each result as it completes.
	OnCheck func(Result)
}

// New builds a runner for the project at dir.
func New(dir string, cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("project path does not exist: %s", dir)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		projectDir:  abs,
		interpreter: "python",
		cfg:         cfg,
		logger:      logger,
	}, nil
}

// RunChecklist executes the core checks in priority order, then the
// performance checks when a URL is given. With StopOnFail, a failed
// required check aborts the run.
func (r *Runner) RunChecklist(ctx context.Context, opts ChecklistOptions) *ChecklistReport {
	rep := &ChecklistReport{
		Project:     r.projectDir,
		ProjectType: DetectProjectType(r.projectDir),
	}

	checks := make([]Check, 0, len(CoreChecks))
	for _, c := range CoreChecks {
		if opts.Quick && !QuickCheckNames[c.Name] {
			continue
		}
		checks = append(checks, c)
	}
	sort.SliceStable(checks, func(i, j int) bool { return checks[i].Priority < checks[j].Priority })

	for _, check := range checks {
		res := r.runCheck(ctx, check, opts.URL, r.cfg.CheckTimeout())
		rep.Results = append(rep.Results, res)

		if opts.StopOnFail && check.Required && !res.Passed && !res.Skipped {
			r.logger.Error("required check failed, stopping", zap.String("check", check.Name))
			rep.Aborted = true
			rep.Tally = tally(rep.Results)
			return rep
		}
	}

	if opts.URL != "" && !opts.Quick {
		for _, check := range PerformanceChecks {
			rep.Results = append(rep.Results, r.runCheck(ctx, check, opts.URL, r.cfg.CheckTimeout()))
		}
	}

	rep.Tally = tally(rep.Results)
	rep.AllPassed = rep.Tally.Failed == 0
	return rep
}

// RunVerify executes the verification suite, filtered to the categories
// relevant for the detected project type.
func (r *Runner) RunVerify(ctx context.Context, opts VerifyOptions) *VerifyReport {
	info := DetectProjectInfo(r.projectDir)
	rep := &VerifyReport{
		Project:     r.projectDir,
		ProjectInfo: info,
	}
	start := time.Now()

	for _, suite := range VerificationSuite {
		if !info.HasCategory(suite.Name) {
			continue
		}
		if suite.RequiresURL && opts.URL == "" {
			continue
		}
		if opts.NoE2E && suite.Name == "E2E Testing" {
			continue
		}

		for _, check := range suite.Checks {
			res := r.runCheck(ctx, check, opts.URL, r.cfg.VerifyTimeout())
			res.Category = suite.Name
			rep.Results = append(rep.Results, res)

			if opts.StopOnFail && check.Required && !res.Passed && !res.Skipped {
				r.logger.Error("required check failed, stopping", zap.String("check", check.Name))
				rep.Aborted = true
				rep.Tally = tally(rep.Results)
				rep.TotalDuration = time.Since(start).Seconds()
				return rep
			}
		}
	}

	rep.Tally = tally(rep.Results)
	rep.AllPassed = rep.Tally.Failed == 0
	rep.TotalDuration = time.Since(start).Seconds()
	return rep
}

func (r *Runner) runCheck(ctx context.Context, check Check, url string, timeout time.Duration) Result {
	if r.OnStart != nil {
		r.OnStart(check)
	}
	res := Result{Name: check.Name, Skill: check.Skill}

	scriptPath := filepath.Join(r.projectDir, filepath.FromSlash(check.Script))
	if _, err := os.Stat(scriptPath); err != nil {
		r.logger.Debug("script not found, skipping",
			zap.String("check", check.Name), zap.String("script", check.Script))
		res.Passed = true
		res.Skipped = true
		res.Reason = "Script not found"
		r.notify(res)
		return res
	}

	r.logger.Debug("running check",
		zap.String("check", check.Name), zap.String("skill", check.Skill))

	args := []string{scriptPath, r.projectDir}
	if url != "" && check.NeedsURL {
		args = append(args, url)
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, r.interpreter, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res.Duration = time.Since(start).Seconds()
	res.Output = truncate(stdout.String(), 2000)
	res.Error = truncate(stderr.String(), 500)

	switch {
	case cctx.Err() == context.DeadlineExceeded:
		res.Error = "Timeout"
	case err == nil:
		res.Passed = true
	}

	r.notify(res)
	return res
}

func (r *Runner) notify(res Result) {
	if r.OnCheck != nil {
		r.OnCheck(res)
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
