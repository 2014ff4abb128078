// Package security scans a project for dependency risks, hardcoded
// secrets, and dangerous code patterns. The three sub-scans follow the
// OWASP Top 10 groupings for vulnerable dependencies, credential
// exposure, and injection-prone code.
package security

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nvdnvd00/agent-kits/internal/config"
	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/scan"
)

// Finding is one security issue. Fields are sparse: dependency findings
// carry a message, secret findings a file, pattern findings a file and
// line.
type Finding struct {
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Type     string `json:"type,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Severity string `json:"severity"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message,omitempty"`
}

// DepsResult reports missing lock files and npm audit output.
type DepsResult struct {
	Tool     string         `json:"tool"`
	Findings []Finding      `json:"findings"`
	Status   string         `json:"status"`
	NPMAudit map[string]int `json:"npm_audit,omitempty"`
}

// SecretsResult reports hardcoded credentials, one finding per file and
// pattern kind.
type SecretsResult struct {
	Tool         string         `json:"tool"`
	Findings     []Finding      `json:"findings"`
	Status       string         `json:"status"`
	ScannedFiles int            `json:"scanned_files"`
	BySeverity   map[string]int `json:"by_severity"`
}

// PatternsResult reports dangerous code constructs with line numbers.
type PatternsResult struct {
	Tool         string    `json:"tool"`
	Findings     []Finding `json:"findings"`
	Status       string    `json:"status"`
	ScannedFiles int       `json:"scanned_files"`
}

// Scans holds whichever sub-scan results ran for the requested type.
type Scans struct {
	Dependencies *DepsResult     `json:"dependencies,omitempty"`
	Secrets      *SecretsResult  `json:"secrets,omitempty"`
	CodePatterns *PatternsResult `json:"code_patterns,omitempty"`
}

// Summary aggregates finding counts across the sub-scans.
type Summary struct {
	TotalFindings int    `json:"total_findings"`
	Critical      int    `json:"critical"`
	High          int    `json:"high"`
	OverallStatus string `json:"overall_status"`
}

// Report is the full scan output.
type Report struct {
	Project   string  `json:"project"`
	Timestamp string  `json:"timestamp"`
	ScanType  string  `json:"scan_type"`
	Scans     Scans   `json:"scans"`
	Summary   Summary `json:"summary"`
}

// HasCritical reports whether the scan should fail the build.
func (r *Report) HasCritical() bool {
	return r.Summary.Critical > 0
}

// ValidScanTypes are the accepted values for the scan type flag.
var ValidScanTypes = []string{"all", "deps", "secrets", "patterns"}

// Scanner runs the security sub-scans against one project directory.
type Scanner struct {
	walker             *scan.Walker
	maxSecretFindings  int
	maxPatternFindings int
	auditEnabled       bool
	auditTimeout       time.Duration
	logger             *zap.Logger
}

// NewScanner builds a scanner from config. A nil logger is replaced
// with a no-op one.
func NewScanner(cfg *config.Config, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		walker:             scan.NewWalker(cfg.Scan.SkipDirs),
		maxSecretFindings:  cfg.Security.MaxSecretFindings,
		maxPatternFindings: cfg.Security.MaxPatternFindings,
		auditEnabled:       cfg.Security.AuditEnabled,
		auditTimeout:       cfg.AuditTimeout(),
		logger:             logger,
	}
}

// Run executes the requested sub-scans concurrently and aggregates the
// summary. scanType is one of ValidScanTypes.
func (s *Scanner) Run(ctx context.Context, dir, scanType string) (*Report, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	rep := &Report{
		Project:   dir,
		Timestamp: report.Timestamp(),
		ScanType:  scanType,
	}

	g, ctx := errgroup.WithContext(ctx)
	if scanType == "all" || scanType == "deps" {
		g.Go(func() error {
			rep.Scans.Dependencies = s.scanDependencies(ctx, dir)
			return nil
		})
	}
	if scanType == "all" || scanType == "secrets" {
		g.Go(func() error {
			rep.Scans.Secrets = s.scanSecrets(dir)
			return nil
		})
	}
	if scanType == "all" || scanType == "patterns" {
		g.Go(func() error {
			rep.Scans.CodePatterns = s.scanPatterns(dir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.summarize(rep)
	return rep, nil
}

func (s *Scanner) summarize(rep *Report) {
	count := func(findings []Finding) {
		rep.Summary.TotalFindings += len(findings)
		for _, f := range findings {
			switch f.Severity {
			case "critical":
				rep.Summary.Critical++
			case "high":
				rep.Summary.High++
			}
		}
	}
	if rep.Scans.Dependencies != nil {
		count(rep.Scans.Dependencies.Findings)
	}
	if rep.Scans.Secrets != nil {
		count(rep.Scans.Secrets.Findings)
	}
	if rep.Scans.CodePatterns != nil {
		count(rep.Scans.CodePatterns.Findings)
	}

	switch {
	case rep.Summary.Critical > 0:
		rep.Summary.OverallStatus = "critical issues"
	case rep.Summary.High > 0:
		rep.Summary.OverallStatus = "high risk"
	case rep.Summary.TotalFindings > 0:
		rep.Summary.OverallStatus = "review needed"
	default:
		rep.Summary.OverallStatus = "secure"
	}
}

// lockFiles maps a package manager to the lock files that pin its
// dependency tree, keyed off the manifest that activates the check.
var lockFiles = []struct {
	manager  string
	manifest string
	locks    []string
}{
	{"npm", "package.json", []string{"package-lock.json", "pnpm-lock.yaml"}},
	{"pip", "requirements.txt", []string{"requirements.txt", "poetry.lock"}},
}

func (s *Scanner) scanDependencies(ctx context.Context, dir string) *DepsResult {
	res := &DepsResult{
		Tool:     "dependency_scanner",
		Findings: []Finding{},
		Status:   "secure",
	}

	exists := func(name string) bool {
		_, err := os.Stat(filepath.Join(dir, name))
		return err == nil
	}

	for _, lf := range lockFiles {
		if !exists(lf.manifest) {
			continue
		}
		hasLock := false
		for _, lock := range lf.locks {
			if exists(lock) {
				hasLock = true
				break
			}
		}
		if !hasLock {
			res.Findings = append(res.Findings, Finding{
				Type:     "Missing Lock File",
				Severity: "high",
				Message:  fmt.Sprintf("%s: No lock file found", lf.manager),
			})
		}
	}

	if s.auditEnabled && exists("package.json") {
		s.runNPMAudit(ctx, dir, res)
	}
	return res
}

// runNPMAudit shells out to npm and folds vulnerability counts into the
// result. npm exits non-zero when vulnerabilities exist, so the exit
// code is ignored and only the JSON on stdout matters. A missing npm
// binary or malformed output leaves the result untouched.
func (s *Scanner) runNPMAudit(ctx context.Context, dir string, res *DepsResult) {
	ctx, cancel := context.WithTimeout(ctx, s.auditTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "npm", "audit", "--json")
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	_ = cmd.Run()

	var audit struct {
		Vulnerabilities map[string]struct {
			Severity string `json:"severity"`
		} `json:"vulnerabilities"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &audit); err != nil {
		s.logger.Debug("npm audit output unusable", zap.Error(err))
		return
	}

	counts := map[string]int{"critical": 0, "high": 0, "moderate": 0}
	for _, v := range audit.Vulnerabilities {
		sev := strings.ToLower(v.Severity)
		if _, ok := counts[sev]; ok {
			counts[sev]++
		}
	}

	if counts["critical"] > 0 {
		res.Status = "critical vulnerabilities"
		res.Findings = append(res.Findings, Finding{
			Type:     "npm audit",
			Severity: "critical",
			Message:  fmt.Sprintf("%d critical vulnerabilities", counts["critical"]),
		})
	} else if counts["high"] > 0 {
		res.Status = "high vulnerabilities"
	}
	res.NPMAudit = counts
}

func (s *Scanner) scanSecrets(dir string) *SecretsResult {
	res := &SecretsResult{
		Tool:       "secret_scanner",
		Findings:   []Finding{},
		Status:     "no secrets",
		BySeverity: map[string]int{"critical": 0, "high": 0, "medium": 0},
	}

	files := s.walker.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		return scan.HasExt(rel, codeExtensions) || scan.HasExt(rel, configExtensions)
	})
	res.ScannedFiles = len(files)

	for _, path := range files {
		content, ok := scan.ReadText(path)
		if !ok {
			continue
		}
		rel, _ := filepath.Rel(dir, path)
		for _, p := range secretPatterns {
			if !p.re.MatchString(content) {
				continue
			}
			res.Findings = append(res.Findings, Finding{
				File:     filepath.ToSlash(rel),
				Type:     p.kind,
				Severity: p.severity,
			})
			res.BySeverity[p.severity]++
		}
	}

	if res.BySeverity["critical"] > 0 {
		res.Status = "critical: secrets exposed"
	} else if res.BySeverity["high"] > 0 {
		res.Status = "high: secrets found"
	}

	if len(res.Findings) > s.maxSecretFindings {
		res.Findings = res.Findings[:s.maxSecretFindings]
	}
	return res
}

func (s *Scanner) scanPatterns(dir string) *PatternsResult {
	res := &PatternsResult{
		Tool:     "pattern_scanner",
		Findings: []Finding{},
		Status:   "no dangerous patterns",
	}

	files := s.walker.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		return scan.HasExt(rel, codeExtensions)
	})
	res.ScannedFiles = len(files)

	critical := 0
	for _, path := range files {
		content, ok := scan.ReadText(path)
		if !ok {
			continue
		}
		rel, _ := filepath.Rel(dir, path)
		for num, line := range strings.Split(content, "\n") {
			for _, p := range dangerousPatterns {
				if !p.re.MatchString(line) {
					continue
				}
				res.Findings = append(res.Findings, Finding{
					File:     filepath.ToSlash(rel),
					Line:     num + 1,
					Pattern:  p.name,
					Severity: p.severity,
					Category: p.category,
				})
				if p.severity == "critical" {
					critical++
				}
			}
		}
	}

	if critical > 0 {
		res.Status = fmt.Sprintf("critical: %d dangerous patterns", critical)
	} else if len(res.Findings) > 0 {
		res.Status = "patterns need review"
	}

	if len(res.Findings) > s.maxPatternFindings {
		res.Findings = res.Findings[:s.maxPatternFindings]
	}
	return res
}
