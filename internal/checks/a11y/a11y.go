// Package a11y audits UI component files for common WCAG 2.2 problems:
// missing alt text, unlabeled inputs, broken heading hierarchy, icon-only
// buttons, and non-descriptive link text.
package a11y

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/config"
	"github.com/nvdnvd00/agent-kits/internal/scan"
)

var (
	imgTagRE     = regexp.MustCompile(`(?i)<img[^>]*>`)
	inputTagRE   = regexp.MustCompile(`(?i)<input[^>]*>`)
	h1RE         = regexp.MustCompile(`(?i)<h1[^>]*>`)
	h2RE         = regexp.MustCompile(`(?i)<h2[^>]*>`)
	h3RE         = regexp.MustCompile(`(?i)<h3[^>]*>`)
	iconButtonRE = regexp.MustCompile(`(?i)<button[^>]*>\s*<[^>]+/>\s*</button>`)
	linkTextRE   = regexp.MustCompile(`(?i)<a[^>]*>([^<]*)</a>`)
)

var uiExtensions = map[string]bool{
	".tsx": true, ".jsx": true, ".html": true, ".vue": true,
}

var badLinkText = map[string]bool{
	"click here": true, "read more": true, "here": true, "more": true,
}

// FileResult is the audit outcome for one UI file.
type FileResult struct {
	File   string
	Passed []string
	Issues []string
}

// Report is the audit outcome for a project.
type Report struct {
	Script        string `json:"script"`
	Skill         string `json:"skill"`
	Project       string `json:"project"`
	FilesChecked  int    `json:"files_checked"`
	PatternsFound int    `json:"patterns_found"`
	IssuesFound   int    `json:"issues_found"`
	Passed        bool   `json:"passed"`

	Results []FileResult `json:"-"`
}

// Check audits up to the configured number of UI files under dir. A
// project with no UI files passes trivially.
func Check(dir string, cfg *config.Config) *Report {
	rep := &Report{
		Script:  "a11y_checker",
		Skill:   "accessibility-patterns",
		Project: dir,
	}

	w := scan.NewWalker(cfg.Scan.SkipDirs)
	files := w.Collect(dir, cfg.Scan.MaxUIFiles, func(rel string, d fs.DirEntry) bool {
		return scan.HasExt(rel, uiExtensions) &&
			!scan.NameMatchesAny(rel, "test", "spec", "mock")
	})
	rep.FilesChecked = len(files)

	for _, path := range files {
		res := checkFile(path)
		rep.Results = append(rep.Results, res)
		rep.PatternsFound += len(res.Passed)
		rep.IssuesFound += len(res.Issues)
	}

	rep.Passed = rep.IssuesFound < cfg.Thresholds.A11yMaxIssues
	return rep
}

func checkFile(path string) FileResult {
	res := FileResult{File: filepath.Base(path)}

	content, ok := scan.ReadText(path)
	if !ok {
		res.Issues = append(res.Issues, "Read error")
		return res
	}
	lower := strings.ToLower(content)

	// Images need alt text
	imgs := imgTagRE.FindAllString(content, -1)
	missingAlt := 0
	for _, img := range imgs {
		if !strings.Contains(strings.ToLower(img), "alt=") {
			missingAlt++
		}
	}
	if len(imgs) > 0 && missingAlt == 0 {
		res.Passed = append(res.Passed, fmt.Sprintf("All %d images have alt text", len(imgs)))
	} else if missingAlt > 0 {
		res.Issues = append(res.Issues, fmt.Sprintf("%d images missing alt text", missingAlt))
	}

	// Visible inputs need labels
	needLabel := 0
	for _, in := range inputTagRE.FindAllString(content, -1) {
		l := strings.ToLower(in)
		if !strings.Contains(l, `type="hidden"`) && !strings.Contains(l, `type="submit"`) {
			needLabel++
		}
	}
	hasLabels := strings.Contains(lower, "label") || strings.Contains(lower, "aria-label")
	if needLabel > 0 && hasLabels {
		res.Passed = append(res.Passed, "Form labels/aria-labels found")
	} else if needLabel > 0 {
		res.Issues = append(res.Issues, "Form inputs may be missing labels")
	}

	// Heading hierarchy
	h1 := len(h1RE.FindAllString(content, -1))
	h2 := len(h2RE.FindAllString(content, -1))
	h3 := len(h3RE.FindAllString(content, -1))
	if h1 <= 1 {
		res.Passed = append(res.Passed, "Proper H1 usage (0-1)")
	} else {
		res.Issues = append(res.Issues, fmt.Sprintf("Multiple H1 tags (%d) - bad for a11y", h1))
	}
	if h3 > 0 && h2 == 0 && h1 > 0 {
		res.Issues = append(res.Issues, "Skipped heading level (H1 -> H3)")
	}

	if scan.ContainsAny(content, "aria-label", "aria-labelledby", "aria-describedby", "role=") {
		res.Passed = append(res.Passed, "ARIA attributes used")
	}

	if scan.ContainsAny(content, ":focus", "onFocus", "tabIndex", "focus-visible") {
		res.Passed = append(res.Passed, "Focus handling present")
	}

	if icons := len(iconButtonRE.FindAllString(content, -1)); icons > 0 {
		res.Issues = append(res.Issues, fmt.Sprintf("%d icon-only buttons may need aria-label", icons))
	}

	// Link text should stand on its own
	links := linkTextRE.FindAllStringSubmatch(content, -1)
	problematic := 0
	for _, m := range links {
		if badLinkText[strings.TrimSpace(strings.ToLower(m[1]))] {
			problematic++
		}
	}
	if problematic > 0 {
		res.Issues = append(res.Issues, fmt.Sprintf("%d links with non-descriptive text", problematic))
	} else if len(links) > 0 {
		res.Passed = append(res.Passed, "Link text appears descriptive")
	}

	// Color theming via variables suggests contrast was considered
	if strings.Contains(lower, "color:") || strings.Contains(content, "backgroundColor") {
		if strings.Contains(lower, "contrast") || strings.Contains(content, "--") {
			res.Passed = append(res.Passed, "Color theming detected")
		}
	}

	if strings.Contains(lower, "skip") && strings.Contains(lower, "main") {
		res.Passed = append(res.Passed, "Skip link pattern detected")
	}

	return res
}

