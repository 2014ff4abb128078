// Package seo scores public-facing pages for search and AI citation
// readiness: structured data, heading structure, meta tags, author and
// date signals, and Open Graph coverage.
package seo

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/config"
	"github.com/nvdnvd00/agent-kits/internal/scan"
)

var (
	h1RE    = regexp.MustCompile(`(?i)<h1[^>]*>`)
	h2RE    = regexp.MustCompile(`(?i)<h2[^>]*>`)
	listRE  = regexp.MustCompile(`(?i)<(ul|ol)[^>]*>`)
	tableRE = regexp.MustCompile(`(?i)<table[^>]*>`)
	dateRE  = regexp.MustCompile(`(?i)(datePublished|dateModified|datetime=|pubdate)`)
)

var pageNameHints = []string{"page", "index", "home", "about", "blog", "post", "product"}

// PageResult is the score breakdown for one page.
type PageResult struct {
	File   string
	Passed []string
	Issues []string
	Score  int
}

// Report is the audit outcome for a project. A project with no pages
// passes trivially.
type Report struct {
	Script       string `json:"script"`
	Skill        string `json:"skill"`
	Project      string `json:"project"`
	PagesChecked int    `json:"pages_checked"`
	AverageScore int    `json:"average_score,omitempty"`
	Passed       bool   `json:"passed"`
	Message      string `json:"message,omitempty"`

	Results []PageResult `json:"-"`
}

// Check audits up to the configured number of pages: HTML files named
// like pages, and tsx/jsx files under pages/ or app/ directories. Test
// directories are excluded on top of the usual skip list.
func Check(dir string, cfg *config.Config) *Report {
	rep := &Report{
		Script:  "seo_checker",
		Skill:   "seo-patterns",
		Project: dir,
	}

	skip := append([]string{"test", "tests"}, cfg.Scan.SkipDirs...)
	if len(cfg.Scan.SkipDirs) == 0 {
		skip = append(skip, scan.DefaultSkipDirs...)
	}

	w := scan.NewWalker(skip)
	files := w.Collect(dir, cfg.Scan.MaxPages, isPage)
	if len(files) == 0 {
		rep.Passed = true
		rep.Message = "No pages found"
		return rep
	}

	total := 0
	for _, path := range files {
		res := checkPage(path)
		rep.Results = append(rep.Results, res)
		total += res.Score
	}
	rep.PagesChecked = len(rep.Results)

	avg := float64(total) / float64(len(rep.Results))
	rep.AverageScore = int(math.Round(avg))
	rep.Passed = avg >= float64(cfg.Thresholds.SEOMinScore)
	return rep
}

func isPage(rel string, d fs.DirEntry) bool {
	ext := strings.ToLower(filepath.Ext(rel))
	inApp := false
	for _, part := range strings.Split(filepath.Dir(rel), "/") {
		if part == "pages" || part == "app" {
			inApp = true
			break
		}
	}

	switch ext {
	case ".tsx", ".jsx":
		return inApp
	case ".html":
		if inApp {
			return true
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(rel), ext))
		for _, hint := range pageNameHints {
			if strings.Contains(stem, hint) {
				return true
			}
		}
	}
	return false
}

func checkPage(path string) PageResult {
	res := PageResult{File: filepath.Base(path)}

	content, ok := scan.ReadText(path)
	if !ok {
		res.Issues = append(res.Issues, "Read error")
		return res
	}
	lower := strings.ToLower(content)

	pass := func(s string) { res.Passed = append(res.Passed, s) }
	issue := func(s string) { res.Issues = append(res.Issues, s) }

	// Structured data is the strongest AI citation signal
	if strings.Contains(content, "application/ld+json") {
		pass("JSON-LD structured data")
		if strings.Contains(content, `"@type"`) {
			if strings.Contains(content, "Article") {
				pass("Article schema")
			}
			if strings.Contains(content, "FAQPage") {
				pass("FAQ schema (highly citable)")
			}
		}
	} else {
		issue("No JSON-LD structured data")
	}

	h1 := len(h1RE.FindAllString(content, -1))
	h2 := len(h2RE.FindAllString(content, -1))
	switch {
	case h1 == 1:
		pass("Single H1 heading")
	case h1 == 0:
		issue("No H1 heading")
	default:
		issue(fmt.Sprintf("Multiple H1 headings (%d)", h1))
	}
	if h2 >= 2 {
		pass(fmt.Sprintf("%d H2 subheadings", h2))
	} else {
		issue("Add more H2 subheadings")
	}

	if strings.Contains(content, "<title>") || strings.Contains(content, "title=") {
		pass("Title tag found")
	} else {
		issue("Missing title tag")
	}
	if strings.Contains(lower, "meta") && strings.Contains(lower, "description") {
		pass("Meta description")
	} else {
		issue("Missing meta description")
	}

	if scan.ContainsAny(lower, "author", "byline", "written-by", `rel="author"`) {
		pass("Author attribution")
	} else {
		issue("No author info (E-E-A-T)")
	}

	if dateRE.MatchString(content) {
		pass("Publication date")
	} else {
		issue("No publication date")
	}

	if strings.Contains(content, "og:") {
		pass("Open Graph tags")
	}

	if lists := len(listRE.FindAllString(content, -1)); lists >= 2 {
		pass(fmt.Sprintf("%d lists", lists))
	}
	if tables := len(tableRE.FindAllString(content, -1)); tables >= 1 {
		pass(fmt.Sprintf("%d table(s)", tables))
	}

	if total := len(res.Passed) + len(res.Issues); total > 0 {
		res.Score = int(math.Round(float64(len(res.Passed)) / float64(total) * 100))
	}
	return res
}
