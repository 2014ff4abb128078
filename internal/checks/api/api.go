// Package api checks OpenAPI specs and API route code for best
// practices: documented endpoints, error handling, explicit status
// codes, input validation, and auth.
package api

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/config"
	"github.com/nvdnvd00/agent-kits/internal/scan"
)

var (
	errorHandlingRE = regexp.MustCompile(`try\s*\{|try:|\.catch\(|except\s+|catch\s*\(`)
	statusCodeRE    = regexp.MustCompile(`\.status\(\d{3}\)|status\s*=\s*\d{3}|statusCode.*\d{3}|HttpStatus\.|res\.status\(`)
	validationRE    = regexp.MustCompile(`(?i)validate|schema|zod|joi|yup|pydantic|@Body\(`)
	authRE          = regexp.MustCompile(`(?i)auth|jwt|bearer|token|middleware|guard`)
	rateLimitRE     = regexp.MustCompile(`(?i)rateLimit|throttle|rate.?limit`)
	loggingRE       = regexp.MustCompile(`console\.(log|error|warn)|logger\.|logging\.\w+`)
)

var httpMethods = map[string]bool{
	"get": true, "post": true, "put": true, "patch": true, "delete": true,
}

// FileResult is the outcome for one API file.
type FileResult struct {
	File   string
	Kind   string
	Passed []string
	Issues []string
}

// Report is the check outcome for a project.
type Report struct {
	Script       string `json:"script"`
	Skill        string `json:"skill"`
	Project      string `json:"project"`
	FilesChecked int    `json:"files_checked"`
	TotalPassed  int    `json:"total_passed"`
	TotalIssues  int    `json:"total_issues"`
	Passed       bool   `json:"passed"`
	Message      string `json:"message,omitempty"`

	Results []FileResult `json:"-"`
}

// Check validates up to the configured number of API files under dir:
// OpenAPI specs first, then route files, then controllers. Only the
// first three issues per file count toward the pass threshold, so one
// messy spec cannot fail the project on its own.
func Check(dir string, cfg *config.Config) *Report {
	rep := &Report{
		Script:  "api_validator",
		Skill:   "api-patterns",
		Project: dir,
	}

	files := findAPIFiles(dir, cfg.Scan.SkipDirs, cfg.Scan.MaxAPIFiles)
	if len(files) == 0 {
		rep.Passed = true
		rep.Message = "No API files found"
		return rep
	}
	rep.FilesChecked = len(files)

	for _, f := range files {
		var res FileResult
		if f.kind == "openapi" {
			res = checkOpenAPISpec(f.path)
		} else {
			res = checkAPICode(f.path)
		}
		res.File = filepath.Base(f.path)
		res.Kind = f.kind
		rep.Results = append(rep.Results, res)

		rep.TotalPassed += len(res.Passed)
		counted := len(res.Issues)
		if counted > 3 {
			counted = 3
		}
		rep.TotalIssues += counted
	}

	rep.Passed = rep.TotalIssues < cfg.Thresholds.APIMaxIssues
	return rep
}

type apiFile struct {
	kind string
	path string
}

func findAPIFiles(dir string, skipDirs []string, limit int) []apiFile {
	w := scan.NewWalker(skipDirs)

	specExts := map[string]bool{".json": true, ".yaml": true, ".yml": true}
	specs := w.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		name := strings.ToLower(filepath.Base(rel))
		return specExts[filepath.Ext(name)] &&
			(strings.HasPrefix(name, "openapi") || strings.HasPrefix(name, "swagger"))
	})
	routes := w.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		ext := filepath.Ext(rel)
		dirs := strings.Split(filepath.Dir(rel), "/")
		for _, p := range dirs {
			if p == "routes" && (ext == ".ts" || ext == ".js") {
				return true
			}
			if p == "api" && (ext == ".ts" || ext == ".py") {
				return true
			}
		}
		return false
	})
	controllers := w.Collect(dir, 0, func(rel string, d fs.DirEntry) bool {
		ext := filepath.Ext(rel)
		if ext != ".ts" && ext != ".js" {
			return false
		}
		for _, p := range strings.Split(filepath.Dir(rel), "/") {
			if p == "controllers" {
				return true
			}
		}
		return false
	})

	var files []apiFile
	seen := map[string]bool{}
	add := func(kind string, paths []string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				files = append(files, apiFile{kind, p})
			}
		}
	}
	add("openapi", specs)
	add("routes", routes)
	add("controllers", controllers)

	if len(files) > limit {
		files = files[:limit]
	}
	return files
}

func checkOpenAPISpec(path string) FileResult {
	var res FileResult

	content, ok := scan.ReadText(path)
	if !ok {
		res.Issues = append(res.Issues, "Read error")
		return res
	}

	if filepath.Ext(path) != ".json" {
		// YAML specs get a shallow textual check
		if scan.ContainsAny(content, "openapi:", "swagger:") {
			res.Passed = append(res.Passed, "OpenAPI version defined")
		}
		if strings.Contains(content, "paths:") {
			res.Passed = append(res.Passed, "Paths section exists")
		}
		if strings.Contains(content, "components:") {
			res.Passed = append(res.Passed, "Components defined")
		}
		return res
	}

	var spec struct {
		OpenAPI string `json:"openapi"`
		Swagger string `json:"swagger"`
		Info    struct {
			Title       string `json:"title"`
			Version     string `json:"version"`
			Description string `json:"description"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Summary     string          `json:"summary"`
			Description string          `json:"description"`
			Responses   json.RawMessage `json:"responses"`
		} `json:"paths"`
	}
	if err := json.Unmarshal([]byte(content), &spec); err != nil {
		msg := err.Error()
		if len(msg) > 30 {
			msg = msg[:30]
		}
		res.Issues = append(res.Issues, "Invalid JSON: "+msg)
		return res
	}

	if spec.OpenAPI != "" || spec.Swagger != "" {
		res.Passed = append(res.Passed, "OpenAPI version defined")
	}
	if spec.Info.Title != "" {
		res.Passed = append(res.Passed, "API title defined")
	}
	if spec.Info.Version != "" {
		res.Passed = append(res.Passed, "API version defined")
	}
	if spec.Info.Description == "" {
		res.Issues = append(res.Issues, "API description missing")
	}

	if len(spec.Paths) == 0 {
		res.Issues = append(res.Issues, "No paths defined")
		return res
	}
	res.Passed = append(res.Passed, fmt.Sprintf("%d endpoints defined", len(spec.Paths)))

	paths := make([]string, 0, len(spec.Paths))
	for p := range spec.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		methods := make([]string, 0, len(spec.Paths[p]))
		for m := range spec.Paths[p] {
			methods = append(methods, m)
		}
		sort.Strings(methods)
		for _, m := range methods {
			if !httpMethods[m] {
				continue
			}
			op := spec.Paths[p][m]
			if len(op.Responses) == 0 {
				res.Issues = append(res.Issues, fmt.Sprintf("%s %s: No responses", strings.ToUpper(m), p))
			}
			if op.Summary == "" && op.Description == "" {
				res.Issues = append(res.Issues, fmt.Sprintf("%s %s: No description", strings.ToUpper(m), p))
			}
		}
	}

	return res
}

func checkAPICode(path string) FileResult {
	var res FileResult

	content, ok := scan.ReadText(path)
	if !ok {
		res.Issues = append(res.Issues, "Read error")
		return res
	}

	if errorHandlingRE.MatchString(content) {
		res.Passed = append(res.Passed, "Error handling present")
	} else {
		res.Issues = append(res.Issues, "No error handling found")
	}

	if statusCodeRE.MatchString(content) {
		res.Passed = append(res.Passed, "HTTP status codes used")
	} else {
		res.Issues = append(res.Issues, "No explicit status codes")
	}

	if validationRE.MatchString(content) {
		res.Passed = append(res.Passed, "Input validation present")
	} else {
		res.Issues = append(res.Issues, "No input validation detected")
	}

	if authRE.MatchString(content) {
		res.Passed = append(res.Passed, "Authentication detected")
	}
	if rateLimitRE.MatchString(content) {
		res.Passed = append(res.Passed, "Rate limiting present")
	}
	if loggingRE.MatchString(content) {
		res.Passed = append(res.Passed, "Logging present")
	}
	if strings.Contains(strings.ToLower(content), "cors") {
		res.Passed = append(res.Passed, "CORS configuration")
	}

	return res
}
