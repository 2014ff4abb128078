// Package workspace implements the shared workspace detection core:
// config-file to technology mapping, dependency matching, and category
// aggregation. The techstack profiler and the skill recommender are both
// built on the Result it produces.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Result is the raw outcome of a workspace scan. Consumers shape it into
// their own report formats.
type Result struct {
	// Workspace is the resolved absolute path that was scanned.
	Workspace string

	// ConfigFiles lists every config file and marker directory found,
	// directories with a trailing slash.
	ConfigFiles []string

	// Languages detected from package-manager config files.
	Languages []string

	// Frameworks detected from marker files, directories, and dependencies.
	Frameworks []string

	// Databases derived from the framework set.
	Databases []string

	// Tools detected from marker directories.
	Tools []string

	// Categories holds the fixed capability flags, all keys always present.
	Categories map[string]bool

	// Dependencies by package manager ("npm" -> sorted dependency names).
	Dependencies map[string][]string

	// PackageFiles, MarkerFiles, and MarkerDirs record raw presence for
	// consumers that apply their own mapping tables.
	PackageFiles []string
	MarkerFiles  []string
	MarkerDirs   []string
}

// NPMDependencies returns the npm dependency list, nil-safe.
func (r *Result) NPMDependencies() []string {
	return r.Dependencies["npm"]
}

// Scanner detects technologies in a workspace directory.
type Scanner struct {
	workspace string
}

// NewScanner builds a scanner for the given directory. The path is
// resolved to an absolute path so reports are stable regardless of cwd.
func NewScanner(dir string) *Scanner {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &Scanner{workspace: abs}
}

// Workspace returns the resolved workspace path.
func (s *Scanner) Workspace() string {
	return s.workspace
}

// Scan runs the full detection pass: config files, framework markers,
// marker directories, then dependency manifests.
func (s *Scanner) Scan() (*Result, error) {
	info, err := os.Stat(s.workspace)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("workspace not found: %s", s.workspace)
	}

	res := &Result{
		Workspace:    s.workspace,
		Categories:   make(map[string]bool, len(mainCategories)),
		Dependencies: map[string][]string{},
	}
	for _, c := range mainCategories {
		res.Categories[c] = false
	}

	configFiles := map[string]struct{}{}
	languages := map[string]struct{}{}
	frameworks := map[string]struct{}{}
	tools := map[string]struct{}{}

	// Step 1: package-manager config files -> languages
	for filename, language := range configLanguages {
		if s.fileExists(filename) {
			configFiles[filename] = struct{}{}
			languages[language] = struct{}{}
			res.PackageFiles = append(res.PackageFiles, filename)
		}
	}

	// Step 2: framework marker files
	for filename, m := range frameworkMarkers {
		if s.fileExists(filename) {
			configFiles[filename] = struct{}{}
			frameworks[m.Framework] = struct{}{}
			res.setCategory(m.Category)
			res.MarkerFiles = append(res.MarkerFiles, filename)
		}
	}

	// Step 3: marker directories
	for dirname, m := range directoryMarkers {
		if s.dirExists(dirname) {
			configFiles[dirname+"/"] = struct{}{}
			frameworks[m.Framework] = struct{}{}
			tools[m.Framework] = struct{}{}
			res.setCategory(m.Category)
			res.MarkerDirs = append(res.MarkerDirs, dirname)
		}
	}

	// Step 4: dependency manifests
	s.parseDependencies(res, frameworks)

	res.ConfigFiles = sortedKeys(configFiles)
	res.Languages = sortedKeys(languages)
	res.Frameworks = sortedKeys(frameworks)
	res.Tools = sortedKeys(tools)
	sort.Strings(res.PackageFiles)
	sort.Strings(res.MarkerFiles)
	sort.Strings(res.MarkerDirs)

	// Databases derive from the framework set
	for _, fw := range databaseFrameworks {
		if _, ok := frameworks[fw]; ok {
			res.Databases = append(res.Databases, fw)
		}
	}
	sort.Strings(res.Databases)

	return res, nil
}

// parseDependencies parses package manifests and folds dependency matches
// into categories and frameworks.
func (s *Scanner) parseDependencies(res *Result, frameworks map[string]struct{}) {
	deps := s.npmDependencies()
	if deps != nil {
		res.Dependencies["npm"] = deps

		for _, dep := range deps {
			for pattern, category := range npmCategories {
				if dep == pattern || strings.HasPrefix(dep, pattern+"/") {
					res.setCategory(category)
				}
			}
			if fw, ok := npmFrameworks[dep]; ok {
				frameworks[fw] = struct{}{}
			}
		}
	}

	// Mobile platforms flagged by manifest presence alone
	if s.fileExists("pubspec.yaml") {
		frameworks["flutter"] = struct{}{}
		res.setCategory("mobile")
	}
	if s.fileExists("Podfile") {
		res.setCategory("mobile")
	}
	if s.fileExists("build.gradle") || s.fileExists("build.gradle.kts") {
		res.setCategory("mobile")
	}
}

// npmDependencies reads package.json and returns the merged, sorted
// dependency + devDependency names. Malformed manifests are ignored.
func (s *Scanner) npmDependencies() []string {
	data, err := os.ReadFile(filepath.Join(s.workspace, "package.json"))
	if err != nil {
		return nil
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}

	merged := map[string]struct{}{}
	for name := range pkg.Dependencies {
		merged[name] = struct{}{}
	}
	for name := range pkg.DevDependencies {
		merged[name] = struct{}{}
	}
	if len(merged) == 0 {
		return []string{}
	}
	return sortedKeys(merged)
}

func (r *Result) setCategory(category string) {
	if main, ok := categoryFold[category]; ok {
		category = main
	}
	if _, ok := r.Categories[category]; ok {
		r.Categories[category] = true
	}
}

func (s *Scanner) fileExists(name string) bool {
	info, err := os.Stat(filepath.Join(s.workspace, name))
	return err == nil && !info.IsDir()
}

func (s *Scanner) dirExists(name string) bool {
	info, err := os.Stat(filepath.Join(s.workspace, filepath.FromSlash(name)))
	return err == nil && info.IsDir()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
