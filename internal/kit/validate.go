// Package kit validates and reports on agent kit directories: the
// agents/skills/rules layout, ARCHITECTURE.md contents, per-tool rule
// file frontmatter, and cross-references between agents and skills.
package kit

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/frontmatter"
)

// Severity levels for validation results. Only ERROR fails a kit.
const (
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
	SeverityInfo    = "INFO"
)

var (
	// RequiredDirs must exist in every kit.
	RequiredDirs = []string{"agents", "skills", "rules"}
	// RecommendedDirs are warned about when missing.
	RecommendedDirs = []string{"workflows", "scripts"}
	// RequiredRuleFiles are the per-tool rule entry points.
	RequiredRuleFiles = []string{"GEMINI.md", "CLAUDE.md", "CURSOR.md", "AGENTS.md"}
)

// ruleFrontmatter lists the frontmatter fields each tool's rule file
// must carry, any one of which satisfies the check. Files absent from
// the map are plain markdown.
var ruleFrontmatter = map[string][]string{
	"GEMINI.md": {"trigger"},
	"CURSOR.md": {"description", "alwaysApply"},
}

var architectureSections = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Overview", regexp.MustCompile(`(?i)##.*Overview`)},
	{"Agents", regexp.MustCompile(`(?i)##.*Agents`)},
	{"Skills", regexp.MustCompile(`(?i)##.*Skills`)},
	{"Statistics", regexp.MustCompile(`(?i)##.*Statistics`)},
}

// CheckResult is one validation outcome.
type CheckResult struct {
	Passed   bool   `json:"passed"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Severity string `json:"severity"`
}

// Stats counts the kit's inventory.
type Stats struct {
	Agents    int `json:"agents"`
	Skills    int `json:"skills"`
	Workflows int `json:"workflows"`
	RuleFiles int `json:"rule_files"`
}

// ValidationReport is the full outcome of validating one kit.
type ValidationReport struct {
	KitPath  string        `json:"kitPath"`
	Results  []CheckResult `json:"results"`
	Stats    Stats         `json:"stats"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Passed   bool          `json:"passed"`
}

// Validator checks a kit directory against the standard layout.
type Validator struct {
	kitPath string
	results []CheckResult
	stats   Stats
}

// NewValidator builds a validator for the kit at path.
func NewValidator(kitPath string) *Validator {
	return &Validator{kitPath: kitPath}
}

func (v *Validator) add(passed bool, message, category, severity string) {
	v.results = append(v.results, CheckResult{
		Passed:   passed,
		Message:  message,
		Category: category,
		Severity: severity,
	})
}

func (v *Validator) fail(message, category string) {
	v.add(false, message, category, SeverityError)
}

// Validate runs every check and returns the report. A kit passes when
// no ERROR-severity check failed.
func (v *Validator) Validate() *ValidationReport {
	if info, err := os.Stat(v.kitPath); err != nil || !info.IsDir() {
		v.fail(fmt.Sprintf("Kit path does not exist: %s", v.kitPath), "structure")
		return v.report()
	}

	v.checkStructure()
	v.checkArchitecture()
	v.checkRules()
	v.checkAgents()
	v.checkSkills()
	v.checkWorkflows()
	v.checkPathReferences()

	return v.report()
}

func (v *Validator) report() *ValidationReport {
	rep := &ValidationReport{
		KitPath: v.kitPath,
		Results: v.results,
		Stats:   v.stats,
	}
	for _, r := range v.results {
		if r.Passed {
			continue
		}
		switch r.Severity {
		case SeverityError:
			rep.Errors++
		case SeverityWarning:
			rep.Warnings++
		}
	}
	rep.Passed = rep.Errors == 0
	return rep
}

func (v *Validator) checkStructure() {
	for _, name := range RequiredDirs {
		if v.isDir(name) {
			v.add(true, fmt.Sprintf("Required directory exists: %s/", name), "structure", SeverityInfo)
		} else {
			v.fail(fmt.Sprintf("Missing required directory: %s/", name), "structure")
		}
	}
	for _, name := range RecommendedDirs {
		if v.isDir(name) {
			v.add(true, fmt.Sprintf("Recommended directory exists: %s/", name), "structure", SeverityInfo)
		} else {
			v.add(true, fmt.Sprintf("Optional directory missing: %s/ (recommended)", name), "structure", SeverityWarning)
		}
	}
}

func (v *Validator) checkArchitecture() {
	content, err := os.ReadFile(filepath.Join(v.kitPath, "ARCHITECTURE.md"))
	if err != nil {
		v.fail("Missing required file: ARCHITECTURE.md", "content")
		return
	}
	v.add(true, "ARCHITECTURE.md exists", "content", SeverityInfo)

	for _, section := range architectureSections {
		if section.re.Match(content) {
			v.add(true, fmt.Sprintf("Section found: %s", section.name), "content", SeverityInfo)
		} else {
			v.fail(fmt.Sprintf("Missing section in ARCHITECTURE.md: %s", section.name), "content")
		}
	}
}

func (v *Validator) checkRules() {
	rulesPath := filepath.Join(v.kitPath, "rules")
	if !v.isDir("rules") {
		v.fail("Missing rules/ folder", "rules")
		return
	}

	for _, name := range RequiredRuleFiles {
		data, err := os.ReadFile(filepath.Join(rulesPath, name))
		if err != nil {
			v.fail(fmt.Sprintf("Missing required rule file: %s", name), "rules")
			continue
		}
		v.stats.RuleFiles++
		v.add(true, fmt.Sprintf("Rule file exists: %s", name), "rules", SeverityInfo)

		required, needsFrontmatter := ruleFrontmatter[name]
		if !needsFrontmatter {
			continue
		}

		fields, _, ok := frontmatter.Parse(string(data))
		if !ok {
			v.fail(fmt.Sprintf("Missing YAML frontmatter: %s", name), "rules")
			continue
		}
		found := false
		for _, f := range required {
			if frontmatter.Has(fields, f) {
				found = true
				break
			}
		}
		if found {
			v.add(true, fmt.Sprintf("Frontmatter valid: %s", name), "rules", SeverityInfo)
		} else {
			v.fail(fmt.Sprintf("Missing %s in frontmatter: %s", strings.Join(required, " or "), name), "rules")
		}
	}
}

func (v *Validator) checkAgents() {
	files, err := filepath.Glob(filepath.Join(v.kitPath, "agents", "*.md"))
	if err != nil || !v.isDir("agents") {
		return
	}
	sort.Strings(files)
	v.stats.Agents = len(files)

	if len(files) == 0 {
		v.fail("No agent files found in agents/", "agents")
		return
	}
	v.add(true, fmt.Sprintf("Found %d agent(s)", len(files)), "agents", SeverityInfo)

	for _, path := range files {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			v.fail(fmt.Sprintf("Unreadable agent file: %s", name), "agents")
			continue
		}

		fields, _, ok := frontmatter.Parse(string(data))
		if !ok {
			v.fail(fmt.Sprintf("Missing frontmatter: %s", name), "agents")
			continue
		}
		for _, field := range []string{"name", "description", "skills"} {
			if !frontmatter.Has(fields, field) {
				v.add(false, fmt.Sprintf("%s: missing %s:", name, field), "agents", SeverityWarning)
			}
		}
	}
}

func (v *Validator) checkSkills() {
	skillsPath := filepath.Join(v.kitPath, "skills")
	entries, err := os.ReadDir(skillsPath)
	if err != nil {
		return
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	v.stats.Skills = len(dirs)

	if len(dirs) == 0 {
		v.fail("No skill directories found in skills/", "skills")
		return
	}
	v.add(true, fmt.Sprintf("Found %d skill(s)", len(dirs)), "skills", SeverityInfo)

	for _, name := range dirs {
		data, err := os.ReadFile(filepath.Join(skillsPath, name, "SKILL.md"))
		if err != nil {
			v.fail(fmt.Sprintf("Missing SKILL.md in: %s/", name), "skills")
			continue
		}

		fields, _, ok := frontmatter.Parse(string(data))
		if !ok {
			v.fail(fmt.Sprintf("Missing frontmatter: %s/SKILL.md", name), "skills")
			continue
		}
		if !frontmatter.Has(fields, "name") || !frontmatter.Has(fields, "description") {
			v.add(false, fmt.Sprintf("%s: missing name/description", name), "skills", SeverityWarning)
		}
	}
}

func (v *Validator) checkWorkflows() {
	if !v.isDir("workflows") {
		v.add(true, "No workflows/ folder (optional)", "workflows", SeverityWarning)
		return
	}

	files, _ := filepath.Glob(filepath.Join(v.kitPath, "workflows", "*.md"))
	sort.Strings(files)
	v.stats.Workflows = len(files)

	if len(files) == 0 {
		v.add(true, "No workflow files (optional)", "workflows", SeverityWarning)
		return
	}
	v.add(true, fmt.Sprintf("Found %d workflow(s)", len(files)), "workflows", SeverityInfo)

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fields, _, ok := frontmatter.Parse(string(data))
		if !ok || !frontmatter.Has(fields, "description") {
			v.add(false, fmt.Sprintf("Missing description in: %s", filepath.Base(path)), "workflows", SeverityWarning)
		}
	}
}

// checkPathReferences confirms rule files refer to the tool-neutral
// .agent/ prefix rather than a specific tool's directory.
func (v *Validator) checkPathReferences() {
	if !v.isDir("rules") {
		return
	}

	files, _ := filepath.Glob(filepath.Join(v.kitPath, "rules", "*.md"))
	sort.Strings(files)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.Contains(string(data), ".agent/") {
			v.add(true, fmt.Sprintf("%s: uses .agent/ placeholder", filepath.Base(path)), "paths", SeverityInfo)
		}
	}
	v.add(true, "Path references look valid", "paths", SeverityInfo)
}

func (v *Validator) isDir(name string) bool {
	info, err := os.Stat(filepath.Join(v.kitPath, name))
	return err == nil && info.IsDir()
}
