package kit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/frontmatter"
)

// Agent is one agent definition and the skills it pulls in.
type Agent struct {
	Name        string   `json:"name"`
	File        string   `json:"file"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// Skill is one installed skill.
type Skill struct {
	Name        string `json:"name"`
	File        string `json:"file"`
	Description string `json:"description"`
	HasScripts  bool   `json:"has_scripts"`
}

// Workflow is one slash-command workflow.
type Workflow struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	File        string `json:"file"`
	Description string `json:"description"`
}

// Validation is the integrity check outcome for an installed kit.
type Validation struct {
	Valid    bool     `json:"valid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// Statistics counts the installed inventory.
type Statistics struct {
	Agents    int `json:"agents"`
	Skills    int `json:"skills"`
	Workflows int `json:"workflows"`
}

// Status is the full report for an installed kit.
type Status struct {
	KitPath    string     `json:"kit_path"`
	Statistics Statistics `json:"statistics"`
	Agents     []Agent    `json:"agents"`
	Skills     []Skill    `json:"skills"`
	Workflows  []Workflow `json:"workflows"`
	Validation Validation `json:"validation"`
}

// FindRoot walks up from start looking for a .agent directory that
// carries an ARCHITECTURE.md. start itself may be the .agent directory.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	if hasArchitecture(abs) {
		return abs, nil
	}
	for dir := abs; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, ".agent")
		if hasArchitecture(candidate) {
			return candidate, nil
		}
		if dir == filepath.Dir(dir) {
			return "", fmt.Errorf("no .agent directory found above %s", start)
		}
	}
}

func hasArchitecture(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "ARCHITECTURE.md"))
	return err == nil
}

// CollectStatus inventories the kit at agentDir and validates its
// integrity: agent skill references must resolve, skill directories
// must carry a SKILL.md, and ARCHITECTURE.md must exist.
func CollectStatus(agentDir string) (*Status, error) {
	if _, err := os.Stat(agentDir); err != nil {
		return nil, fmt.Errorf("kit directory not found: %s", agentDir)
	}

	st := &Status{
		KitPath:   agentDir,
		Agents:    collectAgents(agentDir),
		Skills:    collectSkills(agentDir),
		Workflows: collectWorkflows(agentDir),
	}
	st.Statistics = Statistics{
		Agents:    len(st.Agents),
		Skills:    len(st.Skills),
		Workflows: len(st.Workflows),
	}
	st.Validation = validateIntegrity(agentDir, st)
	return st, nil
}

func collectAgents(agentDir string) []Agent {
	files, _ := filepath.Glob(filepath.Join(agentDir, "agents", "*.md"))

	var agents []Agent
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fields, _, _ := frontmatter.Parse(string(data))

		rel, _ := filepath.Rel(agentDir, path)
		agents = append(agents, Agent{
			Name:        stem(path),
			File:        filepath.ToSlash(rel),
			Description: frontmatter.String(fields, "description"),
			Skills:      frontmatter.StringList(fields, "skills"),
		})
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].Name < agents[j].Name })
	return agents
}

func collectSkills(agentDir string) []Skill {
	skillsPath := filepath.Join(agentDir, "skills")
	entries, err := os.ReadDir(skillsPath)
	if err != nil {
		return nil
	}

	var skills []Skill
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		skillMD := filepath.Join(skillsPath, e.Name(), "SKILL.md")
		data, err := os.ReadFile(skillMD)
		if err != nil {
			continue
		}
		fields, _, _ := frontmatter.Parse(string(data))

		scripts, _ := filepath.Glob(filepath.Join(skillsPath, e.Name(), "scripts", "*.py"))
		rel, _ := filepath.Rel(agentDir, skillMD)
		skills = append(skills, Skill{
			Name:        e.Name(),
			File:        filepath.ToSlash(rel),
			Description: frontmatter.String(fields, "description"),
			HasScripts:  len(scripts) > 0,
		})
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills
}

func collectWorkflows(agentDir string) []Workflow {
	files, _ := filepath.Glob(filepath.Join(agentDir, "workflows", "*.md"))

	var workflows []Workflow
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fields, _, _ := frontmatter.Parse(string(data))

		rel, _ := filepath.Rel(agentDir, path)
		workflows = append(workflows, Workflow{
			Name:        stem(path),
			Command:     "/" + stem(path),
			File:        filepath.ToSlash(rel),
			Description: frontmatter.String(fields, "description"),
		})
	}
	sort.Slice(workflows, func(i, j int) bool { return workflows[i].Name < workflows[j].Name })
	return workflows
}

func validateIntegrity(agentDir string, st *Status) Validation {
	val := Validation{Issues: []string{}, Warnings: []string{}}

	known := map[string]bool{}
	for _, s := range st.Skills {
		known[s.Name] = true
	}
	for _, a := range st.Agents {
		for _, skill := range a.Skills {
			if skill != "" && !known[skill] {
				val.Issues = append(val.Issues,
					fmt.Sprintf("Agent '%s' references missing skill: %s", a.Name, skill))
			}
		}
	}

	entries, err := os.ReadDir(filepath.Join(agentDir, "skills"))
	if err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			if _, err := os.Stat(filepath.Join(agentDir, "skills", e.Name(), "SKILL.md")); err != nil {
				val.Warnings = append(val.Warnings,
					fmt.Sprintf("Skill directory '%s' missing SKILL.md", e.Name()))
			}
		}
	}

	if !hasArchitecture(agentDir) {
		val.Issues = append(val.Issues, "Missing ARCHITECTURE.md")
	}

	val.Valid = len(val.Issues) == 0
	return val
}

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
