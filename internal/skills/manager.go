package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/frontmatter"
)

// DisabledDirName is the holding directory for disabled skills.
const DisabledDirName = ".disabled"

// Info describes one skill directory on disk.
type Info struct {
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	HasSkillMD  bool     `json:"hasSkillMd"`
	HasScripts  bool     `json:"hasScripts"`
	Description string   `json:"description"`
	Scripts     []string `json:"scripts,omitempty"`
}

// Manager enables, disables, and inspects skills under a skills directory.
// Disabling moves the skill directory into skills/.disabled/ so nothing
// is ever deleted.
type Manager struct {
	skillsDir string
}

// NewManager builds a manager rooted at skillsDir.
func NewManager(skillsDir string) *Manager {
	return &Manager{skillsDir: skillsDir}
}

func (m *Manager) disabledDir() string {
	return filepath.Join(m.skillsDir, DisabledDirName)
}

// Active lists enabled skills sorted by name.
func (m *Manager) Active() ([]Info, error) {
	return m.listDir(m.skillsDir)
}

// Disabled lists skills parked under .disabled/, sorted by name.
// A missing .disabled/ directory means no skills are disabled.
func (m *Manager) Disabled() ([]Info, error) {
	if _, err := os.Stat(m.disabledDir()); os.IsNotExist(err) {
		return nil, nil
	}
	return m.listDir(m.disabledDir())
}

// Enable moves a disabled skill back into the active set.
func (m *Manager) Enable(name string) error {
	source := filepath.Join(m.disabledDir(), name)
	target := filepath.Join(m.skillsDir, name)

	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("skill %q not found in %s/", name, DisabledDirName)
	}
	if _, err := os.Stat(target); err == nil {
		return fmt.Errorf("skill %q already active", name)
	}
	if err := os.Rename(source, target); err != nil {
		return fmt.Errorf("failed to enable %q: %w", name, err)
	}
	return nil
}

// Disable parks an active skill under .disabled/.
// Dot-directories are system directories and cannot be disabled.
func (m *Manager) Disable(name string) error {
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("cannot disable system directory %q", name)
	}

	source := filepath.Join(m.skillsDir, name)
	target := filepath.Join(m.disabledDir(), name)

	if _, err := os.Stat(source); err != nil {
		return fmt.Errorf("skill %q not found", name)
	}
	if err := os.MkdirAll(m.disabledDir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s/: %w", DisabledDirName, err)
	}
	if err := os.Rename(source, target); err != nil {
		return fmt.Errorf("failed to disable %q: %w", name, err)
	}
	return nil
}

// Search returns active skills whose name or description contains the
// query, case-insensitive.
func (m *Manager) Search(query string) ([]Info, error) {
	active, err := m.Active()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matches []Info
	for _, info := range active {
		if strings.Contains(strings.ToLower(info.Name), q) ||
			strings.Contains(strings.ToLower(info.Description), q) {
			matches = append(matches, info)
		}
	}
	return matches, nil
}

// Describe returns detailed info for one active skill, including its
// script listing.
func (m *Manager) Describe(name string) (*Info, error) {
	skillDir := filepath.Join(m.skillsDir, name)
	if _, err := os.Stat(skillDir); err != nil {
		return nil, fmt.Errorf("skill %q not found", name)
	}

	info := m.skillInfo(skillDir)
	if info.HasScripts {
		entries, err := os.ReadDir(filepath.Join(skillDir, "scripts"))
		if err == nil {
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				info.Scripts = append(info.Scripts, e.Name())
			}
			sort.Strings(info.Scripts)
		}
	}
	return &info, nil
}

func (m *Manager) listDir(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills directory: %w", err)
	}

	var infos []Info
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		infos = append(infos, m.skillInfo(filepath.Join(dir, e.Name())))
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (m *Manager) skillInfo(skillDir string) Info {
	info := Info{
		Name: filepath.Base(skillDir),
		Path: skillDir,
	}

	scriptsDir := filepath.Join(skillDir, "scripts")
	if st, err := os.Stat(scriptsDir); err == nil && st.IsDir() {
		info.HasScripts = true
	}

	data, err := os.ReadFile(filepath.Join(skillDir, "SKILL.md"))
	if err != nil {
		return info
	}
	info.HasSkillMD = true

	if fields, _, ok := frontmatter.Parse(string(data)); ok {
		desc := frontmatter.String(fields, "description")
		if len(desc) > 80 {
			desc = desc[:80]
		}
		info.Description = desc
	}
	return info
}
