package runner

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ProjectInfo is the detected project type and the verification
// categories that apply to it.
type ProjectInfo struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}

func readPackageDeps(dir string) (map[string]string, bool) {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return nil, false
	}
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, true
	}
	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for k, v := range pkg.Dependencies {
		deps[k] = v
	}
	for k, v := range pkg.DevDependencies {
		deps[k] = v
	}
	return deps, true
}

func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// DetectProjectType classifies a project for checklist filtering.
func DetectProjectType(dir string) string {
	if deps, ok := readPackageDeps(dir); ok {
		switch {
		case deps["next"] != "":
			return "nextjs"
		case deps["react"] != "":
			return "react"
		case deps["express"] != "" || deps["fastify"] != "":
			return "node-backend"
		default:
			return "node"
		}
	}
	if fileExists(dir, "pyproject.toml") || fileExists(dir, "requirements.txt") {
		return "python"
	}
	if fileExists(dir, "pubspec.yaml") {
		return "flutter"
	}
	if fileExists(dir, "go.mod") {
		return "go"
	}
	return "unknown"
}

// DetectProjectInfo classifies a project for the verification suite.
// Security, Code Quality, and Testing always apply; the rest depend on
// the stack.
func DetectProjectInfo(dir string) ProjectInfo {
	info := ProjectInfo{
		Type:       "unknown",
		Categories: []string{"Security", "Code Quality", "Testing"},
	}

	if deps, ok := readPackageDeps(dir); ok {
		switch {
		case deps["next"] != "" || deps["react"] != "":
			info.Type = "web-frontend"
			info.Categories = append(info.Categories,
				"UX & Accessibility", "SEO", "Performance", "E2E Testing")
		case deps["express"] != "" || deps["fastify"] != "":
			info.Type = "node-backend"
			info.Categories = append(info.Categories, "Data Layer", "API")
		default:
			info.Type = "node"
		}
	}

	if fileExists(dir, "pubspec.yaml") {
		info.Type = "flutter"
		info.Categories = append(info.Categories, "Mobile")
	}
	if fileExists(dir, "pyproject.toml") {
		info.Type = "python"
		info.Categories = append(info.Categories, "Data Layer", "API")
	}

	return info
}

// HasCategory reports whether a category applies to the project.
func (p ProjectInfo) HasCategory(name string) bool {
	for _, c := range p.Categories {
		if c == name {
			return true
		}
	}
	return false
}
