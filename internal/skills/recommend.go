package skills

import (
	"sort"
	"strings"

	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/workspace"
)

// Detection is the analyzer's view of what was found in the workspace.
type Detection struct {
	ConfigFiles  []string            `json:"configFiles"`
	Technologies []string            `json:"technologies"`
	Frameworks   []string            `json:"frameworks"`
	Dependencies map[string][]string `json:"dependencies"`
}

// Recommendations is the skill enable/disable set computed for a workspace.
type Recommendations struct {
	Enable     []string `json:"enable"`
	Disable    []string `json:"disable"`
	CoreSkills []string `json:"coreSkills"`
}

// Summary carries the recommendation counts.
type Summary struct {
	TotalSkillsAvailable int `json:"totalSkillsAvailable"`
	RecommendedEnabled   int `json:"recommendedEnabled"`
	RecommendedDisabled  int `json:"recommendedDisabled"`
	CoreSkillsCount      int `json:"coreSkillsCount"`
}

// Analysis is the full workspace analysis report.
type Analysis struct {
	Success         bool            `json:"success"`
	ReportID        string          `json:"reportId"`
	AnalyzedAt      string          `json:"analyzedAt"`
	WorkspacePath   string          `json:"workspacePath"`
	Detection       Detection       `json:"detection"`
	Recommendations Recommendations `json:"recommendations"`
	Summary         Summary         `json:"summary"`
}

// Analyze scans dir and computes the skill recommendation set.
func Analyze(dir string) (*Analysis, error) {
	res, err := workspace.NewScanner(dir).Scan()
	if err != nil {
		return nil, err
	}
	return Recommend(res), nil
}

// Recommend computes skill recommendations from a raw detection result.
func Recommend(res *workspace.Result) *Analysis {
	recommended := map[string]struct{}{}
	techs := map[string]struct{}{}
	frameworks := map[string]struct{}{}

	// Package-manager config files -> technologies
	for _, file := range res.PackageFiles {
		if tech, ok := configTechs[file]; ok {
			techs[tech] = struct{}{}
		}
	}

	// Framework marker files -> skills + framework labels. Only files in
	// the analyzer's own marker table count; the workspace scanner tracks
	// a wider set (pubspec.yaml and friends) for the techstack profile.
	for _, file := range res.MarkerFiles {
		skillList, ok := markerSkills[file]
		if !ok {
			continue
		}
		for _, s := range skillList {
			recommended[s] = struct{}{}
		}
		if fw := frameworkLabel(file); fw != "" {
			frameworks[fw] = struct{}{}
		}
	}

	// Marker directories -> skills
	for _, dir := range res.MarkerDirs {
		for _, s := range directorySkills[dir] {
			recommended[s] = struct{}{}
		}
	}

	// npm dependencies -> skills (substring matching)
	for _, dep := range res.NPMDependencies() {
		for fragment, skillList := range dependencySkills {
			if strings.Contains(dep, fragment) {
				for _, s := range skillList {
					recommended[s] = struct{}{}
				}
			}
		}
	}

	// Flutter workspaces always get the mobile skills
	if contains(res.PackageFiles, "pubspec.yaml") {
		recommended["flutter-patterns"] = struct{}{}
		recommended["mobile-design"] = struct{}{}
	}

	// Core skills are always enabled
	for _, s := range Core {
		recommended[s] = struct{}{}
	}

	enable := setToSorted(recommended)
	var disable []string
	for _, s := range All {
		if _, ok := recommended[s]; ok {
			continue
		}
		if IsCore(s) {
			continue
		}
		disable = append(disable, s)
	}
	sort.Strings(disable)
	if disable == nil {
		disable = []string{}
	}

	deps := res.Dependencies
	if deps == nil {
		deps = map[string][]string{}
	}

	// The analyzer reports only the config files its own tables know:
	// package-manager configs, framework markers, and marker directories
	// (recorded with a trailing slash).
	var configFiles []string
	for _, file := range res.PackageFiles {
		if _, ok := configTechs[file]; ok {
			configFiles = append(configFiles, file)
		}
	}
	for _, file := range res.MarkerFiles {
		if _, ok := markerSkills[file]; ok {
			configFiles = append(configFiles, file)
		}
	}
	for _, dir := range res.MarkerDirs {
		if _, ok := directorySkills[dir]; ok {
			configFiles = append(configFiles, dir+"/")
		}
	}
	sort.Strings(configFiles)

	return &Analysis{
		Success:       true,
		ReportID:      report.NewID(),
		AnalyzedAt:    report.Timestamp(),
		WorkspacePath: res.Workspace,
		Detection: Detection{
			ConfigFiles:  orEmpty(configFiles),
			Technologies: setToSorted(techs),
			Frameworks:   setToSorted(frameworks),
			Dependencies: deps,
		},
		Recommendations: Recommendations{
			Enable:     enable,
			Disable:    disable,
			CoreSkills: Core,
		},
		Summary: Summary{
			TotalSkillsAvailable: len(All),
			RecommendedEnabled:   len(enable),
			RecommendedDisabled:  len(disable),
			CoreSkillsCount:      len(Core),
		},
	}
}

// frameworkLabel derives a display label from a marker filename:
// "next.config.js" -> "next", "angular.json" -> "angular".
// Docker markers and dot-led files carry no framework label.
func frameworkLabel(file string) string {
	base, _, _ := strings.Cut(file, ".")
	base = strings.ReplaceAll(base, "_", "-")
	if base == "" || base == "Dockerfile" || base == "docker-compose" {
		return ""
	}
	return base
}

func setToSorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
