// Package techstack shapes a workspace scan into the technology profile
// report consumed by skill filtering agents.
package techstack

import (
	"github.com/nvdnvd00/agent-kits/internal/report"
	"github.com/nvdnvd00/agent-kits/internal/workspace"
)

// Detection is the technology detection section of a profile.
type Detection struct {
	ConfigFiles  []string            `json:"configFiles"`
	Languages    []string            `json:"languages"`
	Frameworks   []string            `json:"frameworks"`
	Databases    []string            `json:"databases"`
	Tools        []string            `json:"tools"`
	Dependencies map[string][]string `json:"dependencies"`
}

// Profile is the full techstack scan report.
type Profile struct {
	Success       bool            `json:"success"`
	ReportID      string          `json:"reportId"`
	AnalyzedAt    string          `json:"analyzedAt"`
	WorkspacePath string          `json:"workspacePath"`
	Detection     Detection       `json:"detection"`
	Categories    map[string]bool `json:"categories"`
}

// Scan runs workspace detection on dir and builds the profile.
func Scan(dir string) (*Profile, error) {
	scanner := workspace.NewScanner(dir)
	res, err := scanner.Scan()
	if err != nil {
		return nil, err
	}
	return Build(res), nil
}

// Build shapes a raw detection result into a profile report.
func Build(res *workspace.Result) *Profile {
	deps := res.Dependencies
	if deps == nil {
		deps = map[string][]string{}
	}
	return &Profile{
		Success:       true,
		ReportID:      report.NewID(),
		AnalyzedAt:    report.Timestamp(),
		WorkspacePath: res.Workspace,
		Detection: Detection{
			ConfigFiles:  emptyNotNil(res.ConfigFiles),
			Languages:    emptyNotNil(res.Languages),
			Frameworks:   emptyNotNil(res.Frameworks),
			Databases:    emptyNotNil(res.Databases),
			Tools:        emptyNotNil(res.Tools),
			Dependencies: deps,
		},
		Categories: res.Categories,
	}
}

// emptyNotNil keeps JSON arrays as [] instead of null.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
