package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestAnalyze_EmptyWorkspaceGetsCoreOnly(t *testing.T) {
	analysis, err := Analyze(t.TempDir())
	require.NoError(t, err)

	assert.True(t, analysis.Success)
	assert.ElementsMatch(t, Core, analysis.Recommendations.Enable)
	assert.Equal(t, len(All), analysis.Summary.TotalSkillsAvailable)
	assert.Equal(t, len(Core), analysis.Summary.RecommendedEnabled)

	// Disabled set never contains a core skill
	for _, s := range analysis.Recommendations.Disable {
		assert.False(t, IsCore(s), "core skill %s must never be disabled", s)
	}
	assert.Equal(t, len(All)-len(Core), len(analysis.Recommendations.Disable))
}

func TestAnalyze_NextJSWorkspace(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "next.config.ts", "export default {}")
	write(t, dir, "package.json", `{"dependencies": {"next": "14.0.0", "next-auth": "5.0.0"}}`)

	analysis, err := Analyze(dir)
	require.NoError(t, err)

	enable := analysis.Recommendations.Enable
	assert.Contains(t, enable, "react-patterns")
	assert.Contains(t, enable, "seo-patterns")
	assert.Contains(t, enable, "frontend-design")
	assert.Contains(t, enable, "auth-patterns")
	assert.NotContains(t, analysis.Recommendations.Disable, "react-patterns")

	assert.Contains(t, analysis.Detection.Technologies, "nodejs")
	assert.Contains(t, analysis.Detection.Frameworks, "next")
}

func TestAnalyze_SubstringDependencyMatching(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "package.json", `{"dependencies": {"@tanstack/react-query": "5.0.0", "ioredis": "5.3.0"}}`)

	analysis, err := Analyze(dir)
	require.NoError(t, err)

	enable := analysis.Recommendations.Enable
	// "react" fragment matches inside "@tanstack/react-query"
	assert.Contains(t, enable, "react-patterns")
	// "redis" fragment matches inside "ioredis"
	assert.Contains(t, enable, "redis-patterns")
}

func TestAnalyze_DirectoryMarkers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "prisma"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0755))

	analysis, err := Analyze(dir)
	require.NoError(t, err)

	enable := analysis.Recommendations.Enable
	assert.Contains(t, enable, "database-design")
	assert.Contains(t, enable, "postgres-patterns")
	assert.Contains(t, enable, "github-actions")
}

func TestAnalyze_FlutterGetsMobileSkills(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "pubspec.yaml", "name: app")

	analysis, err := Analyze(dir)
	require.NoError(t, err)

	assert.Contains(t, analysis.Recommendations.Enable, "flutter-patterns")
	assert.Contains(t, analysis.Recommendations.Enable, "mobile-design")
	assert.Contains(t, analysis.Detection.Technologies, "flutter")
}

func TestAnalyze_DetectionUsesOwnTables(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "pubspec.yaml", "name: app")
	write(t, dir, "tsconfig.json", "{}")
	write(t, dir, "next.config.js", "module.exports = {}")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "prisma"), 0755))

	analysis, err := Analyze(dir)
	require.NoError(t, err)

	// pubspec.yaml is a package-manager config here, not a framework
	// marker, so no "pubspec" framework label is ever derived.
	assert.NotContains(t, analysis.Detection.Frameworks, "pubspec")
	assert.Contains(t, analysis.Detection.Frameworks, "next")
	assert.Contains(t, analysis.Detection.Technologies, "flutter")

	// tsconfig.json is known to the techstack profile but not to the
	// analyzer's tables; marker directories report with a trailing slash.
	assert.NotContains(t, analysis.Detection.ConfigFiles, "tsconfig.json")
	assert.Contains(t, analysis.Detection.ConfigFiles, "pubspec.yaml")
	assert.Contains(t, analysis.Detection.ConfigFiles, "next.config.js")
	assert.Contains(t, analysis.Detection.ConfigFiles, "prisma/")
}

func TestAnalyze_EnableDisablePartition(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "Dockerfile", "FROM scratch")

	analysis, err := Analyze(dir)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, s := range analysis.Recommendations.Enable {
		seen[s] = true
	}
	for _, s := range analysis.Recommendations.Disable {
		assert.False(t, seen[s], "skill %s both enabled and disabled", s)
	}
	assert.Equal(t, len(All),
		len(analysis.Recommendations.Enable)+len(analysis.Recommendations.Disable))

	// Dockerfile carries no framework display label
	assert.NotContains(t, analysis.Detection.Frameworks, "Dockerfile")
	assert.Contains(t, analysis.Recommendations.Enable, "docker-patterns")
}

func TestFrameworkLabel(t *testing.T) {
	cases := map[string]string{
		"next.config.js":     "next",
		"angular.json":       "angular",
		"tailwind.config.ts": "tailwind",
		"Dockerfile":         "",
		"docker-compose.yml": "",
		".gitlab-ci.yml":     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, frameworkLabel(in), in)
	}
}
