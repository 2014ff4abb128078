package workspace

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

func TestScan_MissingWorkspace(t *testing.T) {
	s := NewScanner(filepath.Join(t.TempDir(), "does-not-exist"))
	_, err := s.Scan()
	assert.Error(t, err)
}

func TestScan_ConfigFilesToLanguages(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "go.mod", "module example.com/x")
	write(t, dir, "requirements.txt", "flask\n")
	write(t, dir, "pyproject.toml", "[project]")

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"go", "python"}, res.Languages)
	assert.Contains(t, res.ConfigFiles, "go.mod")
	assert.Contains(t, res.ConfigFiles, "requirements.txt")
}

func TestScan_FrameworkMarkersAndCategories(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "next.config.js", "module.exports = {}")
	write(t, dir, "tailwind.config.ts", "export default {}")
	write(t, dir, "Dockerfile", "FROM node:20")

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	assert.Contains(t, res.Frameworks, "nextjs")
	assert.Contains(t, res.Frameworks, "tailwindcss")
	assert.Contains(t, res.Frameworks, "docker")
	// styling folds into frontend
	assert.True(t, res.Categories["frontend"])
	assert.True(t, res.Categories["devops"])
	assert.False(t, res.Categories["backend"])
}

func TestScan_DirectoryMarkers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".github", "workflows"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "terraform"), 0755))

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	assert.Contains(t, res.ConfigFiles, ".github/workflows/")
	assert.Contains(t, res.Frameworks, "github-actions")
	assert.Contains(t, res.Tools, "terraform")
	// iac and cicd both fold into devops
	assert.True(t, res.Categories["devops"])
}

func TestScan_NPMDependencies(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "package.json", `{
		"dependencies": {"react": "^18.0.0", "next": "14.0.0", "@prisma/client": "5.0.0"},
		"devDependencies": {"vitest": "^1.0.0", "@playwright/test": "1.40.0"}
	}`)

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	deps := res.NPMDependencies()
	assert.Contains(t, deps, "react")
	assert.Contains(t, deps, "vitest")
	assert.Len(t, deps, 5)

	assert.True(t, res.Categories["frontend"], "react -> frontend")
	assert.True(t, res.Categories["database"], "@prisma/client -> database")
	assert.True(t, res.Categories["testing"], "vitest -> testing")

	assert.Contains(t, res.Frameworks, "react")
	assert.Contains(t, res.Frameworks, "nextjs")
	assert.Contains(t, res.Frameworks, "prisma")
	assert.Contains(t, res.Databases, "prisma")
}

func TestScan_DependencyCategoryMatching(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "package.json", `{"dependencies": {
		"openai": "4.0.0",
		"react/jsx-runtime": "0.0.0",
		"@langchain/community": "0.1.0"
	}}`)

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	assert.True(t, res.Categories["ai"], "openai exact match")
	assert.True(t, res.Categories["frontend"], "react/ prefix match")
	// "@langchain/community" matches neither "langchain" nor "@langchain/core"
	assert.False(t, res.Categories["realtime"])
}

func TestScan_MalformedPackageJSONIgnored(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "package.json", "{not-json")

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	assert.Nil(t, res.NPMDependencies())
	// File presence still detected as nodejs
	assert.Contains(t, res.Languages, "nodejs")
}

func TestScan_FlutterWorkspace(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "pubspec.yaml", "name: app")

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	assert.Contains(t, res.Languages, "dart")
	assert.Contains(t, res.Frameworks, "flutter")
	assert.True(t, res.Categories["mobile"])
}

func TestScan_AllCategoryKeysAlwaysPresent(t *testing.T) {
	res, err := NewScanner(t.TempDir()).Scan()
	require.NoError(t, err)

	require.Len(t, res.Categories, 11)
	for _, key := range []string{"frontend", "backend", "mobile", "database", "devops",
		"ai", "realtime", "queue", "graphql", "auth", "testing"} {
		_, ok := res.Categories[key]
		assert.True(t, ok, "missing category key %s", key)
	}
}

func TestScan_DeterministicOrdering(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "package.json", `{"dependencies": {"zod": "3", "axios": "1", "moment": "2"}}`)

	res, err := NewScanner(dir).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"axios", "moment", "zod"}, res.NPMDependencies())
}
