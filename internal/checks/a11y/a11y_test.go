package a11y

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvdnvd00/agent-kits/internal/config"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCheck_NoUIFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n")

	rep := Check(dir, config.DefaultConfig())
	assert.Zero(t, rep.FilesChecked)
	assert.True(t, rep.Passed)
	assert.Equal(t, "a11y_checker", rep.Script)
	assert.Equal(t, "accessibility-patterns", rep.Skill)
}

func TestCheck_SkipsTestAndVendorFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Button.test.tsx", "<img src='x.png'>")
	writeFile(t, dir, "node_modules/lib/Widget.tsx", "<img src='x.png'>")

	rep := Check(dir, config.DefaultConfig())
	assert.Zero(t, rep.FilesChecked)
}

func TestCheckFile_ImagesWithoutAlt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Hero.tsx",
		`<img src="a.png"><img src="b.png" alt="logo">`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	assert.Contains(t, rep.Results[0].Issues, "1 images missing alt text")
}

func TestCheckFile_AllImagesHaveAlt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Hero.tsx",
		`<img src="a.png" alt="a"><img src="b.png" alt="b">`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	assert.Contains(t, rep.Results[0].Passed, "All 2 images have alt text")
	assert.Empty(t, rep.Results[0].Issues)
}

func TestCheckFile_UnlabeledInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Form.tsx", `<form><input name="email"></form>`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	assert.Contains(t, rep.Results[0].Issues, "Form inputs may be missing labels")
}

func TestCheckFile_HiddenInputsNeedNoLabel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Form.html", `<input type="hidden" name="csrf">`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	assert.Empty(t, rep.Results[0].Issues)
}

func TestCheckFile_HeadingHierarchy(t *testing.T) {
	t.Run("multiple h1", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "page.html", "<h1>One</h1><h1>Two</h1>")

		rep := Check(dir, config.DefaultConfig())
		require.Len(t, rep.Results, 1)
		assert.Contains(t, rep.Results[0].Issues, "Multiple H1 tags (2) - bad for a11y")
	})

	t.Run("skipped level", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "page.html", "<h1>Title</h1><h3>Detail</h3>")

		rep := Check(dir, config.DefaultConfig())
		require.Len(t, rep.Results, 1)
		assert.Contains(t, rep.Results[0].Issues, "Skipped heading level (H1 -> H3)")
	})
}

func TestCheckFile_PositivePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Nav.tsx",
		`<nav aria-label="Main" tabIndex={0}>
  <a href="/pricing">See pricing plans</a>
</nav>`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	got := rep.Results[0].Passed
	assert.Contains(t, got, "ARIA attributes used")
	assert.Contains(t, got, "Focus handling present")
	assert.Contains(t, got, "Link text appears descriptive")
}

func TestCheckFile_NonDescriptiveLinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Footer.html",
		`<a href="/a">click here</a><a href="/b">More</a><a href="/c">Pricing</a>`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	assert.Contains(t, rep.Results[0].Issues, "2 links with non-descriptive text")
}

func TestCheck_PassThreshold(t *testing.T) {
	dir := t.TempDir()
	// Each file contributes two issues; ten files push past the limit.
	for i := 0; i < 10; i++ {
		writeFile(t, dir, filepath.Join("ui", string(rune('a'+i))+".html"),
			`<img src="x.png"><input name="q"><h1>A</h1><h1>B</h1>`)
	}

	rep := Check(dir, config.DefaultConfig())
	assert.False(t, rep.Passed)
	assert.GreaterOrEqual(t, rep.IssuesFound, 10)
}

func TestCheck_FileLimit(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Scan.MaxUIFiles = 3
	for i := 0; i < 6; i++ {
		writeFile(t, dir, string(rune('a'+i))+".vue", "<template><p>x</p></template>")
	}

	rep := Check(dir, cfg)
	assert.Equal(t, 3, rep.FilesChecked)
}
