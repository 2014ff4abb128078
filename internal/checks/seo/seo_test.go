package seo

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

const richPage = `<html>
<head>
  <title>Buying Guide</title>
  <meta name="description" content="How to choose a keyboard">
  <meta property="og:title" content="Buying Guide">
  <script type="application/ld+json">{"@type": "Article", "datePublished": "2025-01-01"}</script>
</head>
<body>
  <h1>Buying Guide</h1>
  <h2>Switches</h2>
  <h2>Layouts</h2>
  <p class="byline">By the hardware team</p>
  <ul><li>a</li></ul>
  <ol><li>b</li></ol>
</body>
</html>`

func TestCheck_NoPages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/util.ts", "export const x = 1\n")

	rep := Check(dir, config.DefaultConfig())
	assert.True(t, rep.Passed)
	assert.Zero(t, rep.PagesChecked)
	assert.Equal(t, "No pages found", rep.Message)
	assert.Equal(t, "seo_checker", rep.Script)
}

func TestIsPage(t *testing.T) {
	cases := []struct {
		rel  string
		want bool
	}{
		{"index.html", true},
		{"about.html", true},
		{"snippet.html", false},
		{"docs/blog-roll.html", true},
		{"app/dashboard.tsx", true},
		{"src/pages/pricing.jsx", true},
		{"components/Button.tsx", false},
		{"app/styles.css", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isPage(tc.rel, nil), tc.rel)
	}
}

func TestCheck_WellOptimizedPage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "guide-page.html", richPage)

	rep := Check(dir, config.DefaultConfig())
	require.Equal(t, 1, rep.PagesChecked)

	res := rep.Results[0]
	assert.Contains(t, res.Passed, "JSON-LD structured data")
	assert.Contains(t, res.Passed, "Article schema")
	assert.Contains(t, res.Passed, "Single H1 heading")
	assert.Contains(t, res.Passed, "2 H2 subheadings")
	assert.Contains(t, res.Passed, "Title tag found")
	assert.Contains(t, res.Passed, "Meta description")
	assert.Contains(t, res.Passed, "Author attribution")
	assert.Contains(t, res.Passed, "Publication date")
	assert.Contains(t, res.Passed, "Open Graph tags")
	assert.Contains(t, res.Passed, "2 lists")
	assert.Empty(t, res.Issues)
	assert.Equal(t, 100, res.Score)
	assert.True(t, rep.Passed)
}

func TestCheck_BarePageFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pages/landing.jsx",
		"export default function Landing() { return <div>hi</div> }")

	rep := Check(dir, config.DefaultConfig())
	require.Equal(t, 1, rep.PagesChecked)

	res := rep.Results[0]
	assert.Contains(t, res.Issues, "No JSON-LD structured data")
	assert.Contains(t, res.Issues, "No H1 heading")
	assert.Contains(t, res.Issues, "Add more H2 subheadings")
	assert.False(t, rep.Passed)
	assert.Less(t, rep.AverageScore, 60)
}

func TestCheck_AverageAcrossPages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good-page.html", richPage)
	writeFile(t, dir, "pages/bare.tsx", "export default () => <span>x</span>")

	rep := Check(dir, config.DefaultConfig())
	assert.Equal(t, 2, rep.PagesChecked)
	assert.Greater(t, rep.AverageScore, 0)
	assert.Less(t, rep.AverageScore, 100)
}

func TestCheck_SkipsTestDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tests/pages/fixture.tsx", "<h1>x</h1>")
	writeFile(t, dir, "node_modules/pkg/pages/index.jsx", "<h1>x</h1>")

	rep := Check(dir, config.DefaultConfig())
	assert.Zero(t, rep.PagesChecked)
}

func TestCheck_PageLimit(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Scan.MaxPages = 2
	for _, name := range []string{"one", "two", "three", "four"} {
		writeFile(t, dir, filepath.Join("app", name+".tsx"), richPage)
	}

	rep := Check(dir, cfg)
	assert.Equal(t, 2, rep.PagesChecked)
}
