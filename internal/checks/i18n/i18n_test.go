package i18n

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

func TestCheck_EmptyProject(t *testing.T) {
	rep := Check(t.TempDir(), config.DefaultConfig())
	assert.True(t, rep.Passed)
	assert.Zero(t, rep.LocaleFiles)
	assert.Contains(t, rep.Locales.Passed, "No locale files found (not required)")
	assert.Contains(t, rep.Code.Passed, "No code files found")
}

func TestIsLocaleFile(t *testing.T) {
	cases := []struct {
		rel  string
		want bool
	}{
		{"src/locales/en/common.json", true},
		{"translations/de.json", true},
		{"app/i18n/fr/home.json", true},
		{"messages/en.json", true},
		{"deep/messages/en.json", true},
		{"messages/nested/en.json", false},
		{"locales/en/common.yaml", false},
		{"src/data/config.json", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, isLocaleFile(tc.rel, nil), tc.rel)
	}
}

func TestCheck_SingleLocale(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locales/en/common.json", `{"greeting": "Hello"}`)

	rep := Check(dir, config.DefaultConfig())
	assert.Equal(t, 1, rep.LocaleFiles)
	assert.Contains(t, rep.Locales.Passed, "Found 1 locale file(s)")
	assert.True(t, rep.Passed)
}

func TestCheck_MatchingLocales(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locales/en/common.json", `{"nav": {"home": "Home", "about": "About"}}`)
	writeFile(t, dir, "locales/vi/common.json", `{"nav": {"home": "Trang chủ", "about": "Giới thiệu"}}`)

	rep := Check(dir, config.DefaultConfig())
	assert.Contains(t, rep.Locales.Passed, "Found 2 languages: en, vi")
	assert.Contains(t, rep.Locales.Passed, "All locales have matching keys")
	assert.True(t, rep.Passed)
}

func TestCheck_MissingKeysFail(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locales/de/common.json", `{"a": "1", "b": "2", "c": {"d": "3"}}`)
	writeFile(t, dir, "locales/en/common.json", `{"a": "1"}`)

	rep := Check(dir, config.DefaultConfig())
	// de sorts first and becomes the reference language
	assert.Contains(t, rep.Locales.Issues, "en/common: Missing 2 keys")
	assert.False(t, rep.Passed)
}

func TestCheck_ExtraKeysAreAdvisory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "locales/en/common.json", `{"a": "1"}`)
	writeFile(t, dir, "locales/fr/common.json",
		`{"a": "1", "x1": "x", "x2": "x", "x3": "x", "x4": "x"}`)

	rep := Check(dir, config.DefaultConfig())
	assert.Contains(t, rep.Locales.Issues, "fr/common: 4 extra keys")
	assert.True(t, rep.Passed, "extra keys alone do not fail the check")
}

func TestCheck_HardcodedStrings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/Banner.tsx",
		"export const Banner = () => <div>Welcome to the store</div>\n")

	rep := Check(dir, config.DefaultConfig())
	assert.Contains(t, rep.Code.Issues, "1 files may have hardcoded strings")
	assert.False(t, rep.Passed)
}

func TestCheck_I18nUsageSuppressesHardcoded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/Banner.tsx",
		`import { useTranslation } from "react-i18next"
export const Banner = () => <div>Welcome to the store</div>
`)

	rep := Check(dir, config.DefaultConfig())
	assert.Contains(t, rep.Code.Passed, "1 files use i18n patterns")
	assert.Contains(t, rep.Code.Passed, "No obvious hardcoded strings detected")
	assert.True(t, rep.Passed)
}

func TestCheck_PythonHardcodedMessages(t *testing.T) {
	dir := t.TempDir()
	// print() is never flagged: "print(\"" itself looks like a t("...")
	// translation call. raise statements have no such overlap.
	writeFile(t, dir, "app/views.py",
		"def handler():\n    raise ValueError('Something went wrong here')\n")

	rep := Check(dir, config.DefaultConfig())
	assert.Contains(t, rep.Code.Issues, "1 files may have hardcoded strings")
}

func TestCheck_SkipsTestAndConfigFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/Banner.test.tsx", "<div>Obvious Hardcoded Text</div>")
	writeFile(t, dir, "vite.config.ts", "<div>Obvious Hardcoded Text</div>")

	rep := Check(dir, config.DefaultConfig())
	assert.Contains(t, rep.Code.Passed, "No code files found")
}
