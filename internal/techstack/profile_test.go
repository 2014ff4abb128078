package techstack

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_NextJSWorkspace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "next.config.js"), []byte("module.exports = {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{
		"dependencies": {"next": "14.0.0", "react": "^18.0.0", "drizzle-orm": "0.30.0"}
	}`), 0644))

	profile, err := Scan(dir)
	require.NoError(t, err)

	assert.True(t, profile.Success)
	assert.NotEmpty(t, profile.ReportID)
	assert.NotEmpty(t, profile.AnalyzedAt)
	assert.Contains(t, profile.Detection.Frameworks, "nextjs")
	assert.Contains(t, profile.Detection.Databases, "drizzle")
	assert.True(t, profile.Categories["frontend"])
	assert.True(t, profile.Categories["database"])
}

func TestScan_EmptyWorkspaceDetection(t *testing.T) {
	profile, err := Scan(t.TempDir())
	require.NoError(t, err)

	want := Detection{
		ConfigFiles:  []string{},
		Languages:    []string{},
		Frameworks:   []string{},
		Databases:    []string{},
		Tools:        []string{},
		Dependencies: map[string][]string{},
	}
	if diff := cmp.Diff(want, profile.Detection); diff != "" {
		t.Errorf("detection mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_MissingWorkspace(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestProfile_JSONShape(t *testing.T) {
	profile, err := Scan(t.TempDir())
	require.NoError(t, err)

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"success", "reportId", "analyzedAt", "workspacePath", "detection", "categories"} {
		assert.Contains(t, decoded, key)
	}

	// Empty slices serialize as [], never null
	detection := decoded["detection"].(map[string]any)
	assert.NotNil(t, detection["configFiles"])
	assert.IsType(t, []any{}, detection["languages"])
}
