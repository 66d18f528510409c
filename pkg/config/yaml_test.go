package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlight/rstlight/pkg/config"
)

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.ProjectName = "My Project"
	cfg.Exclude = []string{"drafts/**", "**/README.rst"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "project_name: My Project")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.SourceDir, parsed.SourceDir)
	assert.Equal(t, cfg.ProjectName, parsed.ProjectName)
	assert.Equal(t, cfg.Exclude, parsed.Exclude)
}

func TestToYAML_CLIFieldsNotSerialized(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Jobs = 8
	cfg.Strict = true
	cfg.Clean = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "jobs")
	assert.NotContains(t, string(data), "strict")
	assert.NotContains(t, string(data), "clean")
}

func TestToYAML_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	data, err := cfg.ToYAMLWithHeader("# my header")
	require.NoError(t, err)

	s := string(data)
	assert.True(t, len(s) > 0)
	assert.Equal(t, "# my header\n\n", s[:13])
	assert.Contains(t, s, "source_dir: docs")
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("source_dir: [unclosed"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Merge(&config.Config{
		ProjectName: "Overlay",
		Exclude:     []string{"skip/**"},
		LogLevel:    "debug",
	})

	assert.Equal(t, "Overlay", base.ProjectName)
	assert.Equal(t, []string{"skip/**"}, base.Exclude)
	assert.Equal(t, "debug", base.LogLevel)
	// Untouched fields keep their values.
	assert.Equal(t, "docs", base.SourceDir)
	assert.Equal(t, "monokai", base.HighlightStyle)
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Merge(nil)
	assert.Equal(t, config.NewConfig(), base)
}

func TestLoadFile_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".rstlight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project_name: Partial\nmaster_doc: home\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Partial", cfg.ProjectName)
	assert.Equal(t, "home", cfg.MasterDoc)
	// Unspecified fields come from the defaults.
	assert.Equal(t, "docs", cfg.SourceDir)
	assert.Equal(t, "_site", cfg.OutputDir)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := config.Find(dir)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// .yml is found when .yaml is absent.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rstlight.yml"), []byte("{}"), 0o644))
	path, err := config.Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".rstlight.yml"), path)

	// .yaml takes precedence once present.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".rstlight.yaml"), []byte("{}"), 0o644))
	path, err = config.Find(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".rstlight.yaml"), path)
}

func TestGenerateTemplate_ParsesToDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.GenerateTemplate())
	require.NoError(t, err)

	assert.Equal(t, "docs", cfg.SourceDir)
	assert.Equal(t, "_site", cfg.OutputDir)
	assert.Equal(t, "index", cfg.MasterDoc)
	assert.Equal(t, "monokai", cfg.HighlightStyle)
}
