package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rstlight/rstlight/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, "docs", cfg.SourceDir)
	assert.Equal(t, "_site", cfg.OutputDir)
	assert.Equal(t, "index", cfg.MasterDoc)
	assert.Equal(t, "Documentation", cfg.ProjectName)
	assert.Equal(t, "monokai", cfg.HighlightStyle)
	assert.Nil(t, cfg.Exclude)
	assert.Zero(t, cfg.Jobs)
	assert.False(t, cfg.Clean)
	assert.False(t, cfg.Strict)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantField string
	}{
		{"defaults are valid", func(*config.Config) {}, ""},
		{"empty source dir", func(c *config.Config) { c.SourceDir = "" }, "source_dir"},
		{"empty output dir", func(c *config.Config) { c.OutputDir = "" }, "output_dir"},
		{"empty master doc", func(c *config.Config) { c.MasterDoc = "" }, "master_doc"},
		{"negative jobs", func(c *config.Config) { c.Jobs = -1 }, "jobs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *config.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Exclude = []string{"drafts/**"}
	cfg.Strict = true

	clone := cfg.Clone()
	require.NotSame(t, cfg, clone)
	assert.Equal(t, cfg, clone)

	clone.Exclude[0] = "changed"
	assert.Equal(t, "drafts/**", cfg.Exclude[0], "clone shares the exclude slice")
}

func TestClone_Nil(t *testing.T) {
	t.Parallel()

	var cfg *config.Config
	assert.Nil(t, cfg.Clone())
}
