package config

import (
	"os"
	"path/filepath"
	"testing"

	"dirscope/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dirscope.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
}

func TestLoader_LoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("should load default config when no file specified", func(t *testing.T) {
		config, err := loader.LoadConfig("")
		require.NoError(t, err)
		assert.NotNil(t, config)

		assert.Contains(t, config.Scan.DefaultExtensions, ".go")
		assert.True(t, config.Scan.IgnoreBin)
		assert.True(t, config.Scan.IgnoreObj)
		assert.True(t, config.Ignore.UseDefaults)
		assert.False(t, config.State.Remember)
		assert.Equal(t, "warn", config.Log.Level)
	})

	t.Run("should use default config when file does not exist", func(t *testing.T) {
		config, err := loader.LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yml"))
		require.NoError(t, err)
		assert.Equal(t, "warn", config.Log.Level)
	})

	t.Run("should load config from valid file", func(t *testing.T) {
		path := writeConfig(t, `
scan:
  default_extensions: [".cs", "md"]
  ignore_bin: false
ignore:
  use_defaults: false
  catalog: ""
state:
  file: "/tmp/selections.yaml"
  remember: true
log:
  level: info
`)

		config, err := loader.LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, []string{".cs", "md"}, config.Scan.DefaultExtensions)
		assert.False(t, config.Scan.IgnoreBin)
		assert.True(t, config.Scan.IgnoreObj)
		assert.False(t, config.Ignore.UseDefaults)
		assert.Equal(t, "/tmp/selections.yaml", config.State.File)
		assert.True(t, config.State.Remember)
		assert.Equal(t, "info", config.Log.Level)
	})

	t.Run("should error on invalid YAML", func(t *testing.T) {
		path := writeConfig(t, "invalid: yaml: content: [")

		config, err := loader.LoadConfig(path)
		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoader_OverrideWithFlags(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name   string
		flags  models.CLIOptions
		verify func(t *testing.T, config *models.Config)
	}{
		{
			name:  "should keep config without flags",
			flags: models.CLIOptions{},
			verify: func(t *testing.T, config *models.Config) {
				assert.Equal(t, "warn", config.Log.Level)
				assert.False(t, config.State.Remember)
			},
		},
		{
			name:  "should override state settings",
			flags: models.CLIOptions{StateFile: "/tmp/state.yaml", Remember: true},
			verify: func(t *testing.T, config *models.Config) {
				assert.Equal(t, "/tmp/state.yaml", config.State.File)
				assert.True(t, config.State.Remember)
			},
		},
		{
			name:  "should raise level when verbose",
			flags: models.CLIOptions{Verbose: true, Quiet: true},
			verify: func(t *testing.T, config *models.Config) {
				assert.Equal(t, "debug", config.Log.Level)
			},
		},
		{
			name:  "should lower level when quiet",
			flags: models.CLIOptions{Quiet: true},
			verify: func(t *testing.T, config *models.Config) {
				assert.Equal(t, "error", config.Log.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := loader.LoadConfig("")
			require.NoError(t, err)

			require.NoError(t, loader.OverrideWithFlags(config, &tt.flags))
			tt.verify(t, config)
		})
	}
}

func TestLoader_ValidateConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("should accept defaults", func(t *testing.T) {
		config, err := loader.LoadConfig("")
		require.NoError(t, err)

		assert.NoError(t, loader.ValidateConfig(config))
	})

	t.Run("should normalize extensions", func(t *testing.T) {
		config := &models.Config{
			Scan: models.ScanConfig{DefaultExtensions: []string{"go", " .md ", ""}},
			Log:  models.LogConfig{Level: "info"},
		}

		require.NoError(t, loader.ValidateConfig(config))
		assert.Equal(t, []string{".go", ".md"}, config.Scan.DefaultExtensions)
	})

	tests := []struct {
		name   string
		config models.Config
	}{
		{
			name:   "should reject unknown log level",
			config: models.Config{Log: models.LogConfig{Level: "loud"}},
		},
		{
			name: "should reject remember without state file",
			config: models.Config{
				State: models.StateConfig{Remember: true},
				Log:   models.LogConfig{Level: "info"},
			},
		},
		{
			name: "should reject extension with path separator",
			config: models.Config{
				Scan: models.ScanConfig{DefaultExtensions: []string{"src/.go"}},
				Log:  models.LogConfig{Level: "info"},
			},
		},
		{
			name: "should reject missing catalog file",
			config: models.Config{
				Ignore: models.IgnoreConfig{Catalog: "/nonexistent/catalog.yaml"},
				Log:    models.LogConfig{Level: "info"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.ValidateConfig(&tt.config)

			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
