package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirscope/pkg/models"
	"dirscope/pkg/utils"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Loader handles configuration loading and validation
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadConfig loads configuration from file or returns default config.
// A missing file is not an error.
func (l *Loader) LoadConfig(configFile string) (*models.Config, error) {
	config := l.getDefaultConfig()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	return config, nil
}

// getDefaultConfig returns the default configuration
func (l *Loader) getDefaultConfig() *models.Config {
	return &models.Config{
		Scan: models.ScanConfig{
			DefaultExtensions: []string{
				".cs", ".go", ".py", ".js", ".ts", ".tsx", ".jsx",
				".java", ".kt", ".rs", ".c", ".cpp", ".h",
				".json", ".yaml", ".yml", ".xml", ".md", ".txt",
			},
			IgnoreBin: true,
			IgnoreObj: true,
		},
		Ignore: models.IgnoreConfig{
			UseDefaults: true,
		},
		State: models.StateConfig{
			File:     defaultStateFile(),
			Remember: false,
		},
		Log: models.LogConfig{
			Level: "warn",
		},
	}
}

// OverrideWithFlags overrides config values with command line flags
func (l *Loader) OverrideWithFlags(config *models.Config, flags *models.CLIOptions) error {
	if flags.StateFile != "" {
		config.State.File = flags.StateFile
	}

	if flags.Remember {
		config.State.Remember = true
	}

	if flags.Verbose {
		config.Log.Level = "debug"
	} else if flags.Quiet {
		config.Log.Level = "error"
	}

	return nil
}

// ValidateConfig validates the configuration and normalizes extensions
func (l *Loader) ValidateConfig(config *models.Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, config.Log.Level)
	}

	if config.State.Remember && strings.TrimSpace(config.State.File) == "" {
		return fmt.Errorf("%w: state.remember requires state.file", ErrInvalidConfig)
	}

	extensions := make([]string, 0, len(config.Scan.DefaultExtensions))
	for _, ext := range config.Scan.DefaultExtensions {
		normalized := utils.NormalizeExtension(ext)
		if normalized == "" {
			continue
		}
		if normalized == "." || strings.ContainsAny(normalized, `/\`) {
			return fmt.Errorf("%w: extension %q", ErrInvalidConfig, ext)
		}
		extensions = append(extensions, normalized)
	}
	config.Scan.DefaultExtensions = extensions

	if config.Ignore.Catalog != "" {
		if _, err := os.Stat(config.Ignore.Catalog); err != nil {
			return fmt.Errorf("%w: ignore catalog: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// defaultStateFile places the selection store in the user config directory
func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dirscope", "selections.yaml")
}
