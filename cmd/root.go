package cmd

import (
	"fmt"

	"dirscope/internal/config"
	"dirscope/internal/orchestration"
	"dirscope/pkg/logger"
	"dirscope/pkg/models"

	"github.com/spf13/cobra"
)

var (
	// Version information
	Version = "0.0.1"

	// Global flags
	configFile string
	verbose    bool
	quiet      bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "dirscope",
	Short:   "Filtered directory trees with smart ignore suggestions",
	Version: Version,
	Long: `Dirscope scans a directory to discover which file extensions and top-level
folders it contains, suggests ignore options for noise such as version control
metadata, dependency caches and build output, and prints the tree that remains
after filtering.

Folders that cannot be read are reported and shown without contents; the
scan never stops because of them.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
}

// loadConfig loads the configuration, applies flags and configures logging
func loadConfig(cliOptions *models.CLIOptions) (*models.Config, error) {
	cliOptions.ConfigFile = configFile
	cliOptions.Verbose = verbose
	cliOptions.Quiet = quiet

	configLoader := config.NewLoader()
	cfg, err := configLoader.LoadConfig(cliOptions.ConfigFile)
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := configLoader.OverrideWithFlags(cfg, cliOptions); err != nil {
		logger.Logger.WithError(err).Error("Failed to process configuration")
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := configLoader.ValidateConfig(cfg); err != nil {
		logger.Logger.WithError(err).Error("Configuration validation failed")
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	logger.SetLevel(cfg.Log.Level)
	logger.Logger.Debug("Configuration loaded successfully")

	return cfg, nil
}

// newCoordinator loads configuration and wires a coordinator from it
func newCoordinator(cliOptions *models.CLIOptions) (*orchestration.Coordinator, *models.Config, error) {
	cfg, err := loadConfig(cliOptions)
	if err != nil {
		return nil, nil, err
	}

	coordinator, err := orchestration.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize: %w", err)
	}

	return coordinator, cfg, nil
}
