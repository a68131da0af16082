package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"dirscope/pkg/models"
	"dirscope/pkg/utils"

	"github.com/spf13/cobra"
)

var scanIgnore string

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "List the extensions and root folders found under a directory",
	Long: `Scan a directory and list the file extensions found anywhere below it and
its top-level folders. Entries pre-checked with [x] are the ones a tree build
would use by default.

Examples:
  dirscope scan .
  dirscope scan ~/projects/api --ignore dot-folders,node_modules`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	RootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanIgnore, "ignore", "", "Comma-separated ignore option IDs (see 'dirscope ignore')")
}

// runScan executes the scan command
func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	coordinator, _, err := newCoordinator(&models.CLIOptions{Ignore: scanIgnore})
	if err != nil {
		return err
	}

	rootPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	rules := coordinator.BaseRules(rootPath)
	if selected := utils.ParsePatterns(scanIgnore); len(selected) > 0 {
		folders, err := coordinator.ScanOptions(ctx, rootPath, rules)
		if err != nil {
			return err
		}
		options := coordinator.IgnoreOptions(rootPath, utils.NewNameSet(folders.RootFolders...))
		rules = coordinator.ResolveRules(rootPath, options, selected)
	}

	result, err := coordinator.ScanOptions(ctx, rootPath, rules)
	if err != nil {
		return err
	}

	extensions, rootFolders := coordinator.PickerOptions(rootPath, result, rules)

	out := cmd.OutOrStdout()
	printSelection(out, "Extensions", extensions)
	printSelection(out, "Root folders", rootFolders)
	printAccessNotice(cmd.ErrOrStderr(), rootPath, result.RootAccessDenied, result.HadAccessDenied)

	return nil
}
