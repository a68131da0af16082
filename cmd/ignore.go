package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"dirscope/pkg/models"
	"dirscope/pkg/utils"

	"github.com/spf13/cobra"
)

var ignoreFolders string

// ignoreCmd represents the ignore command
var ignoreCmd = &cobra.Command{
	Use:   "ignore <path>",
	Short: "Suggest ignore options for a directory",
	Long: `Analyze a directory and list the ignore options that apply to it: known
noise folders and files that were actually found, plus hidden and dot entry
toggles when such entries exist. Options marked [x] are applied by default.

The analysis covers the files in the root and everything below the given
root folders (all top-level folders when --folders is omitted).

Examples:
  dirscope ignore .
  dirscope ignore . --folders src,web`,
	Args: cobra.ExactArgs(1),
	RunE: runIgnore,
}

func init() {
	RootCmd.AddCommand(ignoreCmd)

	ignoreCmd.Flags().StringVar(&ignoreFolders, "folders", "", "Comma-separated root folders to analyze")
}

// runIgnore executes the ignore command
func runIgnore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	coordinator, _, err := newCoordinator(&models.CLIOptions{RootFolders: ignoreFolders})
	if err != nil {
		return err
	}

	rootPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	folders := utils.ParsePatterns(ignoreFolders)
	if len(folders) == 0 {
		scan, err := coordinator.ScanOptions(ctx, rootPath, coordinator.BaseRules(rootPath))
		if err != nil {
			return err
		}
		folders = scan.RootFolders
	}

	options := coordinator.IgnoreOptions(rootPath, utils.NewNameSet(folders...))
	printIgnoreOptions(cmd.OutOrStdout(), options)

	return nil
}
