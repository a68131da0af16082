package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"dirscope/internal/orchestration"
	"dirscope/pkg/models"
	"dirscope/pkg/tree"
	"dirscope/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	treeExtensions string
	treeFolders    string
	treeIgnore     string
	treeFilter     string
	treeStateFile  string
	treeRemember   bool
	treeSelect     string
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree <path>",
	Short: "Print the filtered tree of a directory",
	Long: `Build and print the tree of a directory after filtering.

Only the listed root folders are descended into and only files with the
listed extensions are shown. Without --ext the extensions are pre-selected
from the configured defaults; without --folders every top-level folder not
covered by an ignore option is used; without --ignore the recommended
ignore options apply. With --remember, choices are saved per directory and
reused by later runs that omit the corresponding flag. With --select, only
the branches leading to the given paths (relative to <path>) are printed.

Examples:
  dirscope tree .
  dirscope tree . --ext .go,.md --folders cmd,internal
  dirscope tree . --filter handler
  dirscope tree . --ignore .git,dot-files --remember
  dirscope tree . --select cmd/root.go,internal/scanner`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	RootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVarP(&treeExtensions, "ext", "e", "", "Comma-separated extensions to include (e.g. .go,.md)")
	treeCmd.Flags().StringVarP(&treeFolders, "folders", "f", "", "Comma-separated root folders to include")
	treeCmd.Flags().StringVar(&treeIgnore, "ignore", "", "Comma-separated ignore option IDs (see 'dirscope ignore')")
	treeCmd.Flags().StringVar(&treeFilter, "filter", "", "Keep only entries whose name contains this text")
	treeCmd.Flags().StringVar(&treeStateFile, "state-file", "", "Selection store path")
	treeCmd.Flags().BoolVar(&treeRemember, "remember", false, "Save and reuse selections for this directory")
	treeCmd.Flags().StringVar(&treeSelect, "select", "", "Comma-separated paths to export; prints only their branches")
}

// runTree executes the tree command
func runTree(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliOptions := &models.CLIOptions{
		Extensions:  treeExtensions,
		RootFolders: treeFolders,
		Ignore:      treeIgnore,
		NameFilter:  treeFilter,
		StateFile:   treeStateFile,
		Remember:    treeRemember,
	}

	coordinator, _, err := newCoordinator(cliOptions)
	if err != nil {
		return err
	}

	rootPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	plan, err := coordinator.PlanTree(ctx, rootPath, models.TreeRequest{
		Extensions:  utils.ParsePatterns(cliOptions.Extensions),
		RootFolders: utils.ParsePatterns(cliOptions.RootFolders),
		Ignore:      utils.ParsePatterns(cliOptions.Ignore),
		NameFilter:  cliOptions.NameFilter,
	})
	if err != nil {
		if errors.Is(err, orchestration.ErrRootAccessDenied) {
			printAccessNotice(cmd.ErrOrStderr(), rootPath, true, true)
		}
		return err
	}

	result, err := coordinator.BuildTree(ctx, rootPath, plan.Options)
	if err != nil {
		return err
	}

	if treeSelect != "" {
		selected := selectedPaths(rootPath, utils.ParsePatterns(treeSelect))
		output := tree.WriteSelectedTree(result.Root, selected)
		if output == "" {
			return errors.New("none of the selected paths are in the tree")
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tree.WriteTree(result.Root))
	}
	printAccessNotice(cmd.ErrOrStderr(), rootPath, result.RootAccessDenied, result.HadAccessDenied)

	return nil
}

// selectedPaths resolves --select entries against the root into the full
// paths the tree nodes carry.
func selectedPaths(rootPath string, paths []string) map[string]bool {
	selected := make(map[string]bool, len(paths))
	for _, p := range paths {
		p = filepath.FromSlash(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(rootPath, p)
		}
		selected[filepath.Clean(p)] = true
	}
	return selected
}
