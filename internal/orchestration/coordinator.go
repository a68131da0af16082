// Package orchestration composes the scanner, the smart-ignore analyzer and
// the tree builder into the flows used by the command line.
package orchestration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"dirscope/internal/pipeline"
	"dirscope/internal/scanner"
	"dirscope/internal/smartignore"
	"dirscope/internal/state"
	"dirscope/pkg/logger"
	"dirscope/pkg/models"
	"dirscope/pkg/tree"
	"dirscope/pkg/utils"
)

// ErrRootAccessDenied is returned when the root itself cannot be listed
var ErrRootAccessDenied = errors.New("access to root denied")

// Coordinator handles the coordination of scans, ignore analysis and tree builds
type Coordinator struct {
	config     *models.Config
	scanner    *scanner.Scanner
	builder    *tree.Builder
	analyzer   *smartignore.Analyzer
	smart      *smartignore.Service
	resolver   *pipeline.RulesResolver
	selections *pipeline.SelectionBuilder
	stats      *pipeline.StatsCalculator
	store      state.Store
}

// NewCoordinator creates a coordinator. store may be nil, in which case
// selections are never remembered.
func NewCoordinator(config *models.Config, analyzer *smartignore.Analyzer, store state.Store) *Coordinator {
	return &Coordinator{
		config:     config,
		scanner:    scanner.NewScanner(),
		builder:    tree.NewBuilder(),
		analyzer:   analyzer,
		smart:      smartignore.NewService(),
		resolver:   pipeline.NewRulesResolver(config.Scan.IgnoreBin, config.Scan.IgnoreObj),
		selections: pipeline.NewSelectionBuilder(config.Scan.DefaultExtensions),
		stats:      pipeline.NewStatsCalculator(),
		store:      store,
	}
}

// New wires a coordinator from configuration: the ignore catalog (built-in
// or custom) and the selection store when one is configured.
func New(config *models.Config) (*Coordinator, error) {
	var analyzer *smartignore.Analyzer
	if config.Ignore.Catalog != "" {
		data, err := os.ReadFile(config.Ignore.Catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore catalog: %w", err)
		}
		catalog, err := smartignore.LoadCatalog(data)
		if err != nil {
			return nil, err
		}
		analyzer = smartignore.NewAnalyzerWithCatalog(catalog)
	} else {
		var err error
		analyzer, err = smartignore.NewAnalyzer()
		if err != nil {
			return nil, err
		}
	}

	var store state.Store
	if config.State.File != "" {
		fileStore := state.NewFileStore(config.State.File)
		logger.Logger.WithField("store", fileStore.Path()).Debug("Using selection store")
		store = fileStore
	}

	return NewCoordinator(config, analyzer, store), nil
}

// CanReadRoot reports whether the root can be listed
func (c *Coordinator) CanReadRoot(rootPath string) bool {
	return c.scanner.CanReadRoot(rootPath)
}

// BaseRules returns the rules applied before any ignore option is chosen:
// the configured bin/obj flags and the smart-ignore strategy names.
func (c *Coordinator) BaseRules(rootPath string) models.IgnoreRules {
	return pipeline.MergeSmartIgnore(c.resolver.Build(nil, nil), c.smart.Build(rootPath))
}

// ScanOptions collects extensions and root folder names concurrently. The
// result is discarded if ctx is cancelled before both scans finish.
func (c *Coordinator) ScanOptions(ctx context.Context, rootPath string, rules models.IgnoreRules) (models.ScanOptionsResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ScanOptionsResult{}, err
	}

	var wg sync.WaitGroup
	var extensions models.ScanResult[utils.NameSet]
	var folders models.ScanResult[[]string]

	wg.Add(2)
	go func() {
		defer wg.Done()
		extensions = c.scanner.GetExtensions(rootPath, rules)
	}()
	go func() {
		defer wg.Done()
		folders = c.scanner.GetRootFolderNames(rootPath, rules)
	}()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		logger.Logger.WithField("root", rootPath).Debug("Discarding scan result of cancelled request")
		return models.ScanOptionsResult{}, err
	}

	rootFolders := append([]string(nil), folders.Value...)
	utils.SortFold(rootFolders)

	result := models.ScanOptionsResult{
		Extensions:       extensions.Value.Names(),
		RootFolders:      rootFolders,
		RootAccessDenied: extensions.RootAccessDenied || folders.RootAccessDenied,
		HadAccessDenied:  extensions.HadAccessDenied || folders.HadAccessDenied,
	}

	logger.Logger.WithFields(map[string]interface{}{
		"root":         rootPath,
		"extensions":   len(result.Extensions),
		"root_folders": len(result.RootFolders),
	}).Debug("Scan options collected")
	reportAccessDenied(rootPath, result.RootAccessDenied, result.HadAccessDenied)

	return result, nil
}

// PickerOptions computes the initial checked state of the extension and
// root folder pickers from a scan, honoring the remembered selection.
func (c *Coordinator) PickerOptions(rootPath string, scan models.ScanOptionsResult, rules models.IgnoreRules) (extensions, rootFolders []models.SelectionOption) {
	previous := c.loadSelection(rootPath)
	extensions = c.selections.BuildExtensionOptions(scan.Extensions, utils.NewNameSet(previous.Extensions...))
	rootFolders = c.selections.BuildRootFolderOptions(scan.RootFolders, utils.NewNameSet(previous.RootFolders...), rules)
	return extensions, rootFolders
}

// IgnoreOptions returns the ignore options relevant to the allowed folders
func (c *Coordinator) IgnoreOptions(rootPath string, allowedRootFolders utils.NameSet) []models.IgnoreOptionDefinition {
	return c.analyzer.Analyze(rootPath, allowedRootFolders)
}

// ResolveRules turns the selected ignore options into rules and adds the
// smart-ignore strategy names on top.
func (c *Coordinator) ResolveRules(rootPath string, options []models.IgnoreOptionDefinition, selected []string) models.IgnoreRules {
	return pipeline.MergeSmartIgnore(c.resolver.Build(options, selected), c.smart.Build(rootPath))
}

// BuildTree builds the filtered tree. The result is discarded if ctx is
// cancelled while building.
func (c *Coordinator) BuildTree(ctx context.Context, rootPath string, opts models.TreeFilterOptions) (models.TreeBuildResult, error) {
	if err := ctx.Err(); err != nil {
		return models.TreeBuildResult{}, err
	}

	start := time.Now()
	result := c.builder.Build(rootPath, opts)

	if err := ctx.Err(); err != nil {
		logger.Logger.WithField("root", rootPath).Debug("Discarding tree of cancelled request")
		return models.TreeBuildResult{}, err
	}

	stats := c.stats.GetTreeStats(result, time.Since(start))
	logger.Logger.WithFields(stats).WithField("root", rootPath).Info("Tree built")
	reportAccessDenied(rootPath, result.RootAccessDenied, result.HadAccessDenied)

	return result, nil
}

// PlanTree resolves a request into tree filter options. Each choice comes
// from the request when given, then from the remembered selection, then
// from defaults. With remembering enabled the resolved selection is saved.
func (c *Coordinator) PlanTree(ctx context.Context, rootPath string, req models.TreeRequest) (models.TreePlan, error) {
	if err := ctx.Err(); err != nil {
		return models.TreePlan{}, err
	}
	if !c.CanReadRoot(rootPath) {
		return models.TreePlan{}, fmt.Errorf("%w: %s", ErrRootAccessDenied, rootPath)
	}

	previous := c.loadSelection(rootPath)
	baseRules := c.BaseRules(rootPath)

	scan, err := c.ScanOptions(ctx, rootPath, baseRules)
	if err != nil {
		return models.TreePlan{}, err
	}

	candidates := c.IgnoreOptions(rootPath, utils.NewNameSet(scan.RootFolders...))
	var selectedIgnore []string
	switch {
	case len(req.Ignore) > 0:
		selectedIgnore = req.Ignore
	case len(previous.Ignore) > 0:
		selectedIgnore = previous.Ignore
	case c.config.Ignore.UseDefaults:
		selectedIgnore = pipeline.DefaultSelection(candidates)
	}

	var allowedFolders utils.NameSet
	if len(req.RootFolders) > 0 {
		allowedFolders = utils.NewNameSet(req.RootFolders...)
	} else {
		folderRules := c.ResolveRules(rootPath, candidates, selectedIgnore)
		options := c.selections.BuildRootFolderOptions(scan.RootFolders, utils.NewNameSet(previous.RootFolders...), folderRules)
		allowedFolders = pipeline.CheckedNames(options)
	}

	ignoreOptions := c.IgnoreOptions(rootPath, allowedFolders)
	rules := c.ResolveRules(rootPath, ignoreOptions, selectedIgnore)

	var allowedExtensions utils.NameSet
	if len(req.Extensions) > 0 {
		allowedExtensions = utils.NewNameSet()
		for _, ext := range req.Extensions {
			if normalized := utils.NormalizeExtension(ext); normalized != "" {
				allowedExtensions.Add(normalized)
			}
		}
	} else {
		extensions := c.ExtensionsIn(rootPath, allowedFolders, rules)
		options := c.selections.BuildExtensionOptions(extensions.Value.Names(), utils.NewNameSet(previous.Extensions...))
		allowedExtensions = pipeline.CheckedNames(options)
	}

	plan := models.TreePlan{
		Options: models.TreeFilterOptions{
			AllowedExtensions:  allowedExtensions,
			AllowedRootFolders: allowedFolders,
			IgnoreRules:        rules,
			NameFilter:         req.NameFilter,
		},
		Selection: models.Selection{
			Extensions:  allowedExtensions.Names(),
			RootFolders: allowedFolders.Names(),
			Ignore:      selectedIgnore,
		},
		IgnoreOptions: ignoreOptions,
	}

	if c.config.State.Remember {
		if err := c.SaveSelection(rootPath, plan.Selection); err != nil {
			return models.TreePlan{}, err
		}
	}

	return plan, nil
}

// ExtensionsIn collects the extensions of the root's own files and of
// everything below the allowed root folders.
func (c *Coordinator) ExtensionsIn(rootPath string, allowedRootFolders utils.NameSet, rules models.IgnoreRules) models.ScanResult[utils.NameSet] {
	rootFiles := c.scanner.GetRootFileExtensions(rootPath, rules)
	extensions := rootFiles.Value
	hadAccessDenied := rootFiles.HadAccessDenied

	for _, path := range scanner.AllowedRootFolderPaths(rootPath, allowedRootFolders) {
		folder := c.scanner.GetExtensions(path, rules)
		extensions.Union(folder.Value)
		hadAccessDenied = hadAccessDenied || folder.HadAccessDenied
	}

	return models.NewScanResult(extensions, rootFiles.RootAccessDenied, hadAccessDenied)
}

// SaveSelection stores the selection for the root
func (c *Coordinator) SaveSelection(rootPath string, selection models.Selection) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(rootPath, selection); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// loadSelection returns the remembered selection. Store failures only
// lose the memory, so they are logged rather than returned.
func (c *Coordinator) loadSelection(rootPath string) models.Selection {
	if c.store == nil || !c.config.State.Remember {
		return models.Selection{}
	}

	selection, err := c.store.Load(rootPath)
	if err != nil {
		logger.Logger.WithError(err).WithField("root", rootPath).Warn("Failed to load remembered selection")
		return models.Selection{}
	}
	return selection
}

func reportAccessDenied(rootPath string, rootDenied, hadDenied bool) {
	switch {
	case rootDenied:
		logger.Logger.WithField("root", rootPath).Error("Access to the root folder was denied; run with sufficient permissions to see its contents")
	case hadDenied:
		logger.Logger.WithField("root", rootPath).Warn("Some folders could not be read and are shown without contents")
	}
}
