package smartignore

import (
	"os"
	"path/filepath"

	"dirscope/internal/fsutil"
	"dirscope/internal/scanner"
	"dirscope/pkg/logger"
	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// Analyzer discovers which ignore options are relevant to a tree
type Analyzer struct {
	catalog *Catalog
}

// NewAnalyzer creates an analyzer over the built-in catalog
func NewAnalyzer() (*Analyzer, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewAnalyzerWithCatalog(catalog), nil
}

// NewAnalyzerWithCatalog creates an analyzer over a custom catalog
func NewAnalyzerWithCatalog(catalog *Catalog) *Analyzer {
	return &Analyzer{catalog: catalog}
}

// observations collects what the walk has seen so far
type observations struct {
	remainingFolders utils.NameSet
	remainingFiles   utils.NameSet
	foundFolders     utils.NameSet
	foundFiles       utils.NameSet

	hiddenFolder bool
	hiddenFile   bool
	dotFolder    bool
	dotFile      bool
}

func (o *observations) file(dir, name string) {
	if !o.dotFile && utils.IsDotName(name) {
		o.dotFile = true
	}
	if !o.hiddenFile && fsutil.HasHiddenAttribute(filepath.Join(dir, name)) {
		o.hiddenFile = true
	}
	if o.remainingFiles.Remove(name) {
		o.foundFiles.Add(name)
	}
}

func (o *observations) folder(path string) {
	name := filepath.Base(path)
	if !o.dotFolder && utils.IsDotName(name) {
		o.dotFolder = true
	}
	if !o.hiddenFolder && fsutil.HasHiddenAttribute(path) {
		o.hiddenFolder = true
	}
	if o.remainingFolders.Remove(name) {
		o.foundFolders.Add(name)
	}
}

// Analyze returns the ignore options whose targets actually occur under
// rootPath: the root's own files and the allowed root folders with all
// their descendants. Named folders come first, then named files, both
// sorted, then the hidden and dot options. Unreadable directories are
// skipped without being reported.
func (a *Analyzer) Analyze(rootPath string, allowedRootFolders utils.NameSet) []models.IgnoreOptionDefinition {
	options := []models.IgnoreOptionDefinition{}
	if !fsutil.IsDirectory(rootPath) || allowedRootFolders.Len() == 0 {
		return options
	}

	obs := &observations{
		remainingFolders: a.catalog.FolderNames(),
		remainingFiles:   a.catalog.FileNames(),
		foundFolders:     utils.NewNameSet(),
		foundFiles:       utils.NewNameSet(),
	}

	rootEntries, err := os.ReadDir(rootPath)
	if err != nil {
		logger.Logger.WithError(err).WithField("dir", rootPath).Debug("Skipping root during ignore analysis")
		return options
	}
	for _, entry := range rootEntries {
		if !entry.IsDir() {
			obs.file(rootPath, entry.Name())
		}
	}

	pending := scanner.MatchRootFolders(rootPath, rootEntries, allowedRootFolders)

	for len(pending) > 0 {
		current := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		obs.folder(current)

		entries, err := os.ReadDir(current)
		if err != nil {
			logger.Logger.WithError(err).WithField("dir", current).Debug("Skipping directory during ignore analysis")
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				pending = append(pending, filepath.Join(current, entry.Name()))
				continue
			}
			obs.file(current, entry.Name())
		}
	}

	for _, name := range obs.foundFolders.Names() {
		options = append(options, models.IgnoreOptionDefinition{
			ID:             name,
			Kind:           models.IgnoreOptionNamedFolder,
			DefaultChecked: a.catalog.FolderDefault(name),
		})
	}
	for _, name := range obs.foundFiles.Names() {
		options = append(options, models.IgnoreOptionDefinition{
			ID:             name,
			Kind:           models.IgnoreOptionNamedFile,
			DefaultChecked: a.catalog.FileDefault(name),
		})
	}

	defaults := a.catalog.Defaults
	if obs.hiddenFolder {
		options = append(options, models.IgnoreOptionDefinition{
			ID: models.HiddenFoldersOptionID, Kind: models.IgnoreOptionHiddenFolders, DefaultChecked: defaults.HiddenFolders,
		})
	}
	if obs.hiddenFile {
		options = append(options, models.IgnoreOptionDefinition{
			ID: models.HiddenFilesOptionID, Kind: models.IgnoreOptionHiddenFiles, DefaultChecked: defaults.HiddenFiles,
		})
	}
	if obs.dotFolder {
		options = append(options, models.IgnoreOptionDefinition{
			ID: models.DotFoldersOptionID, Kind: models.IgnoreOptionDotFolders, DefaultChecked: defaults.DotFolders,
		})
	}
	if obs.dotFile {
		options = append(options, models.IgnoreOptionDefinition{
			ID: models.DotFilesOptionID, Kind: models.IgnoreOptionDotFiles, DefaultChecked: defaults.DotFiles,
		})
	}

	logger.Logger.WithFields(map[string]interface{}{
		"root":    rootPath,
		"options": len(options),
	}).Debug("Ignore options analyzed")

	return options
}
