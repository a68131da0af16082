// Package smartignore proposes folder and file names that are usually noise
// in a project tree, and discovers which ignore options apply to a root.
package smartignore

import (
	"path/filepath"

	"dirscope/internal/fsutil"
	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// Rule is one smart-ignore strategy. Evaluate never fails; a strategy that
// does not apply returns empty sets.
type Rule interface {
	Evaluate(rootPath string) models.SmartIgnoreResult
}

// CommonRule ignores version control, IDE and OS metadata everywhere
type CommonRule struct{}

var (
	commonFolders = []string{".git", ".svn", ".hg", ".vs", ".idea", ".vscode", "node_modules"}
	commonFiles   = []string{".ds_store", "thumbs.db", "desktop.ini"}
)

// Evaluate returns the fixed common names regardless of rootPath
func (CommonRule) Evaluate(string) models.SmartIgnoreResult {
	return models.NewSmartIgnoreResult(utils.NewNameSet(commonFolders...), utils.NewNameSet(commonFiles...))
}

// FrontendArtifactsRule ignores build output folders of JavaScript projects.
// It only applies when the root holds a package manifest or lock file.
type FrontendArtifactsRule struct{}

var (
	frontendMarkers = []string{"package.json", "package-lock.json", "pnpm-lock.yaml", "yarn.lock"}
	frontendFolders = []string{"dist", "build", ".next", ".nuxt", ".turbo", ".svelte-kit"}
)

// Evaluate checks the root for marker files
func (FrontendArtifactsRule) Evaluate(rootPath string) models.SmartIgnoreResult {
	if !fsutil.IsDirectory(rootPath) {
		return models.NewSmartIgnoreResult(nil, nil)
	}

	for _, marker := range frontendMarkers {
		if fsutil.IsRegularFile(filepath.Join(rootPath, marker)) {
			return models.NewSmartIgnoreResult(utils.NewNameSet(frontendFolders...), nil)
		}
	}

	return models.NewSmartIgnoreResult(nil, nil)
}

// DefaultRules returns the built-in strategies
func DefaultRules() []Rule {
	return []Rule{CommonRule{}, FrontendArtifactsRule{}}
}
