package tree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dirscope/internal/fsutil"
	"dirscope/internal/scanner"
	"dirscope/pkg/logger"
	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// Builder builds filtered directory trees. It holds no traversal state, so
// one Builder can serve concurrent builds.
type Builder struct{}

// NewBuilder creates a new tree builder
func NewBuilder() *Builder {
	return &Builder{}
}

// buildState accumulates access-denied flags for one build
type buildState struct {
	rootAccessDenied bool
	hadAccessDenied  bool
}

// Build walks rootPath and returns the tree allowed by opts. Filesystem
// errors never abort the build: permission failures are flagged on the
// result and other failures drop the affected directory.
func (b *Builder) Build(rootPath string, opts models.TreeFilterOptions) models.TreeBuildResult {
	fullPath := rootPath
	if abs, err := filepath.Abs(rootPath); err == nil {
		fullPath = abs
	}

	root := &models.FileSystemNode{
		Name:        filepath.Base(fullPath),
		FullPath:    fullPath,
		IsDirectory: true,
	}

	if !fsutil.IsDirectory(rootPath) {
		return models.TreeBuildResult{Root: root}
	}

	state := &buildState{}
	b.buildChildren(root, opts, 0, state)

	if strings.TrimSpace(opts.NameFilter) != "" {
		ApplyNameFilter(root, opts.NameFilter)
	}

	return models.TreeBuildResult{
		Root:             root,
		RootAccessDenied: state.rootAccessDenied,
		HadAccessDenied:  state.hadAccessDenied || state.rootAccessDenied,
	}
}

// buildChildren fills parent.Children. It returns false when the directory
// could not be listed for a reason other than permissions, in which case the
// caller drops the node.
func (b *Builder) buildChildren(parent *models.FileSystemNode, opts models.TreeFilterOptions, depth int, state *buildState) bool {
	entries, err := os.ReadDir(parent.FullPath)
	if err != nil {
		if fsutil.IsAccessDenied(err) {
			state.hadAccessDenied = true
			if depth == 0 {
				state.rootAccessDenied = true
			}
			parent.IsAccessDenied = true
			parent.Children = nil
			logger.Logger.WithField("dir", parent.FullPath).Debug("Access denied while building tree")
			return true
		}
		logger.Logger.WithError(err).WithField("dir", parent.FullPath).Debug("Skipping unreadable directory")
		return false
	}

	entries = visibleEntries(parent.FullPath, entries)
	sortEntries(entries)

	rules := opts.IgnoreRules
	for _, entry := range entries {
		name := entry.Name()
		fullPath := filepath.Join(parent.FullPath, name)

		if entry.IsDir() {
			if depth == 0 && !opts.AllowedRootFolders.Contains(name) {
				continue
			}
			if scanner.SkipDirectory(name, fullPath, rules) {
				continue
			}

			dirNode := &models.FileSystemNode{
				Name:        name,
				FullPath:    fullPath,
				IsDirectory: true,
			}
			if !b.buildChildren(dirNode, opts, depth+1, state) {
				continue
			}
			parent.Children = append(parent.Children, dirNode)
			continue
		}

		if scanner.SkipFile(name, fullPath, rules) {
			continue
		}
		if opts.AllowedExtensions.Len() == 0 {
			continue
		}
		if !opts.AllowedExtensions.Contains(utils.Extension(name)) {
			continue
		}

		parent.Children = append(parent.Children, &models.FileSystemNode{
			Name:     name,
			FullPath: fullPath,
		})
	}

	return true
}

// visibleEntries drops entries carrying the platform hidden attribute. This
// is unconditional and separate from the optional hidden ignore rules.
func visibleEntries(dir string, entries []os.DirEntry) []os.DirEntry {
	visible := entries[:0]
	for _, entry := range entries {
		if fsutil.HasHiddenAttribute(filepath.Join(dir, entry.Name())) {
			continue
		}
		visible = append(visible, entry)
	}
	return visible
}

// sortEntries orders directories first, then files, both case-insensitively
func sortEntries(entries []os.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}

		return utils.CompareFold(a.Name(), b.Name()) < 0
	})
}
