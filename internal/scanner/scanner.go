// Package scanner discovers which extensions and root folders exist under a
// directory so that pickers can be populated before a tree is built.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dirscope/internal/fsutil"
	"dirscope/pkg/logger"
	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// Scanner runs read-only discovery queries over a directory tree. It keeps
// no state between calls and is safe for concurrent use.
type Scanner struct{}

// NewScanner creates a new scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// CanReadRoot probes the root with one shallow listing. Only a permission
// failure returns false; missing paths and other errors return true.
func (s *Scanner) CanReadRoot(rootPath string) bool {
	f, err := os.Open(rootPath)
	if err != nil {
		return !fsutil.IsAccessDenied(err)
	}
	defer f.Close()

	if _, err := f.ReadDir(1); err != nil {
		return !fsutil.IsAccessDenied(err)
	}
	return true
}

// GetExtensions collects the distinct file extensions found anywhere under
// the root. Traversal uses an explicit stack so deep trees cannot exhaust
// the goroutine stack.
func (s *Scanner) GetExtensions(rootPath string, rules models.IgnoreRules) models.ScanResult[utils.NameSet] {
	exts := utils.NewNameSet()
	if !fsutil.IsDirectory(rootPath) {
		return models.NewScanResult(exts, false, false)
	}

	var rootAccessDenied, hadAccessDenied bool
	pending := []string{rootPath}
	isFirst := true

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if fsutil.IsAccessDenied(err) {
				hadAccessDenied = true
				if isFirst {
					rootAccessDenied = true
				}
				logger.Logger.WithField("dir", dir).Debug("Access denied while scanning extensions")
			} else {
				logger.Logger.WithError(err).WithField("dir", dir).Debug("Skipping unreadable directory")
			}
			isFirst = false
			continue
		}
		isFirst = false

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			full := filepath.Join(dir, entry.Name())
			if s.ShouldSkipDirectory(entry.Name(), full, rules) {
				continue
			}
			pending = append(pending, full)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			s.collectExtension(exts, dir, entry, rules)
		}
	}

	return models.NewScanResult(exts, rootAccessDenied, hadAccessDenied)
}

// GetRootFileExtensions collects the extensions of the files directly in
// the root, without descending.
func (s *Scanner) GetRootFileExtensions(rootPath string, rules models.IgnoreRules) models.ScanResult[utils.NameSet] {
	exts := utils.NewNameSet()
	if !fsutil.IsDirectory(rootPath) {
		return models.NewScanResult(exts, false, false)
	}

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		if fsutil.IsAccessDenied(err) {
			return models.NewScanResult(exts, true, true)
		}
		return models.NewScanResult(exts, false, false)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		s.collectExtension(exts, rootPath, entry, rules)
	}

	return models.NewScanResult(exts, false, false)
}

// GetRootFolderNames lists the direct child folders of the root that the
// rules keep, sorted case-insensitively.
func (s *Scanner) GetRootFolderNames(rootPath string, rules models.IgnoreRules) models.ScanResult[[]string] {
	names := []string{}
	if !fsutil.IsDirectory(rootPath) {
		return models.NewScanResult(names, false, false)
	}

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		if fsutil.IsAccessDenied(err) {
			return models.NewScanResult(names, true, true)
		}
		return models.NewScanResult(names, false, false)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if s.ShouldSkipDirectory(entry.Name(), filepath.Join(rootPath, entry.Name()), rules) {
			continue
		}
		names = append(names, entry.Name())
	}

	utils.SortFold(names)
	return models.NewScanResult(names, false, false)
}

// AllowedRootFolderPaths returns the full paths of the root's child
// directories named in allowed. Names match ignoring case and the paths
// carry the on-disk spelling. An unreadable root yields nil.
func AllowedRootFolderPaths(rootPath string, allowed utils.NameSet) []string {
	entries, err := os.ReadDir(rootPath)
	if err != nil {
		return nil
	}
	return MatchRootFolders(rootPath, entries, allowed)
}

// MatchRootFolders is AllowedRootFolderPaths over entries already listed
// from rootPath.
func MatchRootFolders(rootPath string, entries []fs.DirEntry, allowed utils.NameSet) []string {
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && allowed.Contains(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	utils.SortFold(names)
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(rootPath, name))
	}
	return paths
}

// ShouldSkipDirectory reports whether the rules exclude a directory
func (s *Scanner) ShouldSkipDirectory(name, fullPath string, rules models.IgnoreRules) bool {
	return SkipDirectory(name, fullPath, rules)
}

// ShouldSkipFile reports whether the rules exclude a file
func (s *Scanner) ShouldSkipFile(name, fullPath string, rules models.IgnoreRules) bool {
	return SkipFile(name, fullPath, rules)
}

// SkipDirectory applies the directory ignore rules. The hidden attribute is
// only probed when the hidden-folder rule is on, and a probe failure skips
// the directory rather than failing the scan.
func SkipDirectory(name, fullPath string, rules models.IgnoreRules) bool {
	if rules.SmartIgnoredFolders.Contains(name) {
		return true
	}
	if rules.IgnoreBinFolders && strings.EqualFold(name, "bin") {
		return true
	}
	if rules.IgnoreObjFolders && strings.EqualFold(name, "obj") {
		return true
	}
	if rules.IgnoreDotFolders && utils.IsDotName(name) {
		return true
	}
	if rules.IgnoreHiddenFolders && fsutil.HiddenOrUnreadable(fullPath) {
		return true
	}
	return false
}

// SkipFile applies the file ignore rules
func SkipFile(name, fullPath string, rules models.IgnoreRules) bool {
	if rules.SmartIgnoredFiles.Contains(name) {
		return true
	}
	if rules.IgnoreDotFiles && utils.IsDotName(name) {
		return true
	}
	if rules.IgnoreHiddenFiles && fsutil.HiddenOrUnreadable(fullPath) {
		return true
	}
	return false
}

func (s *Scanner) collectExtension(exts utils.NameSet, dir string, entry fs.DirEntry, rules models.IgnoreRules) {
	name := entry.Name()
	if s.ShouldSkipFile(name, filepath.Join(dir, name), rules) {
		return
	}
	if ext := utils.Extension(name); ext != "" {
		exts.Add(ext)
	}
}
