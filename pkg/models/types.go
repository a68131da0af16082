package models

import (
	"dirscope/pkg/utils"
)

// Config represents the complete configuration for dirscope
type Config struct {
	Scan   ScanConfig   `yaml:"scan"`
	Ignore IgnoreConfig `yaml:"ignore"`
	State  StateConfig  `yaml:"state"`
	Log    LogConfig    `yaml:"log"`
}

// ScanConfig contains tree scanning defaults
type ScanConfig struct {
	DefaultExtensions []string `yaml:"default_extensions"`
	IgnoreBin         bool     `yaml:"ignore_bin"`
	IgnoreObj         bool     `yaml:"ignore_obj"`
}

// IgnoreConfig contains smart-ignore settings
type IgnoreConfig struct {
	UseDefaults bool   `yaml:"use_defaults"` // Apply catalog defaults when nothing was selected
	Catalog     string `yaml:"catalog"`      // Optional path to a custom candidate catalog
}

// StateConfig contains selection persistence settings
type StateConfig struct {
	File     string `yaml:"file"`
	Remember bool   `yaml:"remember"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// CLIOptions contains command-line options
type CLIOptions struct {
	ConfigFile  string
	Extensions  string
	RootFolders string
	Ignore      string
	NameFilter  string
	StateFile   string
	Remember    bool
	Verbose     bool
	Quiet       bool
}

// FileSystemNode is one entry of a built tree. Directories own their
// children; only IsAccessDenied changes after construction.
type FileSystemNode struct {
	Name           string
	FullPath       string
	IsDirectory    bool
	IsAccessDenied bool
	Children       []*FileSystemNode
}

// DirectoryCount returns the number of directories below the node
func (n *FileSystemNode) DirectoryCount() int {
	count := 0
	for _, child := range n.Children {
		if child.IsDirectory {
			count += 1 + child.DirectoryCount()
		}
	}
	return count
}

// FileCount returns the number of files below the node
func (n *FileSystemNode) FileCount() int {
	count := 0
	for _, child := range n.Children {
		if child.IsDirectory {
			count += child.FileCount()
		} else {
			count++
		}
	}
	return count
}

// IgnoreRules selects which entries scans and builds leave out.
// Name comparisons are case-insensitive.
type IgnoreRules struct {
	IgnoreBinFolders    bool
	IgnoreObjFolders    bool
	IgnoreHiddenFolders bool
	IgnoreHiddenFiles   bool
	IgnoreDotFolders    bool
	IgnoreDotFiles      bool
	SmartIgnoredFolders utils.NameSet
	SmartIgnoredFiles   utils.NameSet
}

// TreeFilterOptions configures a tree build
type TreeFilterOptions struct {
	// AllowedExtensions includes the leading dot. An empty set yields a
	// directories-only tree.
	AllowedExtensions utils.NameSet
	// AllowedRootFolders only applies to the direct children of the root.
	AllowedRootFolders utils.NameSet
	IgnoreRules        IgnoreRules
	NameFilter         string
}

// ScanResult wraps a discovery result with access-denied flags
type ScanResult[T any] struct {
	Value            T
	RootAccessDenied bool
	HadAccessDenied  bool
}

// NewScanResult creates a scan result. A denied root always counts as a
// denial somewhere in the scan.
func NewScanResult[T any](value T, rootAccessDenied, hadAccessDenied bool) ScanResult[T] {
	return ScanResult[T]{
		Value:            value,
		RootAccessDenied: rootAccessDenied,
		HadAccessDenied:  hadAccessDenied || rootAccessDenied,
	}
}

// TreeBuildResult is the outcome of a tree build
type TreeBuildResult struct {
	Root             *FileSystemNode
	RootAccessDenied bool
	HadAccessDenied  bool
}

// ScanOptionsResult contains the values that populate extension and
// root folder pickers
type ScanOptionsResult struct {
	Extensions       []string
	RootFolders      []string
	RootAccessDenied bool
	HadAccessDenied  bool
}

// SmartIgnoreResult holds the names proposed by one ignore strategy
type SmartIgnoreResult struct {
	FolderNames utils.NameSet
	FileNames   utils.NameSet
}

// NewSmartIgnoreResult creates a result whose sets are never nil
func NewSmartIgnoreResult(folders, files utils.NameSet) SmartIgnoreResult {
	if folders == nil {
		folders = utils.NewNameSet()
	}
	if files == nil {
		files = utils.NewNameSet()
	}
	return SmartIgnoreResult{FolderNames: folders, FileNames: files}
}

// IgnoreOptionKind identifies what an ignore option targets
type IgnoreOptionKind int

const (
	IgnoreOptionNamedFolder IgnoreOptionKind = iota
	IgnoreOptionNamedFile
	IgnoreOptionHiddenFolders
	IgnoreOptionHiddenFiles
	IgnoreOptionDotFolders
	IgnoreOptionDotFiles
)

// Identifiers of the synthetic ignore options
const (
	HiddenFoldersOptionID = "hidden-folders"
	HiddenFilesOptionID   = "hidden-files"
	DotFoldersOptionID    = "dot-folders"
	DotFilesOptionID      = "dot-files"
)

// String returns the string representation of the kind
func (k IgnoreOptionKind) String() string {
	switch k {
	case IgnoreOptionNamedFolder:
		return "folder"
	case IgnoreOptionNamedFile:
		return "file"
	case IgnoreOptionHiddenFolders:
		return "hidden-folders"
	case IgnoreOptionHiddenFiles:
		return "hidden-files"
	case IgnoreOptionDotFolders:
		return "dot-folders"
	case IgnoreOptionDotFiles:
		return "dot-files"
	default:
		return "unknown"
	}
}

// IgnoreOptionDefinition is one toggle offered to the user
type IgnoreOptionDefinition struct {
	ID             string
	Kind           IgnoreOptionKind
	DefaultChecked bool
}

// SelectionOption is one entry of an extension or root folder picker
type SelectionOption struct {
	Name    string
	Checked bool
}

// Selection holds the choices made for one root path
type Selection struct {
	Extensions  []string `yaml:"extensions,omitempty"`
	RootFolders []string `yaml:"root_folders,omitempty"`
	Ignore      []string `yaml:"ignore,omitempty"`
}

// IsEmpty reports whether nothing was selected
func (s Selection) IsEmpty() bool {
	return len(s.Extensions) == 0 && len(s.RootFolders) == 0 && len(s.Ignore) == 0
}

// TreeRequest holds the explicit choices for a tree build. Empty fields
// fall back to remembered selections and then to defaults.
type TreeRequest struct {
	Extensions  []string
	RootFolders []string
	Ignore      []string
	NameFilter  string
}

// TreePlan is a resolved tree build together with the selection it came from
type TreePlan struct {
	Options   TreeFilterOptions
	Selection Selection
	// IgnoreOptions lists every ignore option relevant to the root
	IgnoreOptions []IgnoreOptionDefinition
}
