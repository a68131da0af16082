package smartignore

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"dirscope/pkg/utils"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Candidate is a known folder or file name with its recommended state
type Candidate struct {
	Name           string `yaml:"name"`
	DefaultChecked bool   `yaml:"default_checked"`
}

// Defaults holds the recommended state of the hidden and dot options
type Defaults struct {
	HiddenFolders bool `yaml:"hidden_folders"`
	HiddenFiles   bool `yaml:"hidden_files"`
	DotFolders    bool `yaml:"dot_folders"`
	DotFiles      bool `yaml:"dot_files"`
}

// fallbackDefaults apply when a catalog has no defaults section
var fallbackDefaults = Defaults{HiddenFolders: true, DotFolders: true}

type catalogFile struct {
	FolderCandidates []Candidate `yaml:"folder_candidates"`
	FileCandidates   []Candidate `yaml:"file_candidates"`
	Defaults         *Defaults   `yaml:"defaults"`
}

// Catalog is the static list of ignore candidates. Lookups ignore case.
type Catalog struct {
	folders  map[string]bool
	files    map[string]bool
	Defaults Defaults
}

// LoadCatalog parses a YAML catalog
func LoadCatalog(data []byte) (*Catalog, error) {
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ignore catalog: %w", err)
	}

	catalog := &Catalog{
		folders:  make(map[string]bool, len(raw.FolderCandidates)),
		files:    make(map[string]bool, len(raw.FileCandidates)),
		Defaults: fallbackDefaults,
	}
	for _, c := range raw.FolderCandidates {
		if c.Name == "" {
			return nil, errors.New("ignore catalog has a folder candidate without a name")
		}
		catalog.folders[utils.FoldName(c.Name)] = c.DefaultChecked
	}
	for _, c := range raw.FileCandidates {
		if c.Name == "" {
			return nil, errors.New("ignore catalog has a file candidate without a name")
		}
		catalog.files[utils.FoldName(c.Name)] = c.DefaultChecked
	}
	if raw.Defaults != nil {
		catalog.Defaults = *raw.Defaults
	}

	return catalog, nil
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return LoadCatalog(embeddedCatalog)
})

// DefaultCatalog returns the built-in catalog, parsed on first use
func DefaultCatalog() (*Catalog, error) {
	return defaultCatalog()
}

// FolderNames returns every folder candidate key
func (c *Catalog) FolderNames() utils.NameSet {
	return namesOf(c.folders)
}

// FileNames returns every file candidate key
func (c *Catalog) FileNames() utils.NameSet {
	return namesOf(c.files)
}

// FolderDefault returns the recommended state of a folder candidate
func (c *Catalog) FolderDefault(name string) bool {
	return c.folders[utils.FoldName(name)]
}

// FileDefault returns the recommended state of a file candidate
func (c *Catalog) FileDefault(name string) bool {
	return c.files[utils.FoldName(name)]
}

func namesOf(m map[string]bool) utils.NameSet {
	set := make(utils.NameSet, len(m))
	for key := range m {
		set.Add(key)
	}
	return set
}
