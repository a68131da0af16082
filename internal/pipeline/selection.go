package pipeline

import (
	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// SelectionBuilder computes the initial checked state of picker entries
type SelectionBuilder struct {
	defaultExtensions utils.NameSet
}

// NewSelectionBuilder creates a builder that pre-checks defaultExtensions
// when nothing was selected before
func NewSelectionBuilder(defaultExtensions []string) *SelectionBuilder {
	return &SelectionBuilder{defaultExtensions: utils.NewNameSet(defaultExtensions...)}
}

// BuildExtensionOptions sorts the extensions case-insensitively. An entry is
// checked when it was selected before or, with no previous selection, when
// it is a default extension.
func (b *SelectionBuilder) BuildExtensionOptions(extensions []string, previous utils.NameSet) []models.SelectionOption {
	sorted := append([]string(nil), extensions...)
	utils.SortFold(sorted)

	hasPrevious := previous.Len() > 0
	options := make([]models.SelectionOption, 0, len(sorted))
	for _, ext := range sorted {
		checked := previous.Contains(ext) || (!hasPrevious && b.defaultExtensions.Contains(ext))
		options = append(options, models.SelectionOption{Name: ext, Checked: checked})
	}
	return options
}

// BuildRootFolderOptions keeps the given order. An entry is checked when it
// was selected before or, with no previous selection, when rules would not
// ignore it.
func (b *SelectionBuilder) BuildRootFolderOptions(folders []string, previous utils.NameSet, rules models.IgnoreRules) []models.SelectionOption {
	hasPrevious := previous.Len() > 0
	options := make([]models.SelectionOption, 0, len(folders))
	for _, name := range folders {
		checked := previous.Contains(name) || (!hasPrevious && !ignoredByRules(name, rules))
		options = append(options, models.SelectionOption{Name: name, Checked: checked})
	}
	return options
}

func ignoredByRules(name string, rules models.IgnoreRules) bool {
	if rules.SmartIgnoredFolders.Contains(name) {
		return true
	}
	return rules.IgnoreDotFolders && utils.IsDotName(name)
}

// CheckedNames returns the names of the checked options
func CheckedNames(options []models.SelectionOption) utils.NameSet {
	names := utils.NewNameSet()
	for _, option := range options {
		if option.Checked {
			names.Add(option.Name)
		}
	}
	return names
}
