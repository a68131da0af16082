// Package pipeline turns the choices made in the option pickers into the
// rules and filter options consumed by scans and tree builds.
package pipeline

import (
	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// RulesResolver maps selected ignore options onto IgnoreRules
type RulesResolver struct {
	ignoreBin bool
	ignoreObj bool
}

// NewRulesResolver creates a resolver. The bin and obj flags are copied
// into every resolved rule set.
func NewRulesResolver(ignoreBin, ignoreObj bool) *RulesResolver {
	return &RulesResolver{ignoreBin: ignoreBin, ignoreObj: ignoreObj}
}

// Build resolves the options whose ID is in selected (case-insensitively).
// Selected IDs that match no option are ignored.
func (r *RulesResolver) Build(options []models.IgnoreOptionDefinition, selected []string) models.IgnoreRules {
	chosen := utils.NewNameSet(selected...)
	rules := models.IgnoreRules{
		IgnoreBinFolders:    r.ignoreBin,
		IgnoreObjFolders:    r.ignoreObj,
		SmartIgnoredFolders: utils.NewNameSet(),
		SmartIgnoredFiles:   utils.NewNameSet(),
	}

	for _, option := range options {
		if !chosen.Contains(option.ID) {
			continue
		}

		switch option.Kind {
		case models.IgnoreOptionNamedFolder:
			rules.SmartIgnoredFolders.Add(option.ID)
		case models.IgnoreOptionNamedFile:
			rules.SmartIgnoredFiles.Add(option.ID)
		case models.IgnoreOptionHiddenFolders:
			rules.IgnoreHiddenFolders = true
		case models.IgnoreOptionHiddenFiles:
			rules.IgnoreHiddenFiles = true
		case models.IgnoreOptionDotFolders:
			rules.IgnoreDotFolders = true
		case models.IgnoreOptionDotFiles:
			rules.IgnoreDotFiles = true
		}
	}

	return rules
}

// DefaultSelection returns the IDs of the options checked by default
func DefaultSelection(options []models.IgnoreOptionDefinition) []string {
	selected := []string{}
	for _, option := range options {
		if option.DefaultChecked {
			selected = append(selected, option.ID)
		}
	}
	return selected
}

// MergeSmartIgnore adds the names proposed by the smart-ignore strategies
// to rules. The result does not share sets with rules.
func MergeSmartIgnore(rules models.IgnoreRules, smart models.SmartIgnoreResult) models.IgnoreRules {
	folders := utils.NewNameSet()
	folders.Union(rules.SmartIgnoredFolders)
	folders.Union(smart.FolderNames)

	files := utils.NewNameSet()
	files.Union(rules.SmartIgnoredFiles)
	files.Union(smart.FileNames)

	rules.SmartIgnoredFolders = folders
	rules.SmartIgnoredFiles = files
	return rules
}
