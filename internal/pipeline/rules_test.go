package pipeline

import (
	"testing"

	"dirscope/pkg/models"
	"dirscope/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func sampleOptions() []models.IgnoreOptionDefinition {
	return []models.IgnoreOptionDefinition{
		{ID: ".git", Kind: models.IgnoreOptionNamedFolder, DefaultChecked: true},
		{ID: "cache", Kind: models.IgnoreOptionNamedFolder, DefaultChecked: false},
		{ID: "Thumbs.db", Kind: models.IgnoreOptionNamedFile, DefaultChecked: true},
		{ID: models.HiddenFoldersOptionID, Kind: models.IgnoreOptionHiddenFolders, DefaultChecked: true},
		{ID: models.HiddenFilesOptionID, Kind: models.IgnoreOptionHiddenFiles, DefaultChecked: false},
		{ID: models.DotFoldersOptionID, Kind: models.IgnoreOptionDotFolders, DefaultChecked: true},
		{ID: models.DotFilesOptionID, Kind: models.IgnoreOptionDotFiles, DefaultChecked: false},
	}
}

func TestRulesResolver_Build(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		check    func(t *testing.T, rules models.IgnoreRules)
	}{
		{
			name:     "should resolve nothing without selection",
			selected: nil,
			check: func(t *testing.T, rules models.IgnoreRules) {
				assert.Equal(t, 0, rules.SmartIgnoredFolders.Len())
				assert.Equal(t, 0, rules.SmartIgnoredFiles.Len())
				assert.False(t, rules.IgnoreHiddenFolders)
				assert.False(t, rules.IgnoreDotFiles)
			},
		},
		{
			name:     "should map named options to name sets",
			selected: []string{".GIT", "thumbs.db"},
			check: func(t *testing.T, rules models.IgnoreRules) {
				assert.Equal(t, []string{".git"}, rules.SmartIgnoredFolders.Names())
				assert.Equal(t, []string{"Thumbs.db"}, rules.SmartIgnoredFiles.Names())
			},
		},
		{
			name:     "should map synthetic options to flags",
			selected: []string{"hidden-folders", "HIDDEN-FILES", "dot-folders", "dot-files"},
			check: func(t *testing.T, rules models.IgnoreRules) {
				assert.True(t, rules.IgnoreHiddenFolders)
				assert.True(t, rules.IgnoreHiddenFiles)
				assert.True(t, rules.IgnoreDotFolders)
				assert.True(t, rules.IgnoreDotFiles)
				assert.Equal(t, 0, rules.SmartIgnoredFolders.Len())
			},
		},
		{
			name:     "should ignore unknown identifiers",
			selected: []string{"node_modules", "cache"},
			check: func(t *testing.T, rules models.IgnoreRules) {
				assert.Equal(t, []string{"cache"}, rules.SmartIgnoredFolders.Names())
			},
		},
	}

	resolver := NewRulesResolver(false, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, resolver.Build(sampleOptions(), tt.selected))
		})
	}

	t.Run("should carry bin and obj flags", func(t *testing.T) {
		rules := NewRulesResolver(true, true).Build(nil, nil)

		assert.True(t, rules.IgnoreBinFolders)
		assert.True(t, rules.IgnoreObjFolders)
	})
}

func TestDefaultSelection(t *testing.T) {
	t.Run("should return default-checked identifiers in order", func(t *testing.T) {
		selected := DefaultSelection(sampleOptions())

		assert.Equal(t, []string{".git", "Thumbs.db", "hidden-folders", "dot-folders"}, selected)
	})

	t.Run("should return empty list for no options", func(t *testing.T) {
		assert.Empty(t, DefaultSelection(nil))
	})
}

func TestMergeSmartIgnore(t *testing.T) {
	t.Run("should union names without touching the input", func(t *testing.T) {
		rules := models.IgnoreRules{
			IgnoreDotFiles:      true,
			SmartIgnoredFolders: utils.NewNameSet("cache"),
			SmartIgnoredFiles:   utils.NewNameSet(),
		}
		smart := models.NewSmartIgnoreResult(utils.NewNameSet(".git", "CACHE"), utils.NewNameSet("thumbs.db"))

		merged := MergeSmartIgnore(rules, smart)

		assert.True(t, merged.IgnoreDotFiles)
		assert.Equal(t, []string{".git", "cache"}, merged.SmartIgnoredFolders.Names())
		assert.Equal(t, []string{"thumbs.db"}, merged.SmartIgnoredFiles.Names())
		assert.Equal(t, 1, rules.SmartIgnoredFolders.Len())
		assert.Equal(t, 0, rules.SmartIgnoredFiles.Len())
	})

	t.Run("should accept nil sets", func(t *testing.T) {
		merged := MergeSmartIgnore(models.IgnoreRules{}, models.NewSmartIgnoreResult(nil, nil))

		assert.NotNil(t, merged.SmartIgnoredFolders)
		assert.NotNil(t, merged.SmartIgnoredFiles)
	})
}
