package pipeline

import (
	"testing"

	"dirscope/pkg/models"
	"dirscope/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestSelectionBuilder_BuildExtensionOptions(t *testing.T) {
	builder := NewSelectionBuilder([]string{".go", ".MD"})

	t.Run("should check defaults without previous selection", func(t *testing.T) {
		options := builder.BuildExtensionOptions([]string{".txt", ".md", ".Go"}, utils.NewNameSet())

		assert.Equal(t, []models.SelectionOption{
			{Name: ".Go", Checked: true},
			{Name: ".md", Checked: true},
			{Name: ".txt", Checked: false},
		}, options)
	})

	t.Run("should only check previous selection when present", func(t *testing.T) {
		options := builder.BuildExtensionOptions([]string{".go", ".txt"}, utils.NewNameSet(".TXT"))

		assert.Equal(t, []models.SelectionOption{
			{Name: ".go", Checked: false},
			{Name: ".txt", Checked: true},
		}, options)
	})

	t.Run("should not reorder the input slice", func(t *testing.T) {
		input := []string{".b", ".a"}
		builder.BuildExtensionOptions(input, nil)

		assert.Equal(t, []string{".b", ".a"}, input)
	})
}

func TestSelectionBuilder_BuildRootFolderOptions(t *testing.T) {
	builder := NewSelectionBuilder(nil)
	rules := models.IgnoreRules{
		IgnoreDotFolders:    true,
		SmartIgnoredFolders: utils.NewNameSet("node_modules"),
	}

	t.Run("should check folders not ignored by rules", func(t *testing.T) {
		options := builder.BuildRootFolderOptions([]string{".github", "node_modules", "src"}, nil, rules)

		assert.Equal(t, []models.SelectionOption{
			{Name: ".github", Checked: false},
			{Name: "node_modules", Checked: false},
			{Name: "src", Checked: true},
		}, options)
	})

	t.Run("should honor previous selection over rules", func(t *testing.T) {
		options := builder.BuildRootFolderOptions([]string{"node_modules", "src"}, utils.NewNameSet("NODE_MODULES"), rules)

		assert.Equal(t, []models.SelectionOption{
			{Name: "node_modules", Checked: true},
			{Name: "src", Checked: false},
		}, options)
	})

	t.Run("should keep dot folders when dot rule is off", func(t *testing.T) {
		options := builder.BuildRootFolderOptions([]string{".github"}, nil, models.IgnoreRules{})

		assert.True(t, options[0].Checked)
	})
}

func TestCheckedNames(t *testing.T) {
	names := CheckedNames([]models.SelectionOption{
		{Name: "src", Checked: true},
		{Name: "docs", Checked: false},
		{Name: "SRC", Checked: true},
	})

	assert.Equal(t, []string{"src"}, names.Names())
}
