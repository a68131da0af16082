package pipeline

import (
	"strings"
	"time"

	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// StatsCalculator summarizes built trees
type StatsCalculator struct{}

// NewStatsCalculator creates a new stats calculator
func NewStatsCalculator() *StatsCalculator {
	return &StatsCalculator{}
}

// GetTreeStats returns statistics about a tree build
func (sc *StatsCalculator) GetTreeStats(result models.TreeBuildResult, duration time.Duration) map[string]interface{} {
	stats := make(map[string]interface{})

	stats["build_duration"] = duration.String()
	stats["root_access_denied"] = result.RootAccessDenied
	stats["had_access_denied"] = result.HadAccessDenied

	if result.Root == nil {
		stats["directories"] = 0
		stats["files"] = 0
		stats["denied_directories"] = 0
		stats["extensions"] = map[string]int{}
		return stats
	}

	extensions := make(map[string]int)
	denied := 0
	walk(result.Root, func(node *models.FileSystemNode) {
		if node.IsAccessDenied {
			denied++
		}
		if !node.IsDirectory {
			if ext := utils.Extension(node.Name); ext != "" {
				extensions[strings.ToLower(ext)]++
			}
		}
	})

	stats["directories"] = result.Root.DirectoryCount()
	stats["files"] = result.Root.FileCount()
	stats["denied_directories"] = denied
	stats["extensions"] = extensions

	return stats
}

func walk(node *models.FileSystemNode, visit func(*models.FileSystemNode)) {
	visit(node)
	for _, child := range node.Children {
		walk(child, visit)
	}
}
