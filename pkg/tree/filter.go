package tree

import (
	"strings"

	"dirscope/pkg/models"
	"dirscope/pkg/utils"
)

// ApplyNameFilter prunes an already built tree in place so that only
// entries whose name contains filter (case-insensitively) remain, together
// with the directories leading to them. A matching directory keeps its whole
// subtree. The root itself is never removed. The pass only removes nodes; it
// cannot bring back entries the build excluded.
func ApplyNameFilter(root *models.FileSystemNode, filter string) *models.FileSystemNode {
	if root == nil || strings.TrimSpace(filter) == "" {
		return root
	}

	root.Children = filterChildren(root.Children, filter)
	return root
}

func filterChildren(children []*models.FileSystemNode, filter string) []*models.FileSystemNode {
	var kept []*models.FileSystemNode
	for _, child := range children {
		if keepNode(child, filter) {
			kept = append(kept, child)
		}
	}
	return kept
}

// keepNode reports whether node survives, pruning its children when it
// survives only through them.
func keepNode(node *models.FileSystemNode, filter string) bool {
	if utils.ContainsFold(node.Name, filter) {
		return true
	}
	if !node.IsDirectory {
		return false
	}

	node.Children = filterChildren(node.Children, filter)
	return len(node.Children) > 0
}
