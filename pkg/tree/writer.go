package tree

import (
	"fmt"
	"strings"

	"dirscope/pkg/models"
)

// AccessDeniedMarker is appended to directories that could not be listed
const AccessDeniedMarker = " [access denied]"

// WriteTree renders a built tree in Unix tree format, headed by the root's
// full path and followed by a directory and file count.
func WriteTree(root *models.FileSystemNode) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(root.FullPath)
	if root.IsAccessDenied {
		sb.WriteString(AccessDeniedMarker)
	}
	sb.WriteString("\n")

	writeTreeRecursive(&sb, root.Children, "")

	sb.WriteString(fmt.Sprintf("\n%d directories, %d files\n", root.DirectoryCount(), root.FileCount()))

	return sb.String()
}

// WriteSelectedTree renders only the branches leading to selected paths.
// It returns an empty string when nothing under root is selected.
func WriteSelectedTree(root *models.FileSystemNode, selected map[string]bool) string {
	if root == nil || !hasSelectedDescendantOrSelf(root, selected) {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(root.FullPath)
	sb.WriteString("\n")

	writeSelectedRecursive(&sb, root.Children, selected, "")

	return sb.String()
}

// writeTreeRecursive recursively writes the Unix-style tree structure
func writeTreeRecursive(sb *strings.Builder, nodes []*models.FileSystemNode, prefix string) {
	for i, node := range nodes {
		currentPrefix, nextPrefix := branchPrefixes(prefix, i == len(nodes)-1)

		sb.WriteString(currentPrefix)
		sb.WriteString(displayName(node))
		sb.WriteString("\n")

		if node.IsDirectory && len(node.Children) > 0 {
			writeTreeRecursive(sb, node.Children, nextPrefix)
		}
	}
}

func writeSelectedRecursive(sb *strings.Builder, nodes []*models.FileSystemNode, selected map[string]bool, prefix string) {
	var visible []*models.FileSystemNode
	for _, node := range nodes {
		if hasSelectedDescendantOrSelf(node, selected) {
			visible = append(visible, node)
		}
	}

	for i, node := range visible {
		currentPrefix, nextPrefix := branchPrefixes(prefix, i == len(visible)-1)

		sb.WriteString(currentPrefix)
		sb.WriteString(displayName(node))
		sb.WriteString("\n")

		if node.IsDirectory && len(node.Children) > 0 {
			writeSelectedRecursive(sb, node.Children, selected, nextPrefix)
		}
	}
}

func branchPrefixes(prefix string, isLast bool) (current, next string) {
	if isLast {
		return prefix + "└── ", prefix + "    "
	}
	return prefix + "├── ", prefix + "│   "
}

func displayName(node *models.FileSystemNode) string {
	if node.IsAccessDenied {
		return node.Name + AccessDeniedMarker
	}
	return node.Name
}

func hasSelectedDescendantOrSelf(node *models.FileSystemNode, selected map[string]bool) bool {
	if selected[node.FullPath] {
		return true
	}
	for _, child := range node.Children {
		if hasSelectedDescendantOrSelf(child, selected) {
			return true
		}
	}
	return false
}
