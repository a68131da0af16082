package utils

import (
	"strings"
)

// Extension returns the extension of a file name including the leading dot.
// Names without a dot, or ending in one, have no extension.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx:]
}

// IsDotName reports whether a file or folder name starts with a dot
func IsDotName(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ParsePatterns parses comma-separated lists such as ".go,.md" or "src,docs"
func ParsePatterns(patternStr string) []string {
	if patternStr == "" {
		return nil
	}

	patterns := strings.Split(patternStr, ",")
	var result []string

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern != "" {
			result = append(result, pattern)
		}
	}

	return result
}

// NormalizeExtension makes sure an extension carries its leading dot
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
