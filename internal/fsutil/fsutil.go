// Package fsutil classifies filesystem errors and probes platform hidden
// attributes for the scanner, tree builder and smart-ignore analyzer.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// IsAccessDenied reports whether err is a permission failure
func IsAccessDenied(err error) bool {
	return err != nil && errors.Is(err, fs.ErrPermission)
}

// IsDirectory reports whether path exists and is a directory. Blank paths
// are never directories.
func IsDirectory(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether path exists and is not a directory
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// HiddenOrUnreadable reports whether the entry carries the platform hidden
// attribute. An attribute that cannot be read counts as hidden.
func HiddenOrUnreadable(path string) bool {
	hidden, err := IsHidden(path)
	return hidden || err != nil
}

// HasHiddenAttribute reports whether the entry carries the platform hidden
// attribute. An attribute that cannot be read counts as not hidden.
func HasHiddenAttribute(path string) bool {
	hidden, err := IsHidden(path)
	return err == nil && hidden
}
