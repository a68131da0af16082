//go:build !unix && !windows

package fsutil

import (
	"os"
)

// IsHidden reports false for any entry that can be stat'ed
func IsHidden(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		return false, err
	}
	return false, nil
}
