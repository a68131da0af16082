//go:build unix && !darwin

package fsutil

import (
	"golang.org/x/sys/unix"
)

// IsHidden always reports false once the entry can be stat'ed: these
// platforms have no hidden attribute, dot names are handled by the dot rules.
func IsHidden(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return false, err
	}
	return false, nil
}
