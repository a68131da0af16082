//go:build darwin

package fsutil

import (
	"golang.org/x/sys/unix"
)

// UF_HIDDEN from <sys/stat.h>
const ufHidden = 0x8000

// IsHidden reports whether the UF_HIDDEN file flag is set (chflags hidden)
func IsHidden(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return false, err
	}
	return st.Flags&ufHidden != 0, nil
}
