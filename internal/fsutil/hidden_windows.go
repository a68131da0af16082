//go:build windows

package fsutil

import (
	"golang.org/x/sys/windows"
)

// IsHidden reports whether the FILE_ATTRIBUTE_HIDDEN bit is set. Reserved
// device names such as "nul" fail here and surface the error.
func IsHidden(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}
