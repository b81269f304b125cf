//go:build !windows

package configpaths

import (
	"path/filepath"
)

// SystemConfigDir returns the machine-wide configuration directory.
// On Unix this is /etc/bookpictures.
func SystemConfigDir() (string, error) {
	return filepath.Join(string(filepath.Separator), "etc", AppName), nil
}
