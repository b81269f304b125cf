//go:build windows

package configpaths

import (
	"errors"
	"os"
	"path/filepath"
)

// SystemConfigDir returns the machine-wide configuration directory under ProgramData.
func SystemConfigDir() (string, error) {
	pd := os.Getenv("ProgramData")
	if pd == "" {
		return "", errors.New("ProgramData is not set")
	}
	return filepath.Join(pd, AppName), nil
}
