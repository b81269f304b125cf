// Package configpaths resolves where configuration files are looked up.
//
// Candidates are returned in priority order; kong merges every file that
// exists, earlier files winning.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the configuration directories and files.
const AppName = "bookpictures"

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ConfigCandidatePaths lists JSON, YAML and TOML configuration candidates.
// A non-empty userConfig is the only candidate for its format and comes first;
// an unrecognized extension is tried with every loader.
func ConfigCandidatePaths(userConfig string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userConfig != "" {
		switch strings.ToLower(filepath.Ext(userConfig)) {
		case ".json":
			return []string{userConfig}, nil, nil
		case ".yaml", ".yml":
			return nil, []string{userConfig}, nil
		case ".toml":
			return nil, nil, []string{userConfig}
		default:
			return []string{userConfig}, []string{userConfig}, []string{userConfig}
		}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := SystemConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}

	for i, dir := range dirs {
		base := "config"
		if i == 0 {
			base = "." + AppName
		}
		jsonPaths = append(jsonPaths, filepath.Join(dir, base+".json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, base+".yaml"), filepath.Join(dir, base+".yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, base+".toml"))
	}
	return jsonPaths, yamlPaths, tomlPaths
}
