package config

import (
	"os"
	"path/filepath"
)

// fileNames are tried in order in each candidate directory.
var fileNames = []string{"terramap.toml", "terramap.yaml", "terramap.yml"}

// Dir returns the per-user config directory ($XDG_CONFIG_HOME/terramap or
// ~/.config/terramap).
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "terramap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "terramap")
}

// Discover returns the first config file found in the working directory or
// the user config directory, or "" if there is none.
func Discover() string {
	dirs := []string{"."}
	if d := Dir(); d != "" {
		dirs = append(dirs, d)
	}
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
