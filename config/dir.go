package config

import (
	"os"
	"path/filepath"
)

// homeDirName is the per-user directory for CLI state (caches, overrides).
const homeDirName = ".cabreaich"

// Dir returns the path to the per-user config directory (~/.cabreaich/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", homeDirName)
	}
	return filepath.Join(home, homeDirName)
}
