package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/cruciblehq/mdbuild/internal"
)

// Path to the directory holding user configuration.
//
//	Linux:   $XDG_CONFIG_HOME/mdbuild or ~/.config/mdbuild
//	macOS:   ~/Library/Application Support/mdbuild
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, internal.Name)
}

// Path to the JSON configuration file.
//
// The file is optional. Its keys are flag names, e.g.
//
//	{"engine": "podman", "base": "debian:bookworm"}
func Config() string {
	return filepath.Join(ConfigDir(), "config.json")
}
