package vault

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/Paintersrp/vaultnav/internal/logging"
)

type obsidianJSON struct {
	Vaults map[string]struct {
		Path string `json:"path"`
		TS   int64  `json:"ts"`
		Open bool   `json:"open"`
	} `json:"vaults"`
}

// ObsidianConfigPath returns where the desktop app keeps its vault registry
// on the given operating system.
func ObsidianConfigPath(goos, home, appData string) string {
	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "obsidian", "obsidian.json")
	case "windows":
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "obsidian", "obsidian.json")
	default:
		return filepath.Join(home, ".config", "obsidian", "obsidian.json")
	}
}

// LoadObsidianJSON reads the registry at path. Any failure yields no vaults.
// Results are ordered by path.
func LoadObsidianJSON(path string, logger *logging.Logger) []Vault {
	if logger == nil {
		logger = logging.Discard()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("obsidian registry unavailable", "path", path, "err", err)
		return nil
	}

	var registry obsidianJSON
	if err := json.Unmarshal(data, &registry); err != nil {
		logger.Warn("obsidian registry unreadable", "path", path, "err", err)
		return nil
	}

	paths := make([]string, 0, len(registry.Vaults))
	for _, entry := range registry.Vaults {
		if entry.Path != "" {
			paths = append(paths, entry.Path)
		}
	}
	sort.Strings(paths)

	vaults := make([]Vault, 0, len(paths))
	for _, p := range paths {
		vaults = append(vaults, New(p))
	}
	return vaults
}

// DiscoverVaults reads the registry for the running platform.
func DiscoverVaults(logger *logging.Logger) []Vault {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return LoadObsidianJSON(ObsidianConfigPath(runtime.GOOS, home, os.Getenv("APPDATA")), logger)
}
