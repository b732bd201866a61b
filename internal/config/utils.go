package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Paintersrp/vaultnav/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists creates an empty config file (and its directory) at
// path when none is present.
func EnsureConfigExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}
