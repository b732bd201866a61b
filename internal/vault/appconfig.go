package vault

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppConfig holds the parts of <vault>/<config folder>/app.json we honour.
type AppConfig struct {
	UserIgnoreFilters    []string `json:"userIgnoreFilters"`
	AttachmentFolderPath string   `json:"attachmentFolderPath"`
}

// ReadAppConfig is best effort: a missing or malformed file yields the zero
// value.
func ReadAppConfig(v Vault, configFileName string) AppConfig {
	var cfg AppConfig
	data, err := os.ReadFile(filepath.Join(v.Path, configFileName, "app.json"))
	if err != nil {
		return AppConfig{}
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}
	}
	return cfg
}
