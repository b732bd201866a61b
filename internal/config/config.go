package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/vaultnav/internal/constants"
)

type SearchConfig struct {
	ExcludedFolders string  `yaml:"excluded_folders" json:"excluded_folders"`
	Fuzzy           bool    `yaml:"fuzzy"            json:"fuzzy"`
	Content         bool    `yaml:"content"          json:"content"`
	FuzzyThreshold  float64 `yaml:"fuzzy_threshold"  json:"fuzzy_threshold"`
	MaxRendered     int     `yaml:"max_rendered"     json:"max_rendered"`
	DebounceMillis  int     `yaml:"debounce_ms"      json:"debounce_ms"`
}

type ImageSearchConfig struct {
	MaxDepth int `yaml:"max_depth" json:"max_depth"`
	MaxNodes int `yaml:"max_nodes" json:"max_nodes"`
}

type ContentConfig struct {
	RemoveYAML  bool              `yaml:"remove_yaml"  json:"remove_yaml"`
	RemoveLatex bool              `yaml:"remove_latex" json:"remove_latex"`
	RemoveLinks bool              `yaml:"remove_links" json:"remove_links"`
	ImageSearch ImageSearchConfig `yaml:"image_search" json:"image_search"`
}

type CreateConfig struct {
	Folder    string   `yaml:"folder"     json:"folder"`
	Tags      []string `yaml:"tags"       json:"tags"`
	BlankNote bool     `yaml:"blank_note" json:"blank_note"`
}

type DisplayConfig struct {
	VaultIndicator string `yaml:"vault_indicator" json:"vault_indicator"`
}

type StoreConfig struct {
	Driver string `yaml:"driver" json:"driver"`
	Path   string `yaml:"path"   json:"path"`
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file"  json:"file"`
	Perf  bool   `yaml:"perf"  json:"perf"`
}

type Config struct {
	VaultPath      string        `yaml:"vault_path"       json:"vault_path"`
	ConfigFileName string        `yaml:"config_file_name" json:"config_file_name"`
	DiscoverVaults bool          `yaml:"discover_vaults"  json:"discover_vaults"`
	Editor         string        `yaml:"editor"           json:"editor"`
	Search         SearchConfig  `yaml:"search"           json:"search"`
	Content        ContentConfig `yaml:"content"          json:"content"`
	Create         CreateConfig  `yaml:"create"           json:"create"`
	Display        DisplayConfig `yaml:"display"          json:"display"`
	Store          StoreConfig   `yaml:"store"            json:"store"`
	Log            LogConfig     `yaml:"log"              json:"log"`

	path string `yaml:"-"`
}

const (
	defaultFuzzyThreshold = 0.3
	defaultMaxRendered    = 1000
	defaultDebounceMillis = 150
	defaultImageDepth     = 16
	defaultImageNodes     = 20000
)

var (
	StoreDrivers    = []interface{}{"bolt", "sqlite", "memory"}
	LogLevels       = []interface{}{"debug", "info", "warn", "error"}
	IndicatorStyles = []interface{}{"none", "abbreviation", "emoji", "full"}
)

// Default returns a configuration rooted at home with every optional value
// filled in.
func Default(home string) *Config {
	dir := filepath.Join(home, constants.ConfigDir)
	return &Config{
		ConfigFileName: constants.DefaultConfigFileName,
		DiscoverVaults: true,
		Editor:         "obsidian",
		Search: SearchConfig{
			FuzzyThreshold: defaultFuzzyThreshold,
			MaxRendered:    defaultMaxRendered,
			DebounceMillis: defaultDebounceMillis,
		},
		Content: ContentConfig{
			ImageSearch: ImageSearchConfig{
				MaxDepth: defaultImageDepth,
				MaxNodes: defaultImageNodes,
			},
		},
		Display: DisplayConfig{VaultIndicator: "abbreviation"},
		Store: StoreConfig{
			Driver: "bolt",
			Path:   filepath.Join(dir, constants.StoreFile),
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, constants.LogFile),
		},
	}
}

// Load reads the config file under home. An empty file yields Default.
func Load(home string) (*Config, error) {
	return LoadFile(home, GetConfigPath(home))
}

// LoadFile reads the config at path, falling back to defaults derived from
// home for any value the file leaves out.
func LoadFile(home, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default(home)
	if len(strings.TrimSpace(string(data))) != 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	}

	cfg.path = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

func (cfg *Config) normalize() {
	cfg.ConfigFileName = strings.TrimSpace(cfg.ConfigFileName)
	if cfg.ConfigFileName == "" {
		cfg.ConfigFileName = constants.DefaultConfigFileName
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
}

func (cfg *Config) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.ConfigFileName, validation.Required),
		validation.Field(&cfg.Search),
		validation.Field(&cfg.Content),
		validation.Field(&cfg.Display),
		validation.Field(&cfg.Store),
		validation.Field(&cfg.Log),
	)
}

func (s SearchConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.FuzzyThreshold, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&s.MaxRendered, validation.Required, validation.Min(1)),
		validation.Field(&s.DebounceMillis, validation.Min(0)),
	)
}

func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ImageSearch),
	)
}

func (i ImageSearchConfig) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.MaxDepth, validation.Required, validation.Min(1)),
		validation.Field(&i.MaxNodes, validation.Required, validation.Min(1)),
	)
}

func (d DisplayConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.VaultIndicator, validation.In(IndicatorStyles...)),
	)
}

func (s StoreConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Driver, validation.Required, validation.In(StoreDrivers...)),
		validation.Field(&s.Path, validation.When(s.Driver != "memory", validation.Required)),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In(LogLevels...)),
	)
}

// Path returns the file the config was loaded from.
func (cfg *Config) Path() string {
	return cfg.path
}

func (cfg *Config) Save() error {
	if cfg.path == "" {
		return fmt.Errorf("config: no file path set")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(cfg.path, data, 0o644)
}

// SyncViper mirrors the loaded values into viper so commands can read them
// by key and flags bound to the same keys can override them.
func (cfg *Config) SyncViper() {
	viper.SetDefault("vault_path", cfg.VaultPath)
	viper.SetDefault("config_file_name", cfg.ConfigFileName)
	viper.SetDefault("editor", cfg.Editor)
	viper.SetDefault("search.excluded_folders", cfg.Search.ExcludedFolders)
	viper.SetDefault("search.fuzzy", cfg.Search.Fuzzy)
	viper.SetDefault("search.content", cfg.Search.Content)
	viper.SetDefault("search.max_rendered", cfg.Search.MaxRendered)
	viper.SetDefault("content.remove_yaml", cfg.Content.RemoveYAML)
	viper.SetDefault("content.remove_latex", cfg.Content.RemoveLatex)
	viper.SetDefault("content.remove_links", cfg.Content.RemoveLinks)
	viper.SetDefault("display.vault_indicator", cfg.Display.VaultIndicator)
}

// ApplyViper copies overrides (environment variables, bound flags) back
// into cfg.
func (cfg *Config) ApplyViper() {
	cfg.VaultPath = viper.GetString("vault_path")
	cfg.ConfigFileName = viper.GetString("config_file_name")
	cfg.Editor = viper.GetString("editor")
	cfg.Search.ExcludedFolders = viper.GetString("search.excluded_folders")
	cfg.Search.Fuzzy = viper.GetBool("search.fuzzy")
	cfg.Search.Content = viper.GetBool("search.content")
	cfg.Search.MaxRendered = viper.GetInt("search.max_rendered")
	cfg.Content.RemoveYAML = viper.GetBool("content.remove_yaml")
	cfg.Content.RemoveLatex = viper.GetBool("content.remove_latex")
	cfg.Content.RemoveLinks = viper.GetBool("content.remove_links")
	cfg.Display.VaultIndicator = viper.GetString("display.vault_indicator")
	cfg.normalize()
}
