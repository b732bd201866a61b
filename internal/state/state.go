package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/Paintersrp/vaultnav/internal/config"
	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/content"
	"github.com/Paintersrp/vaultnav/internal/kvstore"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/note"
	"github.com/Paintersrp/vaultnav/internal/search"
	"github.com/Paintersrp/vaultnav/internal/vault"
	"github.com/Paintersrp/vaultnav/internal/vaultmeta"
)

// loadConcurrency caps the number of vaults walked at once.
const loadConcurrency = 4

type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Vault selects a vault by name or path for this session.
	Vault string
}

type State struct {
	Config   *config.Config
	Home     string
	Logger   *logging.Logger
	Store    kvstore.Store
	Meta     *vaultmeta.Store
	Vaults   []vault.Vault
	Loader   *note.Loader
	VaultRef string
}

func NewState(opts Options) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	readViperConfig(logger)

	return New(home, cfg, logger, OpenStore(cfg.Store, logger), opts.Vault), nil
}

// OpenStore opens the configured store. When it cannot be opened, for
// example because another vaultnav process holds the bolt lock, the session
// runs on an in-memory store and stored settings are not persisted.
func OpenStore(cfg config.StoreConfig, logger *logging.Logger) kvstore.Store {
	store, err := kvstore.Open(cfg.Driver, cfg.Path)
	if err != nil {
		logger.Warn("store unavailable, settings will not be saved this session",
			"driver", cfg.Driver, "path", cfg.Path, "err", err)
		return kvstore.NewMemory()
	}
	return store
}

func readViperConfig(logger *logging.Logger) {
	if err := viper.ReadInConfig(); err != nil {
		logger.Debug("failed to read config into viper", "err", err)
	}
}

// New assembles a State from already opened parts. Vaults are resolved from
// cfg.
func New(home string, cfg *config.Config, logger *logging.Logger, store kvstore.Store, ref string) *State {
	meta := vaultmeta.NewStore(store, logger)
	if err := meta.InitializeConfigVersion(context.Background()); err != nil {
		logger.Warn("failed to initialise config version", "err", err)
	}

	return &State{
		Config:   cfg,
		Home:     home,
		Logger:   logger,
		Store:    store,
		Meta:     meta,
		Vaults:   vault.Resolve(cfg.VaultPath, cfg.DiscoverVaults, logger),
		Loader:   note.NewLoader(0),
		VaultRef: ref,
	}
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig reads the config file, creating it when missing, and applies
// VAULTNAV_* environment overrides. A .env file in the working directory is
// loaded first when present.
func LoadConfig(home, override string) (*config.Config, error) {
	path := override
	if path == "" {
		path = config.GetConfigPath(home)
	}

	if err := config.EnsureConfigExists(path); err != nil {
		return nil, err
	}

	_ = godotenv.Load()

	viper.SetConfigFile(path)
	viper.SetConfigType(constants.ConfigFileType)
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg, err := config.LoadFile(home, path)
	if err != nil {
		return nil, err
	}

	cfg.SyncViper()
	cfg.ApplyViper()
	if err := cfg.Validate(); err != nil {
		return nil, &config.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// SelectVault picks the vault for this session: the one named by VaultRef,
// otherwise the active vault, otherwise the first configured one. The chosen
// vault's last access is stamped.
func (s *State) SelectVault(ctx context.Context) (vaultmeta.Enhanced, error) {
	if len(s.Vaults) == 0 {
		return vaultmeta.Enhanced{}, vault.ErrNoVaults
	}

	var selected vaultmeta.Enhanced
	if s.VaultRef != "" {
		v, ok := vault.FindByName(s.Vaults, s.VaultRef)
		if !ok {
			return vaultmeta.Enhanced{}, fmt.Errorf("vault %q is not configured", s.VaultRef)
		}
		selected = s.Meta.Enhance(ctx, v)
	} else {
		selected, _ = s.Meta.DefaultVault(ctx, s.Vaults)
	}

	if err := s.Meta.TouchLastAccessed(ctx, selected.Key); err != nil {
		s.Logger.Warn("failed to record vault access", "vault", selected.Name, "err", err)
	}
	return selected, nil
}

// LoadNotes walks v with the configured exclusions.
func (s *State) LoadNotes(v vault.Vault) ([]note.Metadata, error) {
	return note.LoadNotes(v, note.LoadOptions{
		ConfigFileName:  s.Config.ConfigFileName,
		ExcludedFolders: s.Config.Search.ExcludedFolders,
		Logger:          s.Logger,
	})
}

// VaultNotes is the result of loading one vault. Err is set when the walk
// failed; Notes is then empty.
type VaultNotes struct {
	Vault vault.Vault
	Notes []note.Metadata
	Err   error
}

// LoadEach loads every vault concurrently. Results keep the order of vaults
// and a failing vault does not stop the others.
func (s *State) LoadEach(ctx context.Context, vaults []vault.Vault) []VaultNotes {
	results := make([]VaultNotes, len(vaults))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, v := range vaults {
		g.Go(func() error {
			results[i].Vault = v
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			notes, err := s.LoadNotes(v)
			if err != nil {
				s.Logger.Warn("skipping vault that failed to load", "vault", v.Name, "err", err)
				results[i].Err = err
				return nil
			}
			results[i].Notes = notes
			return nil
		})
	}
	g.Wait()

	return results
}

// Filter returns the display pipeline for notes in v.
func (s *State) Filter(v vault.Vault) content.Filter {
	app := vault.ReadAppConfig(v, s.Config.ConfigFileName)
	return content.Filter{
		Options: content.Options{
			RemoveYAML:  s.Config.Content.RemoveYAML,
			RemoveLatex: s.Config.Content.RemoveLatex,
			RemoveLinks: s.Config.Content.RemoveLinks,
		},
		Resolver: &content.ImageResolver{
			VaultPath:        v.Path,
			AttachmentFolder: app.AttachmentFolderPath,
			MaxDepth:         s.Config.Content.ImageSearch.MaxDepth,
			MaxNodes:         s.Config.Content.ImageSearch.MaxNodes,
		},
	}
}

// SearchOptions returns the configured search strategy, reading content
// through the shared loader.
func (s *State) SearchOptions() search.Options {
	return search.Options{
		Fuzzy:     s.Config.Search.Fuzzy,
		Content:   s.Config.Search.Content,
		Threshold: s.Config.Search.FuzzyThreshold,
		Load:      s.Loader.Text,
	}
}

// LoadMedia lists media files in v with the configured exclusions.
func (s *State) LoadMedia(v vault.Vault) ([]vault.Media, error) {
	return vault.LoadMedia(v, s.Config.ConfigFileName, s.Config.Search.ExcludedFolders)
}

// Close releases the store and the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Store != nil {
		if err := s.Store.Close(); err != nil && !errors.Is(err, kvstore.ErrClosed) {
			errs = append(errs, err)
		}
		s.Store = nil
	}
	if s.Logger != nil {
		if err := s.Logger.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
