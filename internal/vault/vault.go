// Package vault resolves vault locations and enumerates the files inside
// them.
package vault

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/logging"
)

var ErrNoVaults = errors.New("no vaults configured")

// Vault is a directory tree treated as one collection of notes. Key is the
// path as configured and identifies the vault in persisted metadata.
type Vault struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Path string `json:"path"`
}

// SplitVaultPaths splits raw on commas that sit outside quoted segments.
// Single and double quotes may be mixed; a segment opened by one kind is only
// closed by the same kind.
func SplitVaultPaths(raw string) []string {
	var (
		parts   []string
		current strings.Builder
		quote   rune
	)

	for _, r := range raw {
		switch {
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
			current.WriteRune(r)
		case quote != 0 && r == quote:
			quote = 0
			current.WriteRune(r)
		case quote == 0 && r == ',':
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(parts, current.String())
}

// CleanVaultPath trims whitespace and one pair of surrounding quotes.
func CleanVaultPath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, `"`)
	p = strings.TrimPrefix(p, `'`)
	p = strings.TrimSuffix(p, `"`)
	p = strings.TrimSuffix(p, `'`)
	return strings.TrimSpace(p)
}

// NameFromPath returns the last element of p, or a placeholder when p has
// none.
func NameFromPath(p string) string {
	name := filepath.Base(strings.TrimRight(p, `/\`))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return constants.DefaultVaultName
	}
	return name
}

func New(p string) Vault {
	return Vault{Name: NameFromPath(p), Key: p, Path: p}
}

// ParseVaults turns the configured vault string into vaults, in input order.
// Empty segments and paths that do not exist are dropped and logged.
// Duplicates are kept.
func ParseVaults(raw string, logger *logging.Logger) []Vault {
	if logger == nil {
		logger = logging.Discard()
	}

	var vaults []Vault
	for _, segment := range SplitVaultPaths(raw) {
		p := CleanVaultPath(segment)
		if p == "" {
			continue
		}

		if _, err := os.Stat(p); err != nil {
			logger.Info("skipping vault path", "path", p, "err", err)
			continue
		}

		vaults = append(vaults, New(p))
	}

	return vaults
}

// FindByName looks up ref first by key or path, then by name ignoring case.
func FindByName(vaults []Vault, ref string) (Vault, bool) {
	ref = CleanVaultPath(ref)
	for _, v := range vaults {
		if v.Key == ref || v.Path == ref {
			return v, true
		}
	}
	for _, v := range vaults {
		if strings.EqualFold(v.Name, ref) {
			return v, true
		}
	}
	return Vault{}, false
}

// Exists reports whether the vault's root directory is still present.
func (v Vault) Exists() bool {
	info, err := os.Stat(v.Path)
	return err == nil && info.IsDir()
}

// Resolve returns the configured vaults, falling back to the host
// application's vault list when nothing is configured and discovery is on.
func Resolve(raw string, discover bool, logger *logging.Logger) []Vault {
	if strings.TrimSpace(raw) != "" {
		return ParseVaults(raw, logger)
	}
	if !discover {
		return nil
	}
	return DiscoverVaults(logger)
}
