// Package vaultmeta persists per-vault presentation metadata (display name,
// favourite flag, last access) and the active vault selection.
package vaultmeta

import (
	"context"
	"encoding/json"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Paintersrp/vaultnav/internal/constants"
	"github.com/Paintersrp/vaultnav/internal/kvstore"
	"github.com/Paintersrp/vaultnav/internal/logging"
	"github.com/Paintersrp/vaultnav/internal/order"
	"github.com/Paintersrp/vaultnav/internal/vault"
)

// Metadata is the stored record for one vault. Key is the vault key.
type Metadata struct {
	Key          string    `json:"key"`
	DisplayName  string    `json:"displayName,omitempty"`
	Abbreviation string    `json:"abbreviation,omitempty"`
	Emoji        string    `json:"emoji,omitempty"`
	Color        string    `json:"color,omitempty"`
	IsFavorite   bool      `json:"isFavorite"`
	LastAccessed time.Time `json:"lastAccessed"`
	HotkeyIndex  int       `json:"hotkeyIndex,omitempty"`
}

// Enhanced pairs a vault with its metadata.
type Enhanced struct {
	vault.Vault
	Metadata Metadata `json:"metadata"`
}

// Store reads and writes metadata records through a kvstore.Store. Writes
// are read-modify-write without locking; the last writer wins.
type Store struct {
	kv     kvstore.Store
	logger *logging.Logger

	// Now is the clock used for access timestamps.
	Now func() time.Time
}

func NewStore(kv kvstore.Store, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{kv: kv, logger: logger, Now: time.Now}
}

func metadataKey(vaultKey string) string {
	return constants.VaultMetadataPrefix + vaultKey
}

// Default is the record used for a vault with nothing stored.
func Default(vaultKey string) Metadata {
	return Metadata{Key: vaultKey, LastAccessed: time.Unix(0, 0).UTC()}
}

// Load returns the stored record for v, or Default when there is none or it
// cannot be read.
func (s *Store) Load(ctx context.Context, v vault.Vault) Metadata {
	m, ok, err := s.get(ctx, v.Key)
	if err != nil {
		s.logger.Warn("failed to load vault metadata", "vault", v.Name, "err", err)
		return Default(v.Key)
	}
	if !ok {
		return Default(v.Key)
	}
	return m
}

func (s *Store) get(ctx context.Context, vaultKey string) (Metadata, bool, error) {
	raw, ok, err := s.kv.Get(ctx, metadataKey(vaultKey))
	if err != nil || !ok {
		return Metadata{}, false, err
	}

	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return Metadata{}, false, err
	}
	if m.Key == "" {
		m.Key = vaultKey
	}
	return m, true, nil
}

var colorPattern = regexp.MustCompile(`^(#[0-9A-Fa-f]{6}|[A-Za-z]+)$`)

func (m Metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Key, validation.Required),
		validation.Field(&m.Abbreviation, validation.RuneLength(0, 3)),
		validation.Field(&m.Color, validation.Match(colorPattern)),
		validation.Field(&m.HotkeyIndex, validation.Min(0), validation.Max(5)),
	)
}

// Save validates m and writes it under its key.
func (s *Store) Save(ctx context.Context, m Metadata) error {
	if err := m.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, metadataKey(m.Key), string(data))
}

// update applies fn to the stored record, or to a fresh record stamped with
// the current time when none can be read.
func (s *Store) update(ctx context.Context, vaultKey string, fn func(*Metadata)) (Metadata, error) {
	m, ok, err := s.get(ctx, vaultKey)
	if err != nil {
		s.logger.Warn("replacing unreadable vault metadata", "key", vaultKey, "err", err)
	}
	if !ok {
		m = Metadata{Key: vaultKey, LastAccessed: s.Now()}
	}

	fn(&m)
	return m, s.Save(ctx, m)
}

// ToggleFavorite flips the favourite flag and returns the new value.
func (s *Store) ToggleFavorite(ctx context.Context, vaultKey string) (bool, error) {
	m, err := s.update(ctx, vaultKey, func(m *Metadata) {
		m.IsFavorite = !m.IsFavorite
	})
	return m.IsFavorite, err
}

// TouchLastAccessed stamps the vault as accessed now.
func (s *Store) TouchLastAccessed(ctx context.Context, vaultKey string) error {
	_, err := s.update(ctx, vaultKey, func(m *Metadata) {
		m.LastAccessed = s.Now()
	})
	return err
}

func (s *Store) Delete(ctx context.Context, vaultKey string) error {
	return s.kv.Delete(ctx, metadataKey(vaultKey))
}

// StoredKeys lists the vault keys that have a stored record.
func (s *Store) StoredKeys(ctx context.Context) ([]string, error) {
	keys, err := s.kv.Keys(ctx, constants.VaultMetadataPrefix)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, constants.VaultMetadataPrefix)
	}
	return keys, nil
}

// InitializeConfigVersion records the schema version unless one is present.
func (s *Store) InitializeConfigVersion(ctx context.Context) error {
	_, ok, err := s.kv.Get(ctx, constants.ConfigVersionKey)
	if err != nil || ok {
		return err
	}
	return s.kv.Set(ctx, constants.ConfigVersionKey, constants.ConfigVersion)
}

func (s *Store) Enhance(ctx context.Context, v vault.Vault) Enhanced {
	return Enhanced{Vault: v, Metadata: s.Load(ctx, v)}
}

func (s *Store) EnhanceAll(ctx context.Context, vaults []vault.Vault) []Enhanced {
	out := make([]Enhanced, len(vaults))
	for i, v := range vaults {
		out[i] = s.Enhance(ctx, v)
	}
	return out
}

// Favorites returns the favourite vaults in input order.
func (s *Store) Favorites(ctx context.Context, vaults []vault.Vault) []Enhanced {
	var out []Enhanced
	for _, e := range s.EnhanceAll(ctx, vaults) {
		if e.Metadata.IsFavorite {
			out = append(out, e)
		}
	}
	return out
}

// AssignHotkeys numbers the first five favourites, in Sort order, 1 to 5,
// and clears the index of every other vault. Records whose index changes are
// saved and updated in vaults.
func (s *Store) AssignHotkeys(ctx context.Context, vaults []Enhanced) error {
	want := make(map[string]int)
	var favorites []Enhanced
	for _, e := range vaults {
		if e.Metadata.IsFavorite {
			favorites = append(favorites, e)
		}
	}
	for i, e := range Sort(favorites) {
		if i == 5 {
			break
		}
		want[e.Key] = i + 1
	}

	for j := range vaults {
		index := want[vaults[j].Key]
		if vaults[j].Metadata.HotkeyIndex == index {
			continue
		}
		vaults[j].Metadata.HotkeyIndex = index
		if err := s.Save(ctx, vaults[j].Metadata); err != nil {
			return err
		}
	}
	return nil
}

// baseName is the display name without the emoji prefix.
func (e Enhanced) baseName() string {
	if e.Metadata.DisplayName != "" {
		return e.Metadata.DisplayName
	}
	return e.Name
}

// DisplayName is the custom or folder name, prefixed by the emoji if set.
func (e Enhanced) DisplayName() string {
	if e.Metadata.Emoji != "" {
		return e.Metadata.Emoji + " " + e.baseName()
	}
	return e.baseName()
}

// Abbreviation is the explicit abbreviation, or the upper-cased initials of
// the display name capped at three letters.
func (e Enhanced) Abbreviation() string {
	if e.Metadata.Abbreviation != "" {
		return e.Metadata.Abbreviation
	}

	words := strings.Fields(e.baseName())
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		r, _ := utf8.DecodeRuneInString(words[0])
		return string(unicode.ToUpper(r))
	}

	var b strings.Builder
	for i, w := range words {
		if i == 3 {
			break
		}
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Sort returns a copy ordered favourites first, then most recently accessed,
// then alphabetically by display name.
func Sort(vaults []Enhanced) []Enhanced {
	out := append([]Enhanced(nil), vaults...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Metadata, out[j].Metadata
		if a.IsFavorite != b.IsFavorite {
			return a.IsFavorite
		}
		if !a.LastAccessed.Equal(b.LastAccessed) {
			return a.LastAccessed.After(b.LastAccessed)
		}
		return order.Less(out[i].baseName(), out[j].baseName())
	})
	return out
}

// Indicator renders the vault badge for list rows in the given style.
func Indicator(e Enhanced, style string) string {
	switch style {
	case "abbreviation":
		return "[" + e.Abbreviation() + "]"
	case "emoji":
		if e.Metadata.Emoji != "" {
			return e.Metadata.Emoji
		}
		return "[" + e.Abbreviation() + "]"
	case "full":
		return e.DisplayName()
	default:
		return ""
	}
}
