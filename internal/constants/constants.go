package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.vaultnav/`
	EnvPrefix      = `VAULTNAV`

	StoreFile = `store.db`
	LogFile   = `vaultnav.log`

	// Vault-internal folder used by Obsidian for its own settings.
	DefaultConfigFileName = `.obsidian`

	NoteExtension = `.md`

	// Keys in the persistent key-value store.
	VaultMetadataPrefix = `vault-metadata-`
	ConfigVersionKey    = `vault-config-version`
	ActiveVaultKey      = `active-vault-key`
	ConfigVersion       = `1.0`

	DefaultVaultName = `Default Vault Name (check your path preferences)`
	DefaultNoteTitle = `default`
)

// ReservedFolders are never walked, whatever the user configures.
var ReservedFolders = []string{
	".git",
	".obsidian",
	".trash",
	".excalidraw",
	".mobile",
}

var AudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".webm"}

var VideoExtensions = []string{".mp4", ".mov", ".mkv", ".avi", ".ogv"}

var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg", ".webp", ".avif"}

var DocumentExtensions = []string{".pdf"}
