package tilekit

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects where sprite assets come from.
type Mode string

const (
	// ModeDebug loads sprites from Config.AssetDir on disk and enables
	// hot-reload.
	ModeDebug Mode = "debug"
	// ModeRelease loads sprites from an embedded filesystem; hot-reload is
	// off.
	ModeRelease Mode = "release"
)

// ParseMode accepts the two recognized mode names.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDebug, ModeRelease:
		return Mode(s), nil
	}
	return "", fmt.Errorf("tilekit: unknown mode %q (want %q or %q)", s, ModeDebug, ModeRelease)
}

// UnmarshalYAML rejects unknown modes at parse time.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// HotReload reports whether the mode watches assets for changes.
func (m Mode) HotReload() bool {
	return m == ModeDebug
}

// ConfigEnv names the environment variable LoadConfig falls back to when
// called with an empty path.
const ConfigEnv = "TILEKIT_CONFIG"

// Default configuration values.
const (
	DefaultAssetDir   = "data"
	DefaultTileWidth  = 40
	DefaultTileHeight = 40
)

// Config is the asset layer configuration.
type Config struct {
	Mode         Mode        `yaml:"mode"`
	AssetDir     string      `yaml:"asset_dir"`
	TileWidth    int         `yaml:"tile_width"`
	TileHeight   int         `yaml:"tile_height"`
	DialogBorder float64     `yaml:"dialog_border"`
	Sprites      SpriteTable `yaml:"sprites"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Mode:         DefaultMode,
		AssetDir:     DefaultAssetDir,
		TileWidth:    DefaultTileWidth,
		TileHeight:   DefaultTileHeight,
		DialogBorder: DefaultDialogBorder,
	}
}

// LoadConfig reads a YAML configuration file. An empty path falls back to
// $TILEKIT_CONFIG, and to DefaultConfig when that is unset too. Fields the
// file leaves out keep their default values.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return DefaultConfig(), nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tilekit: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("tilekit: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the tile size, border fraction and sprite table.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("tilekit: tile size %dx%d must be positive", c.TileWidth, c.TileHeight)
	}
	if c.DialogBorder < 0 || c.DialogBorder >= 0.5 {
		return fmt.Errorf("tilekit: dialog_border %v out of range [0, 0.5)", c.DialogBorder)
	}
	return c.SpriteTable().Validate()
}

// SpriteTable returns the configured sprites, or DefaultSprites when the
// configuration declares none.
func (c Config) SpriteTable() SpriteTable {
	if len(c.Sprites) == 0 {
		return DefaultSprites
	}
	return c.Sprites
}

// OpenAssets returns the filesystem sprites are read from: the asset
// directory in debug mode, embedded in release mode. embedded must hold the
// PNG files at its root; use fs.Sub on an embed.FS that stores them in a
// subdirectory.
func OpenAssets(c Config, embedded fs.FS) (fs.FS, error) {
	switch c.Mode {
	case ModeDebug:
		return os.DirFS(c.AssetDir), nil
	case ModeRelease:
		if embedded == nil {
			return nil, fmt.Errorf("tilekit: release mode needs an embedded asset filesystem")
		}
		return embedded, nil
	}
	return nil, fmt.Errorf("tilekit: unknown mode %q", c.Mode)
}

// NewRegistryFromConfig builds a registry for c's sprite table, tile size and
// dialog border, reading assets as OpenAssets decides. Sprites are not loaded
// yet.
func NewRegistryFromConfig(c Config, embedded fs.FS) (*Registry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	fsys, err := OpenAssets(c, embedded)
	if err != nil {
		return nil, err
	}
	r, err := NewRegistry(c.SpriteTable(), fsys, c.TileWidth, c.TileHeight)
	if err != nil {
		return nil, err
	}
	r.DialogBorder = c.DialogBorder
	return r, nil
}
