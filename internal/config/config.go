// Package config loads planner settings from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teamflowhq/teamflow/internal/grid"
	"github.com/teamflowhq/teamflow/internal/persist"
)

// Storage backends.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// StorageConfig selects and locates the snapshot slot backend.
type StorageConfig struct {
	// Backend is "diskv" or "sqlite".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Path is the diskv base directory or the sqlite database file.
	// Empty uses the per-backend default under ~/.teamflow.
	Path string `mapstructure:"path" yaml:"path"`

	// Key is the slot key the snapshot is stored under.
	Key string `mapstructure:"key" yaml:"key"`
}

// GridConfig holds the time-grid geometry.
type GridConfig struct {
	StartHour     float64 `mapstructure:"start_hour" yaml:"start_hour"`
	EndHour       float64 `mapstructure:"end_hour" yaml:"end_hour"`
	SnapMinutes   int     `mapstructure:"snap_minutes" yaml:"snap_minutes"`
	PixelsPerHour float64 `mapstructure:"pixels_per_hour" yaml:"pixels_per_hour"`
}

// Config is the top-level application configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Grid    GridConfig    `mapstructure:"grid" yaml:"grid"`
}

// Geometry converts the grid section into the geometry value used by
// the planner core.
func (c *Config) Geometry() grid.Geometry {
	return grid.Geometry{
		StartHour:     c.Grid.StartHour,
		EndHour:       c.Grid.EndHour,
		PixelsPerHour: c.Grid.PixelsPerHour,
		SnapMinutes:   c.Grid.SnapMinutes,
	}
}

// DefaultPath returns ~/.config/teamflow/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "teamflow", "config.yaml")
}

func defaults() *Config {
	geo := grid.Default()
	return &Config{
		Storage: StorageConfig{
			Backend: BackendDiskv,
			Key:     persist.DefaultKey,
		},
		Grid: GridConfig{
			StartHour:     geo.StartHour,
			EndHour:       geo.EndHour,
			SnapMinutes:   geo.SnapMinutes,
			PixelsPerHour: geo.PixelsPerHour,
		},
	}
}

// Load reads configuration from the given YAML file. A missing file
// yields defaults. TEAMFLOW_-prefixed environment variables override
// file values (e.g. TEAMFLOW_STORAGE_BACKEND=sqlite).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("TEAMFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := defaults()
	v.SetDefault("storage.backend", def.Storage.Backend)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.key", def.Storage.Key)
	v.SetDefault("grid.start_hour", def.Grid.StartHour)
	v.SetDefault("grid.end_hour", def.Grid.EndHour)
	v.SetDefault("grid.snap_minutes", def.Grid.SnapMinutes)
	v.SetDefault("grid.pixels_per_hour", def.Grid.PixelsPerHour)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults apply.
		_, pathErr := err.(*os.PathError)
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !pathErr && !notFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendDiskv, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend %q: want %s or %s", c.Storage.Backend, BackendDiskv, BackendSQLite)
	}
	if c.Grid.StartHour < 0 || c.Grid.EndHour > 24 || c.Grid.StartHour >= c.Grid.EndHour {
		return fmt.Errorf("grid window [%v,%v): want 0 <= start < end <= 24", c.Grid.StartHour, c.Grid.EndHour)
	}
	if c.Grid.SnapMinutes <= 0 || 60%c.Grid.SnapMinutes != 0 {
		return fmt.Errorf("grid.snap_minutes %d: must divide 60", c.Grid.SnapMinutes)
	}
	if c.Grid.PixelsPerHour <= 0 {
		return fmt.Errorf("grid.pixels_per_hour %v: must be positive", c.Grid.PixelsPerHour)
	}
	return nil
}

// OpenSlot opens the configured storage backend.
func (c *Config) OpenSlot() (persist.Slot, error) {
	switch c.Storage.Backend {
	case BackendSQLite:
		path := c.Storage.Path
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("finding home directory: %w", err)
			}
			path = filepath.Join(home, ".teamflow", "teamflow.db")
		}
		return persist.OpenSQLite(path)
	default:
		path := c.Storage.Path
		if path == "" {
			var err error
			path, err = persist.DefaultBasePath()
			if err != nil {
				return nil, err
			}
		}
		return persist.OpenDiskv(path)
	}
}
