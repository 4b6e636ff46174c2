package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamflowhq/teamflow/internal/persist"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendDiskv, cfg.Storage.Backend)
	assert.Equal(t, persist.DefaultKey, cfg.Storage.Key)
	assert.Equal(t, 8.0, cfg.Grid.StartHour)
	assert.Equal(t, 20.0, cfg.Grid.EndHour)
	assert.Equal(t, 15, cfg.Grid.SnapMinutes)
	assert.Equal(t, 60.0, cfg.Grid.PixelsPerHour)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: sqlite
  path: /tmp/teamflow-test.db
grid:
  start_hour: 7
  end_hour: 19
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/teamflow-test.db", cfg.Storage.Path)
	assert.Equal(t, 7.0, cfg.Grid.StartHour)
	assert.Equal(t, 19.0, cfg.Grid.EndHour)
	assert.Equal(t, 15, cfg.Grid.SnapMinutes, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: diskv\n")
	t.Setenv("TEAMFLOW_STORAGE_BACKEND", "sqlite")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "storage: [not: a map\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "storage:\n  backend: redis\n"},
		{"inverted window", "grid:\n  start_hour: 18\n  end_hour: 9\n"},
		{"window past midnight", "grid:\n  end_hour: 25\n"},
		{"snap does not divide the hour", "grid:\n  snap_minutes: 7\n"},
		{"zero snap", "grid:\n  snap_minutes: 0\n"},
		{"negative pixels", "grid:\n  pixels_per_hour: -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestGeometry(t *testing.T) {
	cfg, err := Load(writeConfig(t, "grid:\n  start_hour: 9\n  snap_minutes: 30\n"))
	require.NoError(t, err)

	geo := cfg.Geometry()
	assert.Equal(t, 9.0, geo.StartHour)
	assert.Equal(t, 30, geo.SnapMinutes)
	assert.Equal(t, 0.5, geo.SnapHours())
}

func TestOpenSlot(t *testing.T) {
	t.Run("diskv", func(t *testing.T) {
		cfg := defaults()
		cfg.Storage.Path = t.TempDir()

		slot, err := cfg.OpenSlot()
		require.NoError(t, err)
		defer slot.Close()
		assert.IsType(t, &persist.DiskvSlot{}, slot)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := defaults()
		cfg.Storage.Backend = BackendSQLite
		cfg.Storage.Path = filepath.Join(t.TempDir(), "slots.db")

		slot, err := cfg.OpenSlot()
		require.NoError(t, err)
		defer slot.Close()
		assert.IsType(t, &persist.SQLiteSlot{}, slot)
	})
}
