package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/SafeHer/internal/geo"
	"github.com/Rorical/SafeHer/internal/storage"
)

func TestLoadWritesDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadFrom(home)
	require.NoError(t, err)
	require.Equal(t, "112", cfg.Emergency.Number)
	require.Equal(t, 3, cfg.Gesture.Taps)
	require.Equal(t, 1500*time.Millisecond, cfg.Gesture.Window)
	require.Equal(t, storage.BackendFile, cfg.Storage.Backend)
	require.Equal(t, filepath.Join(home, "data"), cfg.Storage.Dir)
	require.Equal(t, filepath.Join(home, "safeher.log"), cfg.Log.Path)
	require.Equal(t, filepath.Join(home, "config.json"), cfg.Path())

	_, err = os.Stat(cfg.Path())
	require.NoError(t, err, "default config file is created")
}

func TestLoadReadsFile(t *testing.T) {
	home := t.TempDir()
	body := `{
		"emergency": {"number": "911"},
		"gesture": {"taps": 4, "window": "2s"},
		"storage": {"backend": "sqlite", "sqlite_path": "/tmp/x.db"},
		"location": {"source": "static", "lat": 40.7128, "lng": -74.006}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"), []byte(body), 0600))

	cfg, err := LoadFrom(home)
	require.NoError(t, err)
	require.Equal(t, "911", cfg.Emergency.Number)
	require.Equal(t, 4, cfg.Gesture.Taps)
	require.Equal(t, 2*time.Second, cfg.Gesture.Window)
	require.Equal(t, "sqlite", cfg.StorageOptions().Backend)
	require.Equal(t, "/tmp/x.db", cfg.StorageOptions().SQLitePath)

	src, ok := cfg.LocationSource().(geo.StaticSource)
	require.True(t, ok)
	require.Equal(t, geo.Location{Lat: 40.7128, Lng: -74.006}, src.Location)

	require.Equal(t, "I am in danger. Please help me. My location: {map}", cfg.Alert.MessageTemplate,
		"unset keys keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SAFEHER_EMERGENCY_NUMBER", "999")

	cfg, err := LoadFrom(home)
	require.NoError(t, err)
	require.Equal(t, "999", cfg.Emergency.Number)
}

func TestLoadConfigUsesSafeherHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("SAFEHER_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "config.json"), cfg.Path())
}

func TestValidateRejectsBadValues(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"),
		[]byte(`{"gesture": {"taps": 0}}`), 0600))
	_, err := LoadFrom(home)
	require.ErrorContains(t, err, "gesture.taps")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.json"),
		[]byte(`{"location": {"source": "gps"}}`), 0600))
	_, err = LoadFrom(home)
	require.ErrorContains(t, err, `unknown location.source "gps"`)
}

func TestIPSourceIsDefault(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	_, ok := cfg.LocationSource().(*geo.IPSource)
	require.True(t, ok)
}
