package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickdown/internal/core/model"
	"tickdown/internal/ui/preferences"
)

func TestSettingsRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	saved := preferences.Settings{
		InitialDuration: 90061 * time.Second,
		Units:           model.UnitSet{Hours: true, Minutes: true, Seconds: true},
		AutoStart:       true,
		ChimeEnabled:    false,
		ShowLabels:      true,
	}
	require.NoError(t, saveSettingsFile(configPath, saved))

	loaded, err := loadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := loadSettingsFile(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}

func TestMalformedFileReturnsDefaultsAndError(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("initial_seconds: [not a number"), 0o644))

	loaded, err := loadSettingsFile(configPath)
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), loaded)
}

func TestNonPositiveDurationKeepsDefault(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("initial_seconds: -5\nshow_seconds: true\n"), 0o644))

	loaded, err := loadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings().InitialDuration, loaded.InitialDuration)
	assert.Equal(t, model.UnitSet{Seconds: true}, loaded.Units)
}

func TestAllUnitsHiddenFallsBackToDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("initial_seconds: 30\n"), 0o644))

	loaded, err := loadSettingsFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, model.AllUnits(), loaded.Units)
	assert.Equal(t, 30*time.Second, loaded.InitialDuration)
}
