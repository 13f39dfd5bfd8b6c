package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings().DefaultPort, settings.DefaultPort)
	assert.Equal(t, 30, settings.ConnectionTimeout)
}

func TestSaveThenLoadSettingsRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	settings := DefaultSettings()
	settings.DefaultUsername = "admin"
	settings.EnableLogging = true

	require.NoError(t, settings.Save(path))

	reloaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "admin", reloaded.DefaultUsername)
	assert.True(t, reloaded.EnableLogging)
}

func TestDefaultSettingsPathIsAppRelative(t *testing.T) {
	assert.Equal(t, "settings.json", DefaultSettingsPath())
}
