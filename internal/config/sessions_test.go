package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, store.Load())
	_, ok := store.FindByName("anything")
	assert.False(t, ok)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.yaml")
	store := NewSessionStore(path)

	saved := store.AddSession("lab", SessionYAML{
		DisplayName: "router1",
		Host:        "10.0.0.1",
		Port:        "22",
		Username:    "admin",
	})
	assert.NotEmpty(t, saved.ID)
	require.NoError(t, store.Save())

	reloaded := NewSessionStore(path)
	require.NoError(t, reloaded.Load())

	sess, ok := reloaded.FindByName("router1")
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", sess.Host)
	assert.Equal(t, saved.ID, sess.ID)
	assert.Equal(t, 22, sess.PortNumber())
}

func TestPortNumberDefaultsTo22(t *testing.T) {
	assert.Equal(t, 22, SessionYAML{}.PortNumber())
	assert.Equal(t, 22, SessionYAML{Port: "not-a-number"}.PortNumber())
	assert.Equal(t, 2222, SessionYAML{Port: "2222"}.PortNumber())
}

func TestAddSessionReusesExistingFolder(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "sessions.yaml"))
	store.AddSession("lab", SessionYAML{DisplayName: "a"})
	store.AddSession("lab", SessionYAML{DisplayName: "b"})
	assert.Len(t, store.folders, 1)
	assert.Len(t, store.folders[0].Sessions, 2)
}

func TestDefaultSessionPathIsAppRelative(t *testing.T) {
	assert.Equal(t, filepath.Join("sessions", "sessions.yaml"), DefaultSessionPath())
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "sessions.yaml")
	store := NewSessionStore(path)
	store.AddSession("lab", SessionYAML{DisplayName: "a"})
	require.NoError(t, store.Save())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
