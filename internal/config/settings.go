package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppSettings holds the connection and logging defaults shared by this
// module's command-line demos. Trimmed from the teacher's AppSettings: the
// fyne-specific appearance/theme/window fields belong to cmd/fyneterm's own
// concerns, not a shared settings file, and were dropped.
type AppSettings struct {
	DefaultKeyPath    string `json:"default_key_path"`
	DefaultPort       int    `json:"default_port"`
	DefaultUsername   string `json:"default_username"`
	ConnectionTimeout int    `json:"connection_timeout_seconds"`
	KeepaliveInterval int    `json:"keepalive_interval_seconds"`
	EnableLogging     bool   `json:"enable_logging"`
	LogDirectory      string `json:"log_directory"`
}

// DefaultSettings mirrors cli/settings.go's DefaultSettings defaults for
// the fields this module kept.
func DefaultSettings() *AppSettings {
	home, _ := os.UserHomeDir()
	return &AppSettings{
		DefaultKeyPath:    filepath.Join(home, ".ssh", "id_rsa"),
		DefaultPort:       22,
		ConnectionTimeout: 30,
		KeepaliveInterval: 60,
		EnableLogging:     false,
		LogDirectory:      "./logs",
	}
}

// DefaultSettingsPath returns "./settings.json", the same working-directory
// convention the teacher uses for its settings file.
func DefaultSettingsPath() string {
	return "settings.json"
}

// LoadSettings reads settings.json, falling back to DefaultSettings when
// the file does not exist yet.
func LoadSettings(path string) (*AppSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings json: %w", err)
	}
	return settings, nil
}

// Save writes settings to path as indented JSON.
func (a *AppSettings) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil && filepath.Dir(path) != "." {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
