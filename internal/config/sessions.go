// Package config holds the on-disk configuration this module's command-line
// demos share: a YAML session store (grounded on cli/session_persistence.go)
// and a JSON settings file (grounded on cli/settings.go), both from the
// teacher repo.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SessionFolder groups related sessions, same shape as the teacher's
// SessionFolder.
type SessionFolder struct {
	FolderName string        `yaml:"folder_name"`
	Sessions   []SessionYAML `yaml:"sessions"`
}

// SessionYAML is one saved connection. Trimmed from the teacher's
// SessionYAML: the termtel device-info compatibility fields (DeviceType,
// Model, SerialNumber, ...) have no consumer in this module and are dropped.
type SessionYAML struct {
	ID            string `yaml:"id"`
	DisplayName   string `yaml:"display_name"`
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	Username      string `yaml:"username,omitempty"`
	AuthType      string `yaml:"auth_type,omitempty"`
	KeyPath       string `yaml:"key_path,omitempty"`
	KeyPassphrase string `yaml:"key_passphrase,omitempty"`
}

// SessionStore loads and saves a sessions.yaml, same responsibility split
// as cli/session_persistence.go's SessionStore.
type SessionStore struct {
	filePath string
	folders  []SessionFolder
}

// NewSessionStore constructs an empty store bound to filePath.
func NewSessionStore(filePath string) *SessionStore {
	return &SessionStore{filePath: filePath}
}

// DefaultSessionPath returns "./sessions/sessions.yaml", the same
// app-working-directory convention as the teacher's DefaultSessionPath.
func DefaultSessionPath() string {
	return filepath.Join("sessions", "sessions.yaml")
}

// Load reads and parses the YAML file. A missing file is not an error: it
// means there is nothing saved yet, matching the teacher's Load.
func (s *SessionStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config: sessions file not found: %s (will create on save)", s.filePath)
			return nil
		}
		return fmt.Errorf("read sessions file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.folders); err != nil {
		return fmt.Errorf("parse sessions yaml: %w", err)
	}
	log.Printf("config: loaded %d folders from %s", len(s.folders), s.filePath)
	return nil
}

// Save writes the current folders back to disk, creating the parent
// directory if needed.
func (s *SessionStore) Save() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}
	data, err := yaml.Marshal(s.folders)
	if err != nil {
		return fmt.Errorf("marshal sessions: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("write sessions file: %w", err)
	}
	log.Printf("config: saved %d folders to %s", len(s.folders), s.filePath)
	return nil
}

// FindByName returns the first session in any folder whose DisplayName
// matches name.
func (s *SessionStore) FindByName(name string) (SessionYAML, bool) {
	for _, folder := range s.folders {
		for _, sess := range folder.Sessions {
			if sess.DisplayName == name {
				return sess, true
			}
		}
	}
	return SessionYAML{}, false
}

// AddSession appends session to folderName, creating the folder if it
// doesn't exist yet, and assigns it a fresh ID via google/uuid — the
// teacher derives IDs from folder+index instead (cli/session_persistence.go
// yamlToSessionInfo), which breaks once a session is removed from the
// middle of a folder; a random UUID avoids that.
func (s *SessionStore) AddSession(folderName string, session SessionYAML) SessionYAML {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	for i := range s.folders {
		if s.folders[i].FolderName == folderName {
			s.folders[i].Sessions = append(s.folders[i].Sessions, session)
			return session
		}
	}
	s.folders = append(s.folders, SessionFolder{FolderName: folderName, Sessions: []SessionYAML{session}})
	return session
}

// FilePath returns the path this store loads from and saves to.
func (s *SessionStore) FilePath() string { return s.filePath }

// PortNumber parses Port, defaulting to 22 on empty or malformed input, the
// same fallback the teacher's yamlToSessionInfo applies.
func (s SessionYAML) PortNumber() int {
	if s.Port == "" {
		return 22
	}
	if p, err := strconv.Atoi(s.Port); err == nil {
		return p
	}
	return 22
}
