// Package settings persists user preferences as JSON documents in the
// application config folder, separate from the record store so that
// preferences survive a storage relocation.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kridsada-n/acctrack/internal/docstore"
	"github.com/kridsada-n/acctrack/pkg/types"
)

const (
	storageFile = "storage-settings.json"
	recentFile  = "recent-folders.json"
)

// Manager reads and writes the settings documents under one config
// folder. All writes go through the atomic temp-and-rename path so a
// crash never corrupts a settings file.
type Manager struct {
	mu  sync.Mutex
	dir string
}

// NewManager returns a Manager rooted at dir, creating it if needed.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating config folder %s: %w", dir, err)
	}
	return &Manager{dir: dir}, nil
}

// Dir reports the config folder the manager writes into.
func (m *Manager) Dir() string {
	return m.dir
}

// StorageSettings loads the storage settings document. A missing file
// returns nil, which callers treat as first run.
func (m *Manager) StorageSettings() (*types.StorageSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(m.dir, storageFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading storage settings: %w", err)
	}

	var s types.StorageSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("storage settings: %w", types.ErrDataCorruption)
	}
	return &s, nil
}

// SaveStorageSettings validates and overwrites the storage settings
// document wholesale.
func (m *Manager) SaveStorageSettings(s *types.StorageSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling storage settings: %w", err)
	}
	return docstore.WriteFileAtomic(filepath.Join(m.dir, storageFile), data)
}

// RecentFolders loads the recent-folders list, most recent first. A
// missing file is an empty list.
func (m *Manager) RecentFolders() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readRecent()
}

// AddRecentFolder moves folder to the front of the list, dropping any
// earlier occurrence and trimming the tail past the limit.
func (m *Manager) AddRecentFolder(folder string) error {
	if folder == "" {
		return types.ErrInvalidArgument
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	folders, err := m.readRecent()
	if err != nil {
		return err
	}

	updated := []string{folder}
	for _, f := range folders {
		if f == folder {
			continue
		}
		updated = append(updated, f)
	}
	if len(updated) > types.RecentFoldersLimit {
		updated = updated[:types.RecentFoldersLimit]
	}

	data, err := json.MarshalIndent(updated, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling recent folders: %w", err)
	}
	return docstore.WriteFileAtomic(filepath.Join(m.dir, recentFile), data)
}

// readRecent expects the caller to hold the lock.
func (m *Manager) readRecent() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(m.dir, recentFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading recent folders: %w", err)
	}

	folders := []string{}
	if err := json.Unmarshal(data, &folders); err != nil {
		return nil, fmt.Errorf("recent folders: %w", types.ErrDataCorruption)
	}
	return folders, nil
}

// PreferredLocation resolves the storage folder to bind at startup. A
// saved databasePath wins; otherwise defaultDir applies. firstRun is
// true when no storage settings document exists yet.
func (m *Manager) PreferredLocation(defaultDir string) (dir string, firstRun bool, err error) {
	s, err := m.StorageSettings()
	if err != nil {
		return "", false, err
	}
	if s == nil {
		return defaultDir, true, nil
	}
	if s.DatabasePath != "" {
		return s.DatabasePath, false, nil
	}
	return defaultDir, false, nil
}
