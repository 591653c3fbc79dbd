package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// backupTimeFormat names backup files down to the second, which is
// enough for interval-driven backups.
const backupTimeFormat = "20060102-150405"

// Backup snapshots the live database into destDir using VACUUM INTO and
// returns the snapshot path. The snapshot is a complete, compacted copy
// taken through the engine, so it is consistent even against an open
// connection.
func (s *Store) Backup(destDir string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup folder: %w", err)
	}

	name := fmt.Sprintf("acctrack-backup-%s.db", time.Now().Format(backupTimeFormat))
	dest := filepath.Join(destDir, name)

	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		return "", fmt.Errorf("backing up to %s: %w", dest, err)
	}
	return dest, nil
}
