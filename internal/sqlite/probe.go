package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// ProbeResult reports whether a folder already holds a record store.
type ProbeResult struct {
	HasData    bool
	TableCount int
}

// ProbeFolder checks whether dir contains a store file and, if so, how
// many user tables it declares. The probe uses its own short-lived
// read-only connection, separate from any live store, and never
// mutates the probed file. A folder without a store file probes clean.
func ProbeFolder(dir string) (ProbeResult, error) {
	dbPath := filepath.Join(dir, StoreFileName)
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return ProbeResult{}, nil
		}
		return ProbeResult{}, fmt.Errorf("probing %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return ProbeResult{}, fmt.Errorf("probing %s: %w", dir, err)
	}
	defer db.Close()

	var count int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`).Scan(&count)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("probing %s: %w", dir, err)
	}

	return ProbeResult{HasData: count > 0, TableCount: count}, nil
}
