package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/kridsada-n/acctrack/pkg/types"
)

// StoreFileName is the database file created inside the storage folder.
const StoreFileName = "acctrack.db"

// Store owns the single connection to the file-backed database. All
// operations are serialized through the connection; the RWMutex guards
// the lifecycle so a Relocate waits for in-flight operations and no
// operation observes a half-swapped connection.
type Store struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// New returns an unopened Store. Call Open before any other operation.
func New() *Store {
	return &Store{}
}

// openAt creates the storage folder if needed, opens the database file
// inside it, and runs schema creation. The returned handle is verified
// with a ping so a permission or corruption problem surfaces here, not
// on the first query.
func openAt(dir string) (*sql.DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage folder %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, StoreFileName))
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", dir, err)
	}
	// One connection: the engine serializes statements, the store relies
	// on that instead of its own statement-level locking.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening store at %s: %w", dir, err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema at %s: %w", dir, err)
		}
	}
	return db, nil
}

// Open binds the store to dir, closing any previous connection first.
// A failure here is fatal to startup; the caller must not continue with
// an unopened store.
func (s *Store) Open(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		s.db.Close()
		s.db = nil
	}

	db, err := openAt(dir)
	if err != nil {
		return err
	}
	s.db = db
	s.path = dir
	return nil
}

// Relocate switches the store to dir at runtime. The new location is
// opened and its schema created before the old connection is released;
// if the new location cannot be opened the store stays bound to the old
// one and the old path is unchanged.
func (s *Store) Relocate(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrNotInitialized
	}

	db, err := openAt(dir)
	if err != nil {
		return err
	}

	s.db.Close()
	s.db = db
	s.path = dir
	return nil
}

// Close releases the connection. Idempotent; operations after Close
// fail with ErrNotInitialized.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path reports the folder the store is bound to.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// conn returns the live connection. The caller must hold s.mu.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, types.ErrNotInitialized
	}
	return s.db, nil
}

// isUniqueViolation reports whether err is the engine's UNIQUE
// constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// psql is the statement builder used for dynamically-shaped queries.
// SQLite uses question-mark placeholders, squirrel's default.
var psql = sq.StatementBuilder
