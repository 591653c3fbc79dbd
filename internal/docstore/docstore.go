// Package docstore implements the Store interface over flat JSON
// documents, one file per entity collection. It is the legacy fallback
// used when no relational store is available; the resolver selects it
// once at startup and never mixes it with the SQLite store.
package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kridsada-n/acctrack/pkg/types"
)

// Collection file names inside the storage folder.
const (
	businessFile  = "business_data.json"
	contactFile   = "contact_data.json"
	productsFile  = "products.json"
	quotationFile = "quotations.json"
	invoiceFile   = "invoices.json"
	purchaseFile  = "purchase_orders.json"
)

// docFiles maps a document kind to its collection file.
var docFiles = map[string]string{
	types.DocKindQuotation:     quotationFile,
	types.DocKindInvoice:       invoiceFile,
	types.DocKindPurchaseOrder: purchaseFile,
}

// Store keeps every collection as one JSON document rewritten wholesale
// on change. Read-modify-write under one mutex is acceptable here: the
// fallback serves a single desktop session with no concurrent writers.
type Store struct {
	mu   sync.RWMutex
	path string
	open bool
}

// New returns an unopened Store.
func New() *Store {
	return &Store{}
}

// Open binds the store to dir, creating the folder if needed.
func (s *Store) Open(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating storage folder %s: %w", dir, err)
	}
	s.path = dir
	s.open = true
	return nil
}

// Relocate switches the store to dir. The new folder is prepared before
// the old binding is dropped; existing documents are not copied over.
func (s *Store) Relocate(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrNotInitialized
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating storage folder %s: %w", dir, err)
	}
	s.path = dir
	return nil
}

// Close drops the binding. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	return nil
}

// Path reports the folder the store is bound to.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// now returns engine-style timestamps for parity with the SQLite store.
func now() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}

// SaveBusinessProfile overwrites the singleton business document.
func (s *Store) SaveBusinessProfile(p *types.BusinessProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrNotInitialized
	}

	stored := *p
	stored.ID = types.SingletonID
	stored.UpdatedAt = now()
	if stored.CreatedAt == "" {
		stored.CreatedAt = stored.UpdatedAt
	}
	return writeDoc(filepath.Join(s.path, businessFile), &stored)
}

// BusinessProfile reads the singleton business document, nil when absent.
func (s *Store) BusinessProfile() (*types.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrNotInitialized
	}

	var p types.BusinessProfile
	ok, err := readDoc(filepath.Join(s.path, businessFile), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// SaveContactAddress overwrites the singleton contact document.
func (s *Store) SaveContactAddress(a *types.ContactAddress) error {
	if err := a.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrNotInitialized
	}

	stored := *a
	stored.ID = types.SingletonID
	stored.UpdatedAt = now()
	if stored.CreatedAt == "" {
		stored.CreatedAt = stored.UpdatedAt
	}
	return writeDoc(filepath.Join(s.path, contactFile), &stored)
}

// ContactAddress reads the singleton contact document, nil when absent.
func (s *Store) ContactAddress() (*types.ContactAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrNotInitialized
	}

	var a types.ContactAddress
	ok, err := readDoc(filepath.Join(s.path, contactFile), &a)
	if err != nil || !ok {
		return nil, err
	}
	return &a, nil
}

// InsertProduct appends a product under a generated id.
func (s *Store) InsertProduct(p *types.Product) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return "", types.ErrNotInitialized
	}

	var products []*types.Product
	if _, err := readDoc(filepath.Join(s.path, productsFile), &products); err != nil {
		return "", err
	}

	stored := *p
	stored.ID = uuid.NewString()
	stored.CreatedAt = now()
	stored.UpdatedAt = stored.CreatedAt
	// Newest first, matching the SQLite listing order.
	products = append([]*types.Product{&stored}, products...)

	if err := writeDoc(filepath.Join(s.path, productsFile), products); err != nil {
		return "", err
	}
	return stored.ID, nil
}

// Products lists all products, newest first.
func (s *Store) Products() ([]*types.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrNotInitialized
	}

	products := []*types.Product{}
	if _, err := readDoc(filepath.Join(s.path, productsFile), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// UpdateProduct applies a partial update in place. Zero affected rows
// is reported, not an error.
func (s *Store) UpdateProduct(id string, patch types.ProductPatch) (int64, error) {
	if id == "" || patch.Empty() {
		return 0, types.ErrInvalidArgument
	}
	if patch.UnitPrice != nil && *patch.UnitPrice < 0 {
		return 0, types.ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return 0, types.ErrNotInitialized
	}

	var products []*types.Product
	if _, err := readDoc(filepath.Join(s.path, productsFile), &products); err != nil {
		return 0, err
	}

	var affected int64
	for _, p := range products {
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.UnitPrice != nil {
			p.UnitPrice = *patch.UnitPrice
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.MinStock != nil {
			p.MinStock = *patch.MinStock
		}
		p.UpdatedAt = now()
		affected = 1
		break
	}
	if affected == 0 {
		return 0, nil
	}

	if err := writeDoc(filepath.Join(s.path, productsFile), products); err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteProduct removes a product; unknown ids are not an error.
func (s *Store) DeleteProduct(id string) error {
	if id == "" {
		return types.ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return types.ErrNotInitialized
	}

	var products []*types.Product
	if _, err := readDoc(filepath.Join(s.path, productsFile), &products); err != nil {
		return err
	}

	kept := products[:0]
	removed := false
	for _, p := range products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}
	return writeDoc(filepath.Join(s.path, productsFile), kept)
}

// InsertDocument appends a document, enforcing number uniqueness within
// its kind.
func (s *Store) InsertDocument(d *types.Document) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return "", types.ErrNotInitialized
	}

	file := filepath.Join(s.path, docFiles[d.Kind])
	var docs []*types.Document
	if _, err := readDoc(file, &docs); err != nil {
		return "", err
	}
	for _, existing := range docs {
		if existing.Number == d.Number {
			return "", fmt.Errorf("document number %q: %w", d.Number, types.ErrConstraintViolation)
		}
	}

	stored := *d
	stored.ID = uuid.NewString()
	stored.CreatedAt = now()
	stored.UpdatedAt = stored.CreatedAt
	if stored.Items == nil {
		stored.Items = []types.LineItem{}
	}
	docs = append([]*types.Document{&stored}, docs...)

	if err := writeDoc(file, docs); err != nil {
		return "", err
	}
	return stored.ID, nil
}

// Documents lists all documents of one kind, newest first.
func (s *Store) Documents(kind string) ([]*types.Document, error) {
	file, ok := docFiles[kind]
	if !ok {
		return nil, types.ErrUnknownDocumentKind
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.open {
		return nil, types.ErrNotInitialized
	}

	docs := []*types.Document{}
	if _, err := readDoc(filepath.Join(s.path, file), &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		d.Kind = kind
	}
	return docs, nil
}

// readDoc loads a JSON document into dst. A missing file is not an
// error; an unparseable file is data corruption.
func readDoc(path string, dst any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("%s: %w", filepath.Base(path), types.ErrDataCorruption)
	}
	return true, nil
}

// writeDoc writes a JSON document with the temp-file, sync, rename
// pattern so a crash never leaves a half-written collection.
func writeDoc(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	return WriteFileAtomic(path, data)
}

// WriteFileAtomic writes data to path via a temp file in the same
// directory, fsync, then rename.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".doc-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}

// keyedIDOK rejects identifiers that would resolve outside the storage
// folder. Keys are plain names, never paths.
func keyedIDOK(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\`)
}

// WriteKeyed stores a raw JSON payload under an external identifier,
// the legacy per-key file contract (<id>.json in the storage folder).
func WriteKeyed(dir, id string, payload json.RawMessage) error {
	if !keyedIDOK(id) || !json.Valid(payload) {
		return types.ErrInvalidArgument
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating storage folder %s: %w", dir, err)
	}
	return WriteFileAtomic(filepath.Join(dir, id+".json"), payload)
}

// ReadKeyed loads a raw JSON payload by external identifier. A missing
// key yields an empty object, matching the legacy contract.
func ReadKeyed(dir, id string) (json.RawMessage, error) {
	if !keyedIDOK(id) {
		return nil, types.ErrInvalidArgument
	}
	data, err := os.ReadFile(filepath.Join(dir, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return json.RawMessage("{}"), nil
		}
		return nil, fmt.Errorf("reading document %s: %w", id, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("document %s: %w", id, types.ErrDataCorruption)
	}
	return json.RawMessage(data), nil
}
