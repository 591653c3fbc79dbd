package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/kridsada-n/acctrack/pkg/types"
)

// docTables maps a document kind to its table. All three tables share
// one row shape, so one code path serves them.
var docTables = map[string]string{
	types.DocKindQuotation:     "quotations",
	types.DocKindInvoice:       "invoices",
	types.DocKindPurchaseOrder: "purchase_orders",
}

// InsertDocument inserts a quotation, invoice, or purchase order and
// returns the generated id. The document number must be unique within
// its kind; a duplicate is a constraint violation and leaves the
// existing row untouched.
func (s *Store) InsertDocument(d *types.Document) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	table := docTables[d.Kind]

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	// Pre-check gives a clean error for the common duplicate case; the
	// UNIQUE index still backstops a race.
	var exists int
	err = db.QueryRow("SELECT 1 FROM "+table+" WHERE doc_number = ?", d.Number).Scan(&exists)
	if err == nil {
		return "", fmt.Errorf("document number %q: %w", d.Number, types.ErrConstraintViolation)
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("checking document number: %w", err)
	}

	items, err := json.Marshal(d.Items)
	if err != nil {
		return "", fmt.Errorf("marshaling line items: %w", err)
	}

	id := uuid.NewString()
	_, err = db.Exec(`
		INSERT INTO `+table+` (id, doc_number, customer_name, customer_address,
			items, subtotal, tax, total, status, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, d.Number, d.CustomerName, nullable(d.CustomerAddress),
		string(items), d.Subtotal, d.Tax, d.Total, d.Status, nullable(d.DueDate))
	if isUniqueViolation(err) {
		return "", fmt.Errorf("document number %q: %w", d.Number, types.ErrConstraintViolation)
	}
	if err != nil {
		return "", fmt.Errorf("saving document: %w", err)
	}
	return id, nil
}

// Documents lists all documents of one kind, newest first. Line items
// are parsed back from their blob column; an unparseable blob is data
// corruption, not an empty list.
func (s *Store) Documents(kind string) ([]*types.Document, error) {
	table, ok := docTables[kind]
	if !ok {
		return nil, types.ErrUnknownDocumentKind
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, doc_number, customer_name, customer_address, items,
		       subtotal, tax, total, status, due_date, created_at, updated_at
		FROM ` + table + ` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	docs := []*types.Document{}
	for rows.Next() {
		var d types.Document
		var address, dueDate sql.NullString
		var items string
		if err := rows.Scan(&d.ID, &d.Number, &d.CustomerName, &address,
			&items, &d.Subtotal, &d.Tax, &d.Total, &d.Status, &dueDate,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		d.Kind = kind
		d.CustomerAddress = address.String
		d.DueDate = dueDate.String
		if err := json.Unmarshal([]byte(items), &d.Items); err != nil {
			return nil, fmt.Errorf("line items of %s: %w", d.Number, types.ErrDataCorruption)
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}
