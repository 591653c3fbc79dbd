// Package types defines the entity types, settings documents, standard
// errors, and the Store interface for the acctrack data layer.
package types

import "errors"

// Store is the storage contract the access facade is built on. Two
// implementations exist: the SQLite record store (default) and the flat
// JSON document store (legacy fallback). The resolver selects exactly one
// at startup; they are never mixed within a session.
type Store interface {
	// Open binds the store to the given folder, creating it and the
	// expected schema if absent. Idempotent: an already-open store is
	// closed first. An Open failure leaves the store unusable and must
	// abort application startup.
	Open(dir string) error

	// Relocate switches the store to a new folder at runtime. The new
	// location is opened and prepared before the old one is released;
	// on failure the store remains bound to the old location.
	Relocate(dir string) error

	// Close releases the underlying resources. Idempotent. Operations
	// after Close return ErrNotInitialized.
	Close() error

	// Path reports the folder the store is currently bound to.
	Path() string

	SaveBusinessProfile(p *BusinessProfile) error
	BusinessProfile() (*BusinessProfile, error)

	SaveContactAddress(a *ContactAddress) error
	ContactAddress() (*ContactAddress, error)

	InsertProduct(p *Product) (string, error)
	Products() ([]*Product, error)
	UpdateProduct(id string, patch ProductPatch) (int64, error)
	DeleteProduct(id string) error

	InsertDocument(d *Document) (string, error)
	Documents(kind string) ([]*Document, error)
}

// Store errors. Every facade endpoint converts these to result payloads;
// only an Open failure at startup is allowed to terminate the process.
var (
	// ErrNotInitialized is returned by operations attempted before Open
	// or after Close.
	ErrNotInitialized = errors.New("store is not initialized")

	// ErrDataCorruption is returned when a stored blob field cannot be
	// parsed back. The stored row is left untouched.
	ErrDataCorruption = errors.New("stored record is corrupted")

	// ErrConstraintViolation is returned when a uniqueness constraint,
	// such as a duplicate document number, is violated.
	ErrConstraintViolation = errors.New("uniqueness constraint violated")

	// ErrInvalidArgument is returned for caller errors such as an update
	// with no fields or a product with a negative unit price.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownDocumentKind is returned for a document kind outside
	// quotation, invoice, purchase_order.
	ErrUnknownDocumentKind = errors.New("unknown document kind")
)
