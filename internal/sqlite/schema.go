// Package sqlite implements the file-backed record store over a single
// SQLite connection.
package sqlite

// Schema DDL. Every statement is create-if-absent and runs on every
// Open, so a folder holding an older store gains missing tables without
// a migration step. Invoices and purchase orders are declared up front;
// the facade currently wires only quotations.
const (
	createBusinessData = `CREATE TABLE IF NOT EXISTS business_data (
    id TEXT PRIMARY KEY DEFAULT 'default',
    business_type TEXT NOT NULL,
    registration_number TEXT,
    office_type TEXT,
    branch TEXT,
    individual_details TEXT,
    juristic_details TEXT,
    business_name TEXT,
    business_description TEXT,
    registration_date TEXT,
    vat_registered INTEGER DEFAULT 0,
    vat_details TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	createContactData = `CREATE TABLE IF NOT EXISTS contact_data (
    id TEXT PRIMARY KEY DEFAULT 'default',
    building TEXT,
    room_number TEXT,
    floor TEXT,
    village TEXT,
    house_number TEXT NOT NULL,
    moo TEXT,
    soi TEXT,
    road TEXT,
    sub_district TEXT NOT NULL,
    district TEXT NOT NULL,
    province TEXT NOT NULL,
    country TEXT NOT NULL,
    postal_code TEXT NOT NULL,
    phone_number TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	createProducts = `CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    category TEXT,
    unit_price REAL NOT NULL,
    stock INTEGER DEFAULT 0,
    min_stock INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	createQuotations = `CREATE TABLE IF NOT EXISTS quotations (
    id TEXT PRIMARY KEY,
    doc_number TEXT NOT NULL UNIQUE,
    customer_name TEXT NOT NULL,
    customer_address TEXT,
    items TEXT NOT NULL,
    subtotal REAL NOT NULL,
    tax REAL DEFAULT 0,
    total REAL NOT NULL,
    status TEXT NOT NULL,
    due_date TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	createInvoices = `CREATE TABLE IF NOT EXISTS invoices (
    id TEXT PRIMARY KEY,
    doc_number TEXT NOT NULL UNIQUE,
    customer_name TEXT NOT NULL,
    customer_address TEXT,
    items TEXT NOT NULL,
    subtotal REAL NOT NULL,
    tax REAL DEFAULT 0,
    total REAL NOT NULL,
    status TEXT NOT NULL,
    due_date TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

	createPurchaseOrders = `CREATE TABLE IF NOT EXISTS purchase_orders (
    id TEXT PRIMARY KEY,
    doc_number TEXT NOT NULL UNIQUE,
    customer_name TEXT NOT NULL,
    customer_address TEXT,
    items TEXT NOT NULL,
    subtotal REAL NOT NULL,
    tax REAL DEFAULT 0,
    total REAL NOT NULL,
    status TEXT NOT NULL,
    due_date TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`
)

// Index DDL for common listings.
const (
	idxProductsCreated   = `CREATE INDEX IF NOT EXISTS idx_products_created ON products(created_at);`
	idxQuotationsCreated = `CREATE INDEX IF NOT EXISTS idx_quotations_created ON quotations(created_at);`
)

// schemaDDL lists all statements run on Open, in order.
var schemaDDL = []string{
	createBusinessData,
	createContactData,
	createProducts,
	createQuotations,
	createInvoices,
	createPurchaseOrders,
	idxProductsCreated,
	idxQuotationsCreated,
}
