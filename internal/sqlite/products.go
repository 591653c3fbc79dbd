package sqlite

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/kridsada-n/acctrack/pkg/types"
)

// InsertProduct inserts a new product under a generated id and returns
// that id. Every insert creates a new row; products have no upsert path.
func (s *Store) InsertProduct(p *types.Product) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = db.Exec(`
		INSERT INTO products (id, name, description, category, unit_price, stock, min_stock)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, p.Name, nullable(p.Description), nullable(p.Category),
		p.UnitPrice, p.Stock, p.MinStock)
	if err != nil {
		return "", fmt.Errorf("saving product: %w", err)
	}
	return id, nil
}

// Products lists all products, newest first.
func (s *Store) Products() ([]*types.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, name, description, category, unit_price, stock, min_stock,
		       created_at, updated_at
		FROM products ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := []*types.Product{}
	for rows.Next() {
		var p types.Product
		var desc, category sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &desc, &category, &p.UnitPrice,
			&p.Stock, &p.MinStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.Description = desc.String
		p.Category = category.String
		products = append(products, &p)
	}
	return products, rows.Err()
}

// UpdateProduct applies a partial update: only the fields carried by
// the patch are touched, plus a refreshed updated_at. A patch with no
// fields is a caller error. The affected-row count is returned; zero
// rows (unknown id) is not an error.
func (s *Store) UpdateProduct(id string, patch types.ProductPatch) (int64, error) {
	if id == "" || patch.Empty() {
		return 0, types.ErrInvalidArgument
	}
	if patch.UnitPrice != nil && *patch.UnitPrice < 0 {
		return 0, types.ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	update := psql.Update("products").Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))
	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		update = update.Set("description", nullable(*patch.Description))
	}
	if patch.Category != nil {
		update = update.Set("category", nullable(*patch.Category))
	}
	if patch.UnitPrice != nil {
		update = update.Set("unit_price", *patch.UnitPrice)
	}
	if patch.Stock != nil {
		update = update.Set("stock", *patch.Stock)
	}
	if patch.MinStock != nil {
		update = update.Set("min_stock", *patch.MinStock)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building product update: %w", err)
	}
	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("updating product: %w", err)
	}
	return res.RowsAffected()
}

// DeleteProduct physically removes a product. Deleting an id that does
// not exist is not an error.
func (s *Store) DeleteProduct(id string) error {
	if id == "" {
		return types.ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM products WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}
