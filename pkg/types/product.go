package types

// Product is a multi-row inventory record with a generated id.
type Product struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"minStock"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// Validate checks the fields an insert requires.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrInvalidArgument
	}
	if p.UnitPrice < 0 {
		return ErrInvalidArgument
	}
	return nil
}

// ProductPatch is a partial update. Nil fields are left untouched;
// a patch with no fields set is a caller error.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	MinStock    *int     `json:"minStock,omitempty"`
}

// Empty reports whether the patch carries no fields.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.UnitPrice == nil && p.Stock == nil && p.MinStock == nil
}
