package types

// Document kinds. Each kind maps to its own table; quotations are the
// only kind exposed through the facade, invoices and purchase orders
// are served by the same store code path.
const (
	DocKindQuotation     = "quotation"
	DocKindInvoice       = "invoice"
	DocKindPurchaseOrder = "purchase_order"
)

// Document status values.
const (
	DocStatusDraft    = "draft"
	DocStatusSent     = "sent"
	DocStatusApproved = "approved"
	DocStatusRejected = "rejected"
)

// validDocKinds is the set of recognized document kinds.
var validDocKinds = map[string]bool{
	DocKindQuotation:     true,
	DocKindInvoice:       true,
	DocKindPurchaseOrder: true,
}

// validDocStatuses is the set of recognized document statuses.
var validDocStatuses = map[string]bool{
	DocStatusDraft:    true,
	DocStatusSent:     true,
	DocStatusApproved: true,
	DocStatusRejected: true,
}

// IsValidDocKind reports whether kind names a known document table.
func IsValidDocKind(kind string) bool { return validDocKinds[kind] }

// LineItem is one row of a document's line-items collection. The whole
// collection is stored as a single JSON blob, opaque to the query layer.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// Document is a quotation, invoice, or purchase order. The document
// number is human-facing and unique within its kind. DueDate is used by
// invoices (due) and purchase orders (delivery); quotations leave it
// empty.
type Document struct {
	ID              string     `json:"id,omitempty"`
	Kind            string     `json:"-"`
	Number          string     `json:"number"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress,omitempty"`
	Items           []LineItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"`
	DueDate         string     `json:"dueDate,omitempty"`
	CreatedAt       string     `json:"createdAt,omitempty"`
	UpdatedAt       string     `json:"updatedAt,omitempty"`
}

// Validate checks the fields an insert requires. An empty status is
// filled with draft rather than rejected.
func (d *Document) Validate() error {
	if !IsValidDocKind(d.Kind) {
		return ErrUnknownDocumentKind
	}
	if d.Number == "" || d.CustomerName == "" {
		return ErrInvalidArgument
	}
	if d.Status == "" {
		d.Status = DocStatusDraft
	}
	if !validDocStatuses[d.Status] {
		return ErrInvalidArgument
	}
	return nil
}
