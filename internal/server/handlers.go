package server

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/kridsada-n/acctrack/internal/docstore"
	"github.com/kridsada-n/acctrack/internal/sqlite"
	"github.com/kridsada-n/acctrack/pkg/types"
)

// quotationPayload is the wire shape the UI sends and expects back. It
// differs from the store's document type in two field names kept for
// compatibility: quotationNumber and vat.
type quotationPayload struct {
	ID              string           `json:"id,omitempty"`
	QuotationNumber string           `json:"quotationNumber"`
	CustomerName    string           `json:"customerName"`
	CustomerAddress string           `json:"customerAddress,omitempty"`
	Items           []types.LineItem `json:"items"`
	Subtotal        float64          `json:"subtotal"`
	VAT             float64          `json:"vat"`
	Total           float64          `json:"total"`
	Status          string           `json:"status,omitempty"`
	DueDate         string           `json:"dueDate,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	UpdatedAt       string           `json:"updatedAt,omitempty"`
}

func (q *quotationPayload) toDocument() *types.Document {
	return &types.Document{
		Kind:            types.DocKindQuotation,
		Number:          q.QuotationNumber,
		CustomerName:    q.CustomerName,
		CustomerAddress: q.CustomerAddress,
		Items:           q.Items,
		Subtotal:        q.Subtotal,
		Tax:             q.VAT,
		Total:           q.Total,
		Status:          q.Status,
		DueDate:         q.DueDate,
	}
}

func quotationFromDocument(d *types.Document) quotationPayload {
	return quotationPayload{
		ID:              d.ID,
		QuotationNumber: d.Number,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		Items:           d.Items,
		Subtotal:        d.Subtotal,
		VAT:             d.Tax,
		Total:           d.Total,
		Status:          d.Status,
		DueDate:         d.DueDate,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func (s *Server) saveBusinessData(c *fiber.Ctx) error {
	var p types.BusinessProfile
	if err := c.BodyParser(&p); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if err := s.store.SaveBusinessProfile(&p); err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(okResult())
}

// getBusinessData returns the profile fields directly, or an empty
// object when nothing has been saved yet.
func (s *Server) getBusinessData(c *fiber.Ctx) error {
	p, err := s.store.BusinessProfile()
	if err != nil {
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if p == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(p)
}

func (s *Server) saveContactData(c *fiber.Ctx) error {
	var a types.ContactAddress
	if err := c.BodyParser(&a); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if err := s.store.SaveContactAddress(&a); err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(idResult(types.SingletonID))
}

func (s *Server) getContactData(c *fiber.Ctx) error {
	a, err := s.store.ContactAddress()
	if err != nil {
		return c.JSON(listFail(err))
	}
	return c.JSON(dataResult(a))
}

func (s *Server) saveProduct(c *fiber.Ctx) error {
	var p types.Product
	if err := c.BodyParser(&p); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	id, err := s.store.InsertProduct(&p)
	if err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(idResult(id))
}

func (s *Server) getProducts(c *fiber.Ctx) error {
	products, err := s.store.Products()
	if err != nil {
		return c.JSON(listFail(err))
	}
	return c.JSON(dataResult(products))
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
		types.ProductPatch
	}
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if _, err := s.store.UpdateProduct(req.ID, req.ProductPatch); err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(okResult())
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	var req struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if err := s.store.DeleteProduct(req.ID); err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(okResult())
}

func (s *Server) saveQuotation(c *fiber.Ctx) error {
	var q quotationPayload
	if err := c.BodyParser(&q); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	id, err := s.store.InsertDocument(q.toDocument())
	if err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(idResult(id))
}

func (s *Server) getQuotations(c *fiber.Ctx) error {
	docs, err := s.store.Documents(types.DocKindQuotation)
	if err != nil {
		return c.JSON(listFail(err))
	}
	quotations := make([]quotationPayload, 0, len(docs))
	for _, d := range docs {
		quotations = append(quotations, quotationFromDocument(d))
	}
	return c.JSON(dataResult(quotations))
}

func (s *Server) saveStorageSettings(c *fiber.Ctx) error {
	var settings types.StorageSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if err := s.settings.SaveStorageSettings(&settings); err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(okResult())
}

// getStorageSettings returns the saved settings, or null before any
// save — the UI uses null to trigger first-time setup.
func (s *Server) getStorageSettings(c *fiber.Ctx) error {
	settings, err := s.settings.StorageSettings()
	if err != nil {
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(settings)
}

func (s *Server) checkFolderForExistingData(c *fiber.Ctx) error {
	var req struct {
		FolderPath string `json:"folderPath"`
	}
	if err := c.BodyParser(&req); err != nil || req.FolderPath == "" {
		return c.JSON(probeResult{Error: types.ErrInvalidArgument.Error()})
	}
	res, err := sqlite.ProbeFolder(req.FolderPath)
	if err != nil {
		return c.JSON(probeResult{Error: err.Error()})
	}
	return c.JSON(probeResult{HasData: res.HasData, TableCount: res.TableCount})
}

func (s *Server) getRecentFolders(c *fiber.Ctx) error {
	folders, err := s.settings.RecentFolders()
	if err != nil {
		return c.JSON([]string{})
	}
	return c.JSON(folders)
}

func (s *Server) addToRecentFolders(c *fiber.Ctx) error {
	var req struct {
		FolderPath string `json:"folderPath"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if err := s.settings.AddRecentFolder(req.FolderPath); err != nil {
		return c.JSON(failResult(err))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// relocateStorage persists the new settings first, then rebinds the
// live store. A relocate failure is reported without rolling back the
// settings write; the store stays on its old location.
func (s *Server) relocateStorage(c *fiber.Ctx) error {
	var settings types.StorageSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if err := s.settings.SaveStorageSettings(&settings); err != nil {
		return c.JSON(failResult(err))
	}

	dir := settings.DatabasePath
	if dir == "" {
		dir = s.defaultDir
	}
	if err := s.store.Relocate(dir); err != nil {
		return c.JSON(failResult(err))
	}
	if err := s.settings.AddRecentFolder(dir); err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(okResult())
}

// saveFile and readFile keep the per-key JSON file contract alive for
// data the UI stores outside the relational schema.
func (s *Server) saveFile(c *fiber.Ctx) error {
	var req struct {
		ID   string          `json:"id"`
		Data json.RawMessage `json:"data"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(failResult(types.ErrInvalidArgument))
	}
	if err := docstore.WriteKeyed(s.store.Path(), req.ID, req.Data); err != nil {
		return c.JSON(failResult(err))
	}
	return c.JSON(okResult())
}

func (s *Server) readFile(c *fiber.Ctx) error {
	data, err := docstore.ReadKeyed(s.store.Path(), c.Params("id"))
	if err != nil {
		return c.JSON(listFail(err))
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}
