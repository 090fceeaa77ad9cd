package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
	"inventory/internal/services"
)

// SupplierHandler handles HTTP requests for suppliers.
type SupplierHandler struct {
	service  *services.SupplierService
	validate *validator.Validate
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService, validate *validator.Validate) *SupplierHandler {
	return &SupplierHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the supplier routes.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Post("/", h.HandleCreateSupplier)
	supplierRoutes.Get("/", h.HandleGetSuppliers)
	supplierRoutes.Get("/:id", h.HandleGetSupplierByID)
	supplierRoutes.Put("/:id", h.HandleUpdateSupplier)
	supplierRoutes.Delete("/:id", h.HandleDeleteSupplier)
}

// HandleCreateSupplier creates a new supplier.
func (h *SupplierHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var in models.SupplierIn
	if err := parseBody(c, h.validate, &in); err != nil {
		return err
	}
	supplier, err := h.service.CreateSupplier(c.UserContext(), in)
	if err != nil {
		return err
	}
	return ok(c, supplier)
}

// HandleGetSuppliers lists all suppliers.
func (h *SupplierHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, suppliers)
}

// HandleGetSupplierByID is the only lookup that answers a clean 404.
func (h *SupplierHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	supplier, err := h.service.FindSupplier(c.UserContext(), id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return fiber.NewError(fiber.StatusNotFound, "Supplier not found")
	}
	return ok(c, supplier)
}

// HandleUpdateSupplier applies the fields present in the body.
func (h *SupplierHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in models.SupplierUpdate
	if err := parseBody(c, h.validate, &in); err != nil {
		return err
	}
	supplier, err := h.service.UpdateSupplier(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return ok(c, supplier)
}

// HandleDeleteSupplier deletes a supplier and, through the foreign key, its products.
func (h *SupplierHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteSupplier(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, "Supplier deleted successfully!")
}
