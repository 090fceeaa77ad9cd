package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
	"inventory/internal/services"
)

// ProductHandler handles HTTP requests for products.
// Store errors, not-found included, are returned as-is to the app error handler.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Post("/:supplier_id", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct creates a product for the supplier in the path.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	supplierID, err := paramID(c, "supplier_id")
	if err != nil {
		return err
	}
	var in models.ProductIn
	if err := parseBody(c, h.validate, &in); err != nil {
		return err
	}
	product, err := h.service.CreateProduct(c.UserContext(), supplierID, in)
	if err != nil {
		return err
	}
	return ok(c, product)
}

// HandleGetProducts lists all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return err
	}
	return ok(c, products)
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return ok(c, product)
}

// HandleUpdateProduct applies the fields present in the body.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in models.ProductUpdate
	if err := parseBody(c, h.validate, &in); err != nil {
		return err
	}
	product, err := h.service.UpdateProduct(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return ok(c, product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return err
	}
	return ok(c, "Product deleted successfully!")
}
