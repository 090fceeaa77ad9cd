package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"inventory/internal/models"
	"inventory/internal/services"
	"inventory/pkg/logger"
)

// EmailHandler handles supplier notification requests.
type EmailHandler struct {
	service  *services.NotificationService
	validate *validator.Validate
	log      *logger.Logger
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(service *services.NotificationService, validate *validator.Validate, log *logger.Logger) *EmailHandler {
	return &EmailHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the email routes.
func (h *EmailHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/email/:product_id", h.HandleSendEmail)
}

// HandleSendEmail emails the supplier of a product. Every failure after the body is
// parsed, lookup included, is answered with a 500 carrying the error text.
func (h *EmailHandler) HandleSendEmail(c *fiber.Ctx) error {
	productID, err := paramID(c, "product_id")
	if err != nil {
		return err
	}
	var content models.EmailContent
	if err := parseBody(c, h.validate, &content); err != nil {
		return err
	}

	ctx := h.log.WithField(c.UserContext(), "product_id", productID)
	if err := h.service.SendSupplierEmail(ctx, productID, content); err != nil {
		h.log.Warn(ctx, "supplier email failed", err)
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	h.log.Info(ctx, fmt.Sprintf("supplier email sent for product %d", productID))
	return ok(c, "Email sent successfully!")
}
