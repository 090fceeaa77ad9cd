package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"inventory/pkg/logger"
)

// Envelope wraps every successful payload.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{Status: "ok", Data: data})
}

// ErrorHandler renders *fiber.Error values with their own code and message. Anything
// else is an unhandled failure: it is logged and answered with a bare 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(ErrorResponse{Detail: fe.Message})
		}
		log.Error(c.UserContext(), fmt.Sprintf("unhandled error on %s %s", c.Method(), c.Path()), err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Detail: "Internal Server Error"})
	}
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// parseBody decodes and validates the request body into out. Failures become 422s.
func parseBody(c *fiber.Ctx, validate *validator.Validate, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("Invalid request body: %v", err))
	}
	if err := validate.Struct(out); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
		return fiber.NewError(fiber.StatusUnprocessableEntity, strings.Join(messages, "; "))
	}
	return nil
}

// paramID reads a non-negative integer path parameter.
func paramID(c *fiber.Ctx, key string) (uint, error) {
	id, err := c.ParamsInt(key)
	if err != nil || id < 0 {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, fmt.Sprintf("Path parameter '%s' must be an integer", key))
	}
	return uint(id), nil
}
