package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Error response. Success bodies are plain payloads (arrays/objects straight
// from the controllers, matching the frontend contract); only errors carry
// this envelope.
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// Error response with per-field details
func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// Validation errors from validator.v10
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}
	return JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}

// FromFiberError converts an error bubbled out of a Transaction (usually a
// *fiber.Error) into the consistent JSON envelope.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
