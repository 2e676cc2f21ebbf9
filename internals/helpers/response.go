package helper

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// JsonError writes the error envelope with an explicit status + code.
func JsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// JsonAppError maps any error coming out of a service to the wire envelope.
// Unknown errors are logged with full detail and collapsed to INTERNAL_ERROR
// so store internals never leak to a caller.
func JsonAppError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return JsonError(c, appErr.Status, appErr.Code, appErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonError(c, fiberErr.Code, codeForStatus(fiberErr.Code), fiberErr.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
}

// JsonValidationError renders validator.v10 failures as a field error map.
func JsonValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "VALIDATION_ERROR",
			"message": "Request validation failed",
			"details": fields,
		},
	})
}

// JsonList writes the uniform list envelope.
func JsonList(c *fiber.Ctx, items any, p Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"items":       items,
		"total":       p.Total,
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total_pages": p.TotalPages,
	})
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "VALIDATION_ERROR"
	case fiber.StatusUnauthorized:
		return "AUTH_ERROR"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	default:
		return "INTERNAL_ERROR"
	}
}
