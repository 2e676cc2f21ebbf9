package helper

import "github.com/gofiber/fiber/v2"

// AppError is the domain error every service returns. Controllers hand it to
// JsonAppError, which renders the stable {error:{code,message}} envelope.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Code: "VALIDATION_ERROR", Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Code: "CONFLICT", Message: message}
}

func NewAuthError(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Code: "AUTH_ERROR", Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Status: fiber.StatusForbidden, Code: "FORBIDDEN", Message: message}
}
