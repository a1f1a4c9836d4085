package middleware

import (
	"brickly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the global error handler. Unhandled errors surface as the
// standard envelope; fiber.Error status codes are preserved.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	errCode := response.CodeInternal
	if code < 500 {
		errCode = response.CodeValidation
	}
	return response.Error(c, code, errCode, message)
}
