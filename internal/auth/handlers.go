package auth

import (
	"brickly-backend/internal/models"
	"brickly-backend/internal/pkg/response"
	"brickly-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service          *Service
	AllowEmailBypass bool
}

var validRoles = map[string]bool{
	models.RoleAdmin:    true,
	models.RoleLister:   true,
	models.RoleInvestor: true,
	models.RoleTenant:   true,
}

// Register POST /auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var body RegisterInput
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	if !validation.IsValidEmail(body.Email) {
		return response.ValidationError(c, "Invalid email")
	}
	if !validation.IsValidPassword(body.Password) {
		return response.ValidationError(c, "Password must be at least 8 characters")
	}
	if !validRoles[body.Role] {
		return response.ValidationError(c, "Invalid role")
	}

	result, err := h.Service.Register(c.Context(), body, h.AllowEmailBypass)
	if err != nil {
		switch err {
		case ErrEmailInUse:
			return response.Error(c, fiber.StatusBadRequest, response.CodeConflict, err.Error())
		case ErrEmailSendFailed:
			return response.Error(c, fiber.StatusInternalServerError, "EMAIL_SEND_FAILED", err.Error())
		default:
			return response.Internal(c, "Failed to register user")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

type loginRequest struct {
	EmailOrPhone string `json:"emailOrPhone"`
	Password     string `json:"password"`
}

// Login POST /auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	if len(body.EmailOrPhone) < 3 || len(body.Password) < 8 {
		return response.ValidationError(c, "Invalid request")
	}

	token, err := h.Service.Login(c.Context(), body.EmailOrPhone, body.Password)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			return response.Error(c, fiber.StatusUnauthorized, response.CodeInvalidCredentials, err.Error())
		case ErrEmailNotVerified:
			return response.Error(c, fiber.StatusForbidden, response.CodeEmailNotVerified, err.Error())
		default:
			return response.Internal(c, "Internal Server Error")
		}
	}
	return c.JSON(fiber.Map{"token": token})
}

// Verify GET /auth/verify?token=
func (h *Handlers) Verify(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return response.ValidationError(c, "Missing token")
	}
	if err := h.Service.VerifyEmail(c.Context(), token); err != nil {
		if err == ErrInvalidToken {
			return response.Error(c, fiber.StatusBadRequest, response.CodeInvalidToken, err.Error())
		}
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(fiber.Map{"ok": true})
}
