package rentals

import (
	"brickly-backend/internal/middleware"
	"brickly-backend/internal/pkg/response"
	"brickly-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handlers struct {
	Service *Service
}

// List GET /rentals (public)
func (h *Handlers) List(c *fiber.Ctx) error {
	props, err := h.Service.ListRentListed(c.Context())
	if err != nil {
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(props)
}

type applyRequest struct {
	PropertyID string `json:"propertyId"`
}

// Apply POST /rentals/apply (tenant)
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var body applyRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	propertyID, ok := validation.ParseUUID(body.PropertyID)
	if !ok {
		return response.ValidationError(c, "propertyId must be a valid UUID")
	}

	user := middleware.GetUser(c)
	application, err := h.Service.Apply(c.Context(), user.ID, propertyID)
	if err != nil {
		switch err {
		case ErrPropertyNotFound:
			return response.NotFound(c, err.Error())
		case ErrNotRentListed:
			return response.Error(c, fiber.StatusBadRequest, "NOT_RENT_LISTED", err.Error())
		case ErrAlreadyApplied:
			return response.Error(c, fiber.StatusBadRequest, "ALREADY_APPLIED", err.Error())
		default:
			return response.Internal(c, "Internal Server Error")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(application)
}

// Pending GET /admin/rental-applications (admin)
func (h *Handlers) Pending(c *fiber.Ctx) error {
	apps, err := h.Service.PendingApplications(c.Context())
	if err != nil {
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(apps)
}

type decisionRequest struct {
	ApplicationID string           `json:"applicationId"`
	RentAmount    *decimal.Decimal `json:"rentAmount"`
}

// Approve POST /admin/rental-applications/approve (admin)
func (h *Handlers) Approve(c *fiber.Ctx) error {
	var body decisionRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	applicationID, ok := validation.ParseUUID(body.ApplicationID)
	if !ok {
		return response.ValidationError(c, "applicationId must be a valid UUID")
	}
	if body.RentAmount != nil && !body.RentAmount.IsPositive() {
		return response.ValidationError(c, "rentAmount must be positive")
	}

	application, err := h.Service.Approve(c.Context(), applicationID, body.RentAmount)
	if err != nil {
		switch err {
		case ErrApplicationNotFound:
			return response.NotFound(c, err.Error())
		case ErrNotPending:
			return response.Error(c, fiber.StatusBadRequest, "NOT_PENDING", err.Error())
		case ErrNotRentListed:
			return response.Error(c, fiber.StatusBadRequest, "NOT_RENT_LISTED", "Property is not rent listed")
		default:
			return response.Internal(c, "Failed to approve application")
		}
	}
	return c.JSON(application)
}

// Reject POST /admin/rental-applications/reject (admin)
func (h *Handlers) Reject(c *fiber.Ctx) error {
	var body decisionRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	applicationID, ok := validation.ParseUUID(body.ApplicationID)
	if !ok {
		return response.ValidationError(c, "applicationId must be a valid UUID")
	}

	application, err := h.Service.Reject(c.Context(), applicationID)
	if err != nil {
		if err == ErrApplicationNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(application)
}
