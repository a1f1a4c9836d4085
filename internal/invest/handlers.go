package invest

import (
	"brickly-backend/internal/middleware"
	"brickly-backend/internal/pkg/response"
	"brickly-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

type buyRequest struct {
	PropertyID  string `json:"propertyId"`
	SharesToBuy int64  `json:"sharesToBuy"`
}

// Buy POST /invest/buy (investor/admin/lister, KYC approved)
func (h *Handlers) Buy(c *fiber.Ctx) error {
	var body buyRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	propertyID, ok := validation.ParseUUID(body.PropertyID)
	if !ok {
		return response.ValidationError(c, "propertyId must be a valid UUID")
	}
	if body.SharesToBuy <= 0 {
		return response.ValidationError(c, "sharesToBuy must be a positive integer")
	}

	user := middleware.GetUser(c)
	holding, err := h.Service.Buy(c.Context(), user.ID, propertyID, body.SharesToBuy)
	if err != nil {
		switch err {
		case ErrPropertyNotFound:
			return response.NotFound(c, err.Error())
		case ErrInsufficientShares:
			return response.Error(c, fiber.StatusBadRequest, "INSUFFICIENT_SHARES", err.Error())
		default:
			return response.Internal(c, "Failed to purchase shares")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(holding)
}

// Portfolio GET /portfolio (authenticated)
func (h *Handlers) Portfolio(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	entries, err := h.Service.Portfolio(c.Context(), user.ID)
	if err != nil {
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(entries)
}
