package properties

import (
	"brickly-backend/internal/pkg/response"
	"brickly-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// List GET /properties
func (h *Handlers) List(c *fiber.Ctx) error {
	props, err := h.Service.List(c.Context())
	if err != nil {
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(props)
}

// Get GET /properties/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, ok := validation.ParseUUID(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Property not found")
	}
	prop, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(prop)
}

type rentListRequest struct {
	PropertyID string `json:"propertyId"`
}

// RentList POST /admin/rent-list (admin)
func (h *Handlers) RentList(c *fiber.Ctx) error {
	var body rentListRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	propertyID, ok := validation.ParseUUID(body.PropertyID)
	if !ok {
		return response.ValidationError(c, "propertyId must be a valid UUID")
	}
	prop, err := h.Service.RentList(c.Context(), propertyID)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(prop)
}

// Delete DELETE /admin/properties/:id (admin)
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, ok := validation.ParseUUID(c.Params("id"))
	if !ok {
		return response.ValidationError(c, "Property id is required")
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			return response.NotFound(c, err.Error())
		case ErrInvalidState:
			return response.Error(c, fiber.StatusBadRequest, "INVALID_STATE", err.Error())
		default:
			return response.Internal(c, "Internal Server Error")
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
