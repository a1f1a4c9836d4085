package kyc

import (
	"encoding/json"

	"brickly-backend/internal/middleware"
	"brickly-backend/internal/models"
	"brickly-backend/internal/pkg/response"
	"brickly-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type Handlers struct {
	Service *Service
}

// Me GET /kyc/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	profile, err := h.Service.Me(c.Context(), user.ID)
	if err != nil {
		if err == ErrProfileNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(profile)
}

type submitRequest struct {
	Data json.RawMessage `json:"data"`
}

// Submit POST /kyc/submit
func (h *Handlers) Submit(c *fiber.Ctx) error {
	var body submitRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	data := body.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	if !json.Valid(data) {
		return response.ValidationError(c, "data must be a JSON object")
	}

	user := middleware.GetUser(c)
	profile, err := h.Service.Submit(c.Context(), user.ID, datatypes.JSON(data))
	if err != nil {
		return response.Internal(c, "Failed to submit KYC")
	}
	return c.JSON(profile)
}

// Submissions GET /kyc/submissions (admin)
func (h *Handlers) Submissions(c *fiber.Ctx) error {
	submissions, err := h.Service.Submissions(c.Context())
	if err != nil {
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(submissions)
}

type decisionRequest struct {
	UserID string `json:"userId"`
}

// Approve POST /kyc/approve (admin)
func (h *Handlers) Approve(c *fiber.Ctx) error {
	return h.decide(c, models.KycApproved)
}

// Reject POST /kyc/reject (admin)
func (h *Handlers) Reject(c *fiber.Ctx) error {
	return h.decide(c, models.KycRejected)
}

func (h *Handlers) decide(c *fiber.Ctx, status string) error {
	var body decisionRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	userID, ok := validation.ParseUUID(body.UserID)
	if !ok {
		return response.ValidationError(c, "userId must be a valid UUID")
	}
	profile, err := h.Service.Decide(c.Context(), userID, status)
	if err != nil {
		if err == ErrProfileNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(profile)
}
