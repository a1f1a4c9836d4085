package imports

import (
	"strings"

	"brickly-backend/internal/listings"
	"brickly-backend/internal/middleware"
	"brickly-backend/internal/models"
	"brickly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service  *Service
	Listings *listings.Service
}

func parseSource(raw string) (string, bool) {
	switch raw {
	case models.SourcePublic, models.SourcePartner:
		return raw, true
	default:
		return "", false
	}
}

// Search GET /import/listings?source=&q= (public)
func (h *Handlers) Search(c *fiber.Ctx) error {
	source, ok := parseSource(c.Query("source"))
	if !ok {
		return response.ValidationError(c, "source must be PUBLIC or PARTNER")
	}
	term := strings.TrimSpace(c.Query("q"))

	cards, err := h.Service.Search(c.Context(), source, term)
	if err != nil {
		return response.Internal(c, "Failed to load listings")
	}
	return c.JSON(cards)
}

// Detail GET /import/listings/:externalId?source= (public)
func (h *Handlers) Detail(c *fiber.Ctx) error {
	source, ok := parseSource(c.Query("source"))
	if !ok {
		return response.ValidationError(c, "Invalid source")
	}

	view, err := h.Service.Detail(c.Context(), c.Params("externalId"), source)
	if err != nil {
		if err == ErrListingNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, "Failed to load listing")
	}
	return c.JSON(view)
}

type confirmRequest struct {
	Source      string                   `json:"source"`
	ExternalID  string                   `json:"externalId"`
	Property    listings.PropertyInput   `json:"property"`
	Listing     listings.ListingInput    `json:"listing"`
	ShareClass  listings.ShareClassInput `json:"shareClass"`
	Images      []string                 `json:"images"`
	Attribution *string                  `json:"attribution"`
}

// Confirm POST /import/confirm (authenticated, KYC approved). Creates the
// same property/listing/share-class bundle as POST /listings plus the
// provenance of the staged listing it came from.
func (h *Handlers) Confirm(c *fiber.Ctx) error {
	var body confirmRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	source, ok := parseSource(body.Source)
	if !ok {
		return response.ValidationError(c, "source must be PUBLIC or PARTNER")
	}
	if body.ExternalID == "" {
		return response.ValidationError(c, "externalId is required")
	}
	if msg := listings.ValidateBundle(body.Property, body.Listing, body.ShareClass, body.Images); msg != "" {
		return response.ValidationError(c, msg)
	}

	user := middleware.GetUser(c)
	result, err := h.Listings.CreateBundle(c.Context(), listings.CreateInput{
		ListerUserID: user.ID,
		Property:     body.Property,
		Listing:      body.Listing,
		ShareClass:   body.ShareClass,
		Images:       body.Images,
		Provenance: &listings.Provenance{
			SourceType:  source,
			ExternalID:  body.ExternalID,
			Attribution: body.Attribution,
		},
	})
	if err != nil {
		return response.Internal(c, "Failed to import listing")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// AdminList GET /admin/mls-listings (admin)
func (h *Handlers) AdminList(c *fiber.Ctx) error {
	source := c.Query("source")
	if source != models.SourcePartner {
		source = models.SourcePublic
	}
	term := strings.TrimSpace(c.Query("q"))

	rows, err := h.Service.AdminList(c.Context(), source, term)
	if err != nil {
		return response.Internal(c, "Failed to load MLS listings")
	}
	return c.JSON(rows)
}

// Seed POST /admin/mls-listings/seed (admin)
func (h *Handlers) Seed(c *fiber.Ctx) error {
	count, err := h.Service.Seed(c.Context())
	if err != nil {
		return response.Internal(c, "Failed to seed MLS listings")
	}
	return c.JSON(fiber.Map{"count": count})
}

// Clear POST /admin/mls-listings/clear (admin)
func (h *Handlers) Clear(c *fiber.Ctx) error {
	count, err := h.Service.Clear(c.Context())
	if err != nil {
		return response.Internal(c, "Failed to clear MLS listings")
	}
	return c.JSON(fiber.Map{"count": count})
}
