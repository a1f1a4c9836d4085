package listings

import (
	"net/url"

	"brickly-backend/internal/middleware"
	"brickly-backend/internal/models"
	"brickly-backend/internal/pkg/response"
	"brickly-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

type createRequest struct {
	Property   PropertyInput   `json:"property"`
	Listing    ListingInput    `json:"listing"`
	ShareClass ShareClassInput `json:"shareClass"`
	Images     []string        `json:"images"`
}

var validPropertyTypes = map[string]bool{
	models.PropertyHouse:     true,
	models.PropertyCondo:     true,
	models.PropertyTownhouse: true,
	models.PropertyMultiUnit: true,
}

// ValidateBundle checks the shared property/listing/shareClass/images input.
// Also used by the import confirm handler.
func ValidateBundle(property PropertyInput, listing ListingInput, shareClass ShareClassInput, images []string) string {
	if property.Address1 == "" || property.City == "" || property.State == "" || property.Zip == "" {
		return "address1, city, state and zip are required"
	}
	if property.Type != nil && !validPropertyTypes[*property.Type] {
		return "Invalid property type"
	}
	for _, n := range []*int{property.SquareFeet, property.Bedrooms, property.Bathrooms} {
		if n != nil && *n <= 0 {
			return "Numeric property fields must be positive"
		}
	}
	if property.TargetRaise != nil && !property.TargetRaise.IsPositive() {
		return "targetRaise must be positive"
	}
	if property.EstMonthlyRent != nil && !property.EstMonthlyRent.IsPositive() {
		return "estMonthlyRent must be positive"
	}
	if !listing.AskingPrice.IsPositive() {
		return "askingPrice must be positive"
	}
	if listing.BonusPercent.IsNegative() {
		return "bonusPercent must not be negative"
	}
	if shareClass.TotalShares <= 0 {
		return "totalShares must be a positive integer"
	}
	if !shareClass.ReferencePricePerShare.IsPositive() {
		return "referencePricePerShare must be positive"
	}
	for _, img := range images {
		if u, err := url.Parse(img); err != nil || u.Scheme == "" || u.Host == "" {
			return "images must be valid URLs"
		}
	}
	return ""
}

// Create POST /listings (lister/admin, KYC approved)
func (h *Handlers) Create(c *fiber.Ctx) error {
	var body createRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	if msg := ValidateBundle(body.Property, body.Listing, body.ShareClass, body.Images); msg != "" {
		return response.ValidationError(c, msg)
	}

	user := middleware.GetUser(c)
	result, err := h.Service.CreateBundle(c.Context(), CreateInput{
		ListerUserID: user.ID,
		Property:     body.Property,
		Listing:      body.Listing,
		ShareClass:   body.ShareClass,
		Images:       body.Images,
	})
	if err != nil {
		return response.Internal(c, "Failed to create listing")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Mine GET /listings/mine (lister)
func (h *Handlers) Mine(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	out, err := h.Service.Mine(c.Context(), user.ID)
	if err != nil {
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(out)
}

// Update PUT /listings/:id (lister, owner only)
func (h *Handlers) Update(c *fiber.Ctx) error {
	listingID, ok := validation.ParseUUID(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Listing not found")
	}
	var body UpdateInput
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	if body.Listing != nil {
		if body.Listing.AskingPrice != nil && !body.Listing.AskingPrice.IsPositive() {
			return response.ValidationError(c, "askingPrice must be positive")
		}
		if body.Listing.BonusPercent != nil && body.Listing.BonusPercent.IsNegative() {
			return response.ValidationError(c, "bonusPercent must not be negative")
		}
	}

	user := middleware.GetUser(c)
	updated, err := h.Service.Update(c.Context(), listingID, user.ID, body)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return response.Internal(c, "Failed to update listing")
	}
	return c.JSON(updated)
}
