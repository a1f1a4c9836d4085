package middleware

import (
	"context"

	"brickly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// KycChecker reports whether a user's KYC profile is approved.
// Implemented by the kyc package (DB lookup with Redis cache).
type KycChecker interface {
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)
}

// RequireKycApproved gates investment and listing actions on KYC approval.
// Must run after RequireAuth.
func RequireKycApproved(checker KycChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		approved, err := checker.IsApproved(c.Context(), user.ID)
		if err != nil {
			return response.Internal(c, "Internal Server Error")
		}
		if !approved {
			return response.Error(c, fiber.StatusForbidden, response.CodeKycNotApproved, "KYC not approved")
		}
		return c.Next()
	}
}
