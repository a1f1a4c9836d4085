package middleware

import (
	"strings"

	"brickly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userLocal = "user"

// AuthUser is the identity decoded from the bearer token.
type AuthUser struct {
	ID   uuid.UUID
	Role string
}

// RequireAuth verifies the Authorization bearer token and stores the decoded
// identity in Locals. Missing header -> 401 UNAUTHORIZED; bad token -> 401
// INVALID_TOKEN.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return response.Unauthorized(c, "Missing authorization token")
		}
		raw := strings.TrimSpace(header[7:])

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return response.Error(c, fiber.StatusUnauthorized, response.CodeInvalidToken, "Invalid or expired token")
		}

		idStr, _ := claims["id"].(string)
		role, _ := claims["role"].(string)
		id, err := uuid.Parse(idStr)
		if err != nil || role == "" {
			return response.Error(c, fiber.StatusUnauthorized, response.CodeInvalidToken, "Invalid or expired token")
		}

		c.Locals(userLocal, &AuthUser{ID: id, Role: role})
		return c.Next()
	}
}

// GetUser returns the authenticated user from Locals (nil if unauthenticated).
func GetUser(c *fiber.Ctx) *AuthUser {
	u, _ := c.Locals(userLocal).(*AuthUser)
	return u
}
