package middleware

import (
	"brickly-backend/internal/constants"
	"brickly-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthorizePermission checks the authenticated user's role against
// constants.PermissionRoles. Unconfigured permission -> 500; role not
// allowed -> 403 FORBIDDEN.
func AuthorizePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		roles, ok := constants.PermissionRoles[permission]
		if !ok || len(roles) == 0 {
			return response.Internal(c, "Permission configuration error")
		}
		if !constants.AllowedRole(permission, user.Role) {
			return response.Error(c, fiber.StatusForbidden, response.CodeForbidden, "Forbidden")
		}
		return c.Next()
	}
}
