package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fixnear/fixnear-backend/services"
)

var userService *services.UserService

// Init hands the middleware its user lookup. Called once from main after
// the services are constructed.
func Init(u *services.UserService) {
	userService = u
}

// RequireRole blocks the request unless the authenticated user carries the
// role tag. Roles are re-read from the database rather than trusted from the
// token, so a role change takes effect without reissuing tokens.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User ID not found in context",
			})
		}

		if !userService.HasRole(userID, role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		return c.Next()
	}
}
