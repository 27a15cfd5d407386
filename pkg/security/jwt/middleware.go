package jwt

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// NewAuthMiddleware returns a Fiber middleware that validates the session
// cookie (HS256 JWT). On success sets user id (subject) into
// c.Locals("userId") and the role claim into c.Locals("role").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "not authenticated",
			})
		}
		claims, err := Parse(tokenStr, secret, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"success": false, "message": "invalid or expired session",
			})
		}
		c.Locals("userId", claims.Subject)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}

// RequireRole gates a route to a single role. Must run after NewAuthMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals("role").(string); r != role {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{
				"success": false, "message": "forbidden",
			})
		}
		return c.Next()
	}
}
