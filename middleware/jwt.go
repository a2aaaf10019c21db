package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fashionstore/store"
	"fashionstore/utils"
)

// Protected checks the bearer token (or the jwt cookie) and the persisted
// logged_in flag, so logging out invalidates tokens that are still live.
func Protected(session *store.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ""
		if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		} else {
			token = c.Cookies("jwt")
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		username, err := utils.ParseJWTToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		loggedIn, err := session.LoggedIn(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session check failed"})
		}
		if !loggedIn {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not logged in"})
		}

		c.Locals("username", username)
		return c.Next()
	}
}
