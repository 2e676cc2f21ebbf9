package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken returns the access token from the Authorization header
// ("Bearer <token>") or, as a fallback, the "access_token" cookie.
func GetRawAccessToken(c *fiber.Ctx) string {
	const prefix = "Bearer "
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > len(prefix) && strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func GetRefreshTokenFromCookie(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies("refresh_token"))
}
