package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/tmrsite/internal/models"
	"github.com/example/tmrsite/internal/session"
)

const (
	sessionContextKey = "adminSession"
	revokedContextKey = "adminSessionRevoked"
	LoginPath         = "/admin/login"
)

// RequireAdmin loads the admin session into context or sends the visitor to
// the login page. HTMX requests get an HX-Redirect instead of a 302 so the
// whole page navigates.
func RequireAdmin(manager *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := manager.Load(c)
		if err != nil {
			if c.Get("HX-Request") == "true" {
				c.Set("HX-Redirect", LoginPath)
				return c.SendStatus(fiber.StatusUnauthorized)
			}
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		c.Locals(sessionContextKey, s)
		err = c.Next()
		if revoked, _ := c.Locals(revokedContextKey).(bool); revoked {
			manager.End(c)
		}
		return err
	}
}

// RevokeSession marks the current session to be ended once the handler
// returns, e.g. after the API rejected its token.
func RevokeSession(c *fiber.Ctx) {
	c.Locals(revokedContextKey, true)
}

// GetSession extracts the admin session placed by RequireAdmin.
func GetSession(c *fiber.Ctx) (*models.AdminSession, bool) {
	s, ok := c.Locals(sessionContextKey).(*models.AdminSession)
	return s, ok && s != nil
}
