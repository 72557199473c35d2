package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/bellari/internal/config"
	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

const adminContextKey = "currentAdminID"

// SessionCookie carries the signed admin session token.
const SessionCookie = "bellari_admin"

// AdminAuth validates the session cookie and loads the authenticated admin
// ID into context. Anything missing or malformed fails closed: the request
// is bounced to the login page, never partially authenticated.
func AdminAuth(cfg *config.Config, st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}

		adminID, err := utils.ParseToken(cfg.JWTSecret, token)
		if err != nil {
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}

		if _, err := st.AdminByID(adminID); err != nil {
			return c.Redirect("/admin/login", fiber.StatusSeeOther)
		}

		c.Locals(adminContextKey, adminID)
		return c.Next()
	}
}

// GetCurrentAdminID extracts the authenticated admin ID from context.
func GetCurrentAdminID(c *fiber.Ctx) (uint, bool) {
	value := c.Locals(adminContextKey)
	if value == nil {
		return 0, false
	}

	if id, ok := value.(uint); ok {
		return id, true
	}

	return 0, false
}
