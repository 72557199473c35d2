package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/config"
	"github.com/example/bellari/internal/middleware"
	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

// AuthHandler bundles dependencies for the admin login flow.
type AuthHandler struct {
	st  *store.Store
	cfg *config.Config
}

// loginDummyHash is compared against when the username does not exist, so
// both failure branches cost one bcrypt comparison and response timing does
// not reveal which accounts exist.
const loginDummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{st: st, cfg: cfg}
}

// LoginPage renders the login view; an already authenticated session is
// redirected straight to the dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.SessionCookie); token != "" {
		if _, err := utils.ParseToken(h.cfg.JWTSecret, token); err == nil {
			return c.Redirect("/admin/", fiber.StatusSeeOther)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"flash":   utils.TakeFlash(c),
	})
}

// Login verifies admin credentials and establishes the session. Unknown
// usernames and wrong passwords yield the same generic outcome so nothing
// leaks about which accounts exist.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	admin, err := h.st.AdminByUsername(username)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		utils.CheckPassword(loginDummyHash, password)
		utils.SetFlash(c, "error", "Identifiants incorrects")
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	if !utils.CheckPassword(admin.PasswordHash, password) {
		utils.SetFlash(c, "error", "Identifiants incorrects")
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, admin.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		HTTPOnly: true,
	})

	return c.Redirect("/admin/", fiber.StatusSeeOther)
}

// Logout clears the session and returns to the public site.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/", fiber.StatusSeeOther)
}
