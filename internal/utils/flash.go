package utils

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "bellari_flash"

// Flash is a one-time status message carried across a redirect.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// SetFlash attaches a flash message to the next response via a short-lived
// cookie, read once by the following page render.
func SetFlash(c *fiber.Ctx, category, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		Expires:  time.Now().Add(5 * time.Minute),
		HTTPOnly: true,
	})
}

// TakeFlash returns the pending flash message, if any, and clears it so it
// is only ever rendered once.
func TakeFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}

	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}

	category, message, found := strings.Cut(decoded, "|")
	if !found {
		return &Flash{Category: "success", Message: decoded}
	}
	return &Flash{Category: category, Message: message}
}
