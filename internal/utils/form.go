package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// FormValue reads a form field, falling back when the field is absent or
// blank. Mutating endpoints favor permissive coercion over rejection.
func FormValue(c *fiber.Ctx, key, fallback string) string {
	if value := c.FormValue(key); value != "" {
		return value
	}
	return fallback
}

// FormInt reads an integer form field; missing or malformed values coerce
// to the fallback.
func FormInt(c *fiber.Ctx, key string, fallback int) int {
	if parsed, err := strconv.Atoi(c.FormValue(key)); err == nil {
		return parsed
	}
	return fallback
}

// FormCheckbox reads an HTML checkbox field; an absent box coerces to false.
func FormCheckbox(c *fiber.Ctx, key string) bool {
	value := c.FormValue(key)
	return value == "on" || value == "true" || value == "1"
}
