package handlers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseID reads the :id route parameter as an unsigned integer.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// serviceKey derives the placeholder palette key from a service title: its
// first word, lowercased.
func serviceKey(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	if len(fields) == 0 {
		return "general"
	}
	return fields[0]
}

// serviceImageName builds a stable generated-image filename from the title.
func serviceImageName(title string) string {
	return "service_" + strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".jpg"
}
