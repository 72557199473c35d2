package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

// AdminHandler serves the dashboard and contact-message management.
type AdminHandler struct {
	st *store.Store
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{st: st}
}

// Dashboard returns aggregate statistics and the most recent messages.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.st.Stats()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
		"flash":   utils.TakeFlash(c),
	})
}

// Messages lists all contact messages, newest first.
func (h *AdminHandler) Messages(c *fiber.Ctx) error {
	messages, err := h.st.Messages()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
		"flash":   utils.TakeFlash(c),
	})
}

// MarkMessageRead flips the unread flag on one message.
func (h *AdminHandler) MarkMessageRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.st.MarkMessageRead(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "message not found")
		}
		return err
	}

	return c.Redirect("/admin/messages", fiber.StatusSeeOther)
}

// DeleteMessage removes one message.
func (h *AdminHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.st.DeleteMessage(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "message not found")
		}
		return err
	}

	utils.SetFlash(c, "success", "Message supprimé")
	return c.Redirect("/admin/messages", fiber.StatusSeeOther)
}
