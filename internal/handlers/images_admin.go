package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/models"
	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

// ImageAdminHandler manages the uploaded-image library.
type ImageAdminHandler struct {
	st        *store.Store
	imagesDir string
}

// NewImageAdminHandler constructs ImageAdminHandler.
func NewImageAdminHandler(st *store.Store, imagesDir string) *ImageAdminHandler {
	return &ImageAdminHandler{st: st, imagesDir: imagesDir}
}

// List returns all uploaded images, newest first.
func (h *ImageAdminHandler) List(c *fiber.Ctx) error {
	images, err := h.st.Images()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    images,
		"flash":   utils.TakeFlash(c),
	})
}

// Upload validates and stores a new image file and its library record. A
// rejected file stores nothing.
func (h *ImageAdminHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil || file == nil {
		utils.SetFlash(c, "error", "Aucun fichier fourni")
		return c.Redirect("/admin/images", fiber.StatusSeeOther)
	}

	filename, err := utils.SaveUploadedImage(file, h.imagesDir)
	if err != nil {
		switch err {
		case utils.ErrNoFile:
			utils.SetFlash(c, "error", "Aucun fichier fourni")
		case utils.ErrExtensionNotAllowed:
			utils.SetFlash(c, "error", "Type de fichier non autorisé")
		default:
			return err
		}
		return c.Redirect("/admin/images", fiber.StatusSeeOther)
	}

	image := models.SiteImage{
		Name:     utils.FormValue(c, "name", file.Filename),
		Filename: filename,
		Category: utils.FormValue(c, "category", "general"),
		AltText:  c.FormValue("alt_text"),
	}

	if err := h.st.CreateImage(&image); err != nil {
		return err
	}

	utils.SetFlash(c, "success", "Image téléchargée avec succès")
	return c.Redirect("/admin/images", fiber.StatusSeeOther)
}

// Delete removes the image record and, best effort, the stored file.
func (h *ImageAdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	fileRemoved, err := h.st.DeleteImage(id, h.imagesDir)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "image not found")
		}
		return err
	}

	if fileRemoved {
		utils.SetFlash(c, "success", "Image supprimée")
	} else {
		utils.SetFlash(c, "success", "Image supprimée (fichier introuvable)")
	}
	return c.Redirect("/admin/images", fiber.StatusSeeOther)
}
