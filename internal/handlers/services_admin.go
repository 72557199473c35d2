package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/models"
	"github.com/example/bellari/internal/services"
	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

// ServiceAdminHandler manages the service catalog from the back office.
type ServiceAdminHandler struct {
	st           *store.Store
	placeholders *services.PlaceholderService
	imagesDir    string
}

// NewServiceAdminHandler constructs ServiceAdminHandler.
func NewServiceAdminHandler(st *store.Store, placeholders *services.PlaceholderService, imagesDir string) *ServiceAdminHandler {
	return &ServiceAdminHandler{st: st, placeholders: placeholders, imagesDir: imagesDir}
}

type serviceForm struct {
	Title          string `validate:"required"`
	Description    string `validate:"required"`
	LongDesc       string
	Icon           string
	Featured       bool
	DisplayOrder   int
	SEOTitle       string
	SEODescription string
	SEOKeywords    string
}

// parseServiceForm coerces the posted fields: missing checkbox means false,
// missing or malformed order means 0, missing icon falls back to the
// default.
func parseServiceForm(c *fiber.Ctx) serviceForm {
	return serviceForm{
		Title:          c.FormValue("title"),
		Description:    c.FormValue("description"),
		LongDesc:       c.FormValue("long_description"),
		Icon:           utils.FormValue(c, "icon", "sparkles"),
		Featured:       utils.FormCheckbox(c, "featured"),
		DisplayOrder:   utils.FormInt(c, "order", 0),
		SEOTitle:       c.FormValue("seo_title"),
		SEODescription: c.FormValue("seo_description"),
		SEOKeywords:    c.FormValue("seo_keywords"),
	}
}

// serviceImage resolves the image for a service mutation: a valid uploaded
// file wins; no file at all yields empty (caller decides between keeping the
// existing reference and generating a placeholder); a rejected file also
// yields empty so the existing reference is never nulled.
func (h *ServiceAdminHandler) serviceImage(c *fiber.Ctx) (path string, rejected bool) {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return "", false
	}

	filename, err := utils.SaveUploadedImage(file, h.imagesDir)
	if err != nil {
		return "", err != utils.ErrNoFile
	}
	return "/static/images/" + filename, false
}

// List returns all services in display order.
func (h *ServiceAdminHandler) List(c *fiber.Ctx) error {
	items, err := h.st.AllServices()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"flash":   utils.TakeFlash(c),
	})
}

// AddForm renders the empty service form.
func (h *ServiceAdminHandler) AddForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"service": nil,
		"flash":   utils.TakeFlash(c),
	})
}

// Add creates a service. Without a valid uploaded image a placeholder is
// generated from the title's first word.
func (h *ServiceAdminHandler) Add(c *fiber.Ctx) error {
	form := parseServiceForm(c)
	if err := validate.Struct(&form); err != nil {
		utils.SetFlash(c, "error", "Titre et description obligatoires")
		return c.Redirect("/admin/services/add", fiber.StatusSeeOther)
	}

	image, rejected := h.serviceImage(c)
	if image == "" {
		generated, err := h.placeholders.CleaningImage(serviceKey(form.Title), serviceImageName(form.Title))
		if err != nil {
			return err
		}
		image = generated
	}

	service := models.Service{
		Title:           form.Title,
		Description:     form.Description,
		LongDescription: form.LongDesc,
		Icon:            form.Icon,
		Image:           image,
		Featured:        form.Featured,
		DisplayOrder:    form.DisplayOrder,
		SEOTitle:        form.SEOTitle,
		SEODescription:  form.SEODescription,
		SEOKeywords:     form.SEOKeywords,
	}

	if err := h.st.CreateService(&service); err != nil {
		return err
	}

	if rejected {
		utils.SetFlash(c, "error", "Service ajouté, image refusée: type de fichier non autorisé")
	} else {
		utils.SetFlash(c, "success", "Service ajouté avec succès")
	}
	return c.Redirect("/admin/services", fiber.StatusSeeOther)
}

// EditForm renders the form for an existing service.
func (h *ServiceAdminHandler) EditForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	service, err := h.st.ServiceByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "service not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"service": service,
		"flash":   utils.TakeFlash(c),
	})
}

// Edit updates a service. The image reference only changes when a new valid
// file arrives; a rejected upload leaves it untouched.
func (h *ServiceAdminHandler) Edit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	service, err := h.st.ServiceByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "service not found")
		}
		return err
	}

	form := parseServiceForm(c)
	if err := validate.Struct(&form); err != nil {
		utils.SetFlash(c, "error", "Titre et description obligatoires")
		return c.Redirect("/admin/services/"+c.Params("id")+"/edit", fiber.StatusSeeOther)
	}

	service.Title = form.Title
	service.Description = form.Description
	service.LongDescription = form.LongDesc
	service.Icon = form.Icon
	service.Featured = form.Featured
	service.DisplayOrder = form.DisplayOrder
	service.SEOTitle = form.SEOTitle
	service.SEODescription = form.SEODescription
	service.SEOKeywords = form.SEOKeywords

	image, rejected := h.serviceImage(c)
	if image != "" {
		service.Image = image
	}

	if err := h.st.SaveService(service); err != nil {
		return err
	}

	if rejected {
		utils.SetFlash(c, "error", "Service modifié, image refusée: type de fichier non autorisé")
	} else {
		utils.SetFlash(c, "success", "Service modifié avec succès")
	}
	return c.Redirect("/admin/services", fiber.StatusSeeOther)
}

// Delete removes a service; a missing ID is a 404 and a no-op.
func (h *ServiceAdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.st.DeleteService(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "service not found")
		}
		return err
	}

	utils.SetFlash(c, "success", "Service supprimé")
	return c.Redirect("/admin/services", fiber.StatusSeeOther)
}
