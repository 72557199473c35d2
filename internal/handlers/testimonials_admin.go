package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/models"
	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

// TestimonialAdminHandler manages customer testimonials.
type TestimonialAdminHandler struct {
	st        *store.Store
	imagesDir string
}

// NewTestimonialAdminHandler constructs TestimonialAdminHandler.
func NewTestimonialAdminHandler(st *store.Store, imagesDir string) *TestimonialAdminHandler {
	return &TestimonialAdminHandler{st: st, imagesDir: imagesDir}
}

type testimonialForm struct {
	Name     string `validate:"required"`
	Content  string `validate:"required"`
	Rating   int
	Approved bool
}

func parseTestimonialForm(c *fiber.Ctx) testimonialForm {
	return testimonialForm{
		Name:     c.FormValue("name"),
		Content:  c.FormValue("content"),
		Rating:   utils.FormInt(c, "rating", 5),
		Approved: utils.FormCheckbox(c, "approved"),
	}
}

// testimonialImage mirrors the service image resolution: a rejected upload
// never nulls an existing reference.
func (h *TestimonialAdminHandler) testimonialImage(c *fiber.Ctx) (path string, rejected bool) {
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

// List returns every testimonial for the admin view.
func (h *TestimonialAdminHandler) List(c *fiber.Ctx) error {
	items, err := h.st.AllTestimonials()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"flash":   utils.TakeFlash(c),
	})
}

// AddForm renders the empty testimonial form.
func (h *TestimonialAdminHandler) AddForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":     true,
		"testimonial": nil,
		"flash":       utils.TakeFlash(c),
	})
}

// Add creates a testimonial. Approved stays false unless the box is checked,
// so new entries never leak onto the public site by accident.
func (h *TestimonialAdminHandler) Add(c *fiber.Ctx) error {
	form := parseTestimonialForm(c)
	if err := validate.Struct(&form); err != nil {
		utils.SetFlash(c, "error", "Nom et contenu obligatoires")
		return c.Redirect("/admin/testimonials/add", fiber.StatusSeeOther)
	}

	testimonial := models.Testimonial{
		Name:     form.Name,
		Content:  form.Content,
		Rating:   form.Rating,
		Approved: form.Approved,
	}

	image, rejected := h.testimonialImage(c)
	if image != "" {
		testimonial.Image = image
	}

	if err := h.st.CreateTestimonial(&testimonial); err != nil {
		return err
	}

	if rejected {
		utils.SetFlash(c, "error", "Témoignage ajouté, image refusée: type de fichier non autorisé")
	} else {
		utils.SetFlash(c, "success", "Témoignage ajouté avec succès")
	}
	return c.Redirect("/admin/testimonials", fiber.StatusSeeOther)
}

// EditForm renders the form for an existing testimonial.
func (h *TestimonialAdminHandler) EditForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	testimonial, err := h.st.TestimonialByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "testimonial not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"testimonial": testimonial,
		"flash":       utils.TakeFlash(c),
	})
}

// Edit updates a testimonial.
func (h *TestimonialAdminHandler) Edit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	testimonial, err := h.st.TestimonialByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "testimonial not found")
		}
		return err
	}

	form := parseTestimonialForm(c)
	if err := validate.Struct(&form); err != nil {
		utils.SetFlash(c, "error", "Nom et contenu obligatoires")
		return c.Redirect("/admin/testimonials/"+c.Params("id")+"/edit", fiber.StatusSeeOther)
	}

	testimonial.Name = form.Name
	testimonial.Content = form.Content
	testimonial.Rating = form.Rating
	testimonial.Approved = form.Approved

	image, rejected := h.testimonialImage(c)
	if image != "" {
		testimonial.Image = image
	}

	if err := h.st.SaveTestimonial(testimonial); err != nil {
		return err
	}

	if rejected {
		utils.SetFlash(c, "error", "Témoignage modifié, image refusée: type de fichier non autorisé")
	} else {
		utils.SetFlash(c, "success", "Témoignage modifié avec succès")
	}
	return c.Redirect("/admin/testimonials", fiber.StatusSeeOther)
}

// Delete removes a testimonial.
func (h *TestimonialAdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.st.DeleteTestimonial(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "testimonial not found")
		}
		return err
	}

	utils.SetFlash(c, "success", "Témoignage supprimé")
	return c.Redirect("/admin/testimonials", fiber.StatusSeeOther)
}
