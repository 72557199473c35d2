package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

// PublicHandler serves the visitor-facing pages.
type PublicHandler struct {
	st *store.Store
}

// NewPublicHandler constructs PublicHandler.
func NewPublicHandler(st *store.Store) *PublicHandler {
	return &PublicHandler{st: st}
}

// Home resolves the data the home page renders: featured services, the full
// catalog, approved testimonials, settings and SEO metadata.
func (h *PublicHandler) Home(c *fiber.Ctx) error {
	featured, err := h.st.FeaturedServices()
	if err != nil {
		return err
	}

	services, err := h.st.AllServices()
	if err != nil {
		return err
	}

	testimonials, err := h.st.ApprovedTestimonials()
	if err != nil {
		return err
	}

	settings, err := h.st.Settings()
	if err != nil {
		return err
	}

	seo, err := h.st.SEOForPage("home")
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"featured_services": featured,
		"services":          services,
		"testimonials":      testimonials,
		"settings":          settings,
		"seo":               seo,
		"flash":             utils.TakeFlash(c),
	})
}

// Services renders the full service listing.
func (h *PublicHandler) Services(c *fiber.Ctx) error {
	services, err := h.st.AllServices()
	if err != nil {
		return err
	}

	settings, err := h.st.Settings()
	if err != nil {
		return err
	}

	seo, err := h.st.SEOForPage("services")
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"services": services,
		"settings": settings,
		"seo":      seo,
	})
}

// ServiceDetail renders one service page or a 404.
func (h *PublicHandler) ServiceDetail(c *fiber.Ctx) error {
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

	settings, err := h.st.Settings()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"service":  service,
		"settings": settings,
	})
}

// ContactPage renders the contact form view.
func (h *PublicHandler) ContactPage(c *fiber.Ctx) error {
	settings, err := h.st.Settings()
	if err != nil {
		return err
	}

	seo, err := h.st.SEOForPage("contact")
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"settings": settings,
		"seo":      seo,
		"flash":    utils.TakeFlash(c),
	})
}

type contactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Phone   string
	Subject string
	Message string `validate:"required"`
}

// ContactSubmit stores a contact message and redirects back to the form
// (redirect-after-post). Only textual presence of name, email and message is
// required; everything else is accepted as submitted.
func (h *PublicHandler) ContactSubmit(c *fiber.Ctx) error {
	form := contactForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	}

	if err := validate.Struct(&form); err != nil {
		utils.SetFlash(c, "error", "Veuillez remplir les champs obligatoires")
		return c.Redirect("/contact", fiber.StatusSeeOther)
	}

	if _, err := h.st.SaveContactMessage(form.Name, form.Email, form.Phone, form.Subject, form.Message); err != nil {
		return err
	}

	utils.SetFlash(c, "success", "Votre message a été envoyé avec succès!")
	return c.Redirect("/contact", fiber.StatusSeeOther)
}

// Devis renders the quote-request page data.
func (h *PublicHandler) Devis(c *fiber.Ctx) error {
	services, err := h.st.AllServices()
	if err != nil {
		return err
	}

	settings, err := h.st.Settings()
	if err != nil {
		return err
	}

	seo, err := h.st.SEOForPage("devis")
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"services": services,
		"settings": settings,
		"seo":      seo,
		"flash":    utils.TakeFlash(c),
	})
}
