package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/bellari/internal/store"
	"github.com/example/bellari/internal/utils"
)

// SettingsAdminHandler manages the site settings singleton and per-page SEO
// metadata.
type SettingsAdminHandler struct {
	st        *store.Store
	imagesDir string
}

// NewSettingsAdminHandler constructs SettingsAdminHandler.
func NewSettingsAdminHandler(st *store.Store, imagesDir string) *SettingsAdminHandler {
	return &SettingsAdminHandler{st: st, imagesDir: imagesDir}
}

// SettingsPage renders the settings form.
func (h *SettingsAdminHandler) SettingsPage(c *fiber.Ctx) error {
	settings, err := h.st.Settings()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"settings": settings,
		"flash":    utils.TakeFlash(c),
	})
}

// UpdateSettings writes back the singleton row. Text fields are taken as
// submitted; branding images only change when a valid file is uploaded for
// them, and a rejected upload keeps the current reference.
func (h *SettingsAdminHandler) UpdateSettings(c *fiber.Ctx) error {
	settings, err := h.st.Settings()
	if err != nil {
		return err
	}

	settings.CompanyName = c.FormValue("company_name")
	settings.Phone = c.FormValue("phone")
	settings.Email = c.FormValue("email")
	settings.Whatsapp = c.FormValue("whatsapp")
	settings.Facebook = c.FormValue("facebook")
	settings.Instagram = c.FormValue("instagram")
	settings.Address = c.FormValue("address")
	settings.LogoText = c.FormValue("logo_text")
	settings.PrimaryColor = utils.FormValue(c, "primary_color", "1B4D3D")
	settings.SecondaryColor = utils.FormValue(c, "secondary_color", "7CB342")
	settings.HeaderCode = c.FormValue("header_code")
	settings.FooterCode = c.FormValue("footer_code")
	settings.GoogleAnalytics = c.FormValue("google_analytics")
	settings.GoogleTagManager = c.FormValue("google_tag_manager")
	settings.FacebookPixel = c.FormValue("facebook_pixel")
	settings.WhatsappDefaultMessage = c.FormValue("whatsapp_default_message")
	settings.OpeningHours = c.FormValue("opening_hours")
	settings.MapEmbed = c.FormValue("map_embed")

	rejected := false
	for field, target := range map[string]*string{
		"hero_image":  &settings.HeroImage,
		"about_image": &settings.AboutImage,
		"logo_image":  &settings.LogoImage,
		"favicon":     &settings.Favicon,
	} {
		file, err := c.FormFile(field)
		if err != nil || file == nil {
			continue
		}
		filename, err := utils.SaveUploadedImage(file, h.imagesDir)
		if err != nil {
			if err != utils.ErrNoFile {
				rejected = true
			}
			continue
		}
		*target = filename
	}

	if err := h.st.SaveSettings(settings); err != nil {
		return err
	}

	if rejected {
		utils.SetFlash(c, "error", "Paramètres mis à jour, image refusée: type de fichier non autorisé")
	} else {
		utils.SetFlash(c, "success", "Paramètres mis à jour avec succès")
	}
	return c.Redirect("/admin/settings", fiber.StatusSeeOther)
}

// SEOList lists all per-page SEO rows.
func (h *SettingsAdminHandler) SEOList(c *fiber.Ctx) error {
	rows, err := h.st.AllSEO()
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rows,
		"flash":   utils.TakeFlash(c),
	})
}

// SEOEditForm renders the SEO form for one page key, creating the row on
// first access.
func (h *SettingsAdminHandler) SEOEditForm(c *fiber.Ctx) error {
	seo, err := h.st.SEOForPage(c.Params("page"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"seo":     seo,
		"flash":   utils.TakeFlash(c),
	})
}

// SEOUpdate writes back the SEO row for one page key.
func (h *SettingsAdminHandler) SEOUpdate(c *fiber.Ctx) error {
	seo, err := h.st.SEOForPage(c.Params("page"))
	if err != nil {
		return err
	}

	seo.Title = c.FormValue("title")
	seo.Description = c.FormValue("description")
	seo.Keywords = c.FormValue("keywords")
	seo.MetaImage = c.FormValue("meta_image")
	seo.CanonicalURL = c.FormValue("canonical_url")
	seo.Robots = utils.FormValue(c, "robots", "index, follow")
	seo.OGType = utils.FormValue(c, "og_type", "website")
	seo.TwitterCard = utils.FormValue(c, "twitter_card", "summary_large_image")
	seo.StructuredData = c.FormValue("structured_data")
	seo.CustomHeadCode = c.FormValue("custom_head_code")

	if err := h.st.SaveSEO(seo); err != nil {
		return err
	}

	utils.SetFlash(c, "success", "SEO mis à jour")
	return c.Redirect("/admin/seo", fiber.StatusSeeOther)
}
