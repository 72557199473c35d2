package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/example/bellari/internal/config"
	"github.com/example/bellari/internal/models"
	"github.com/example/bellari/internal/services"
	"github.com/example/bellari/internal/utils"
)

// seoPages are the logical page keys the public site renders.
var seoPages = []string{"home", "services", "contact", "devis"}

// Seed materializes the rows the site expects before the listener starts:
// the admin credential set, the settings singleton, per-page SEO rows and a
// starter service catalog. Running this once at startup removes the lazy
// first-access race on the singleton tables.
func Seed(db *gorm.DB, cfg *config.Config, placeholders *services.PlaceholderService) error {
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	if err := seedSEO(db); err != nil {
		return err
	}
	return seedServices(db, placeholders)
}

// seedAdmin creates the single admin credential set when absent. The
// configured default password is a known exposure and must be rotated
// out-of-band after first deployment.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.Admin{Username: cfg.AdminUsername, PasswordHash: hash}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded admin account %q; rotate the default password", cfg.AdminUsername)
	return nil
}

func seedSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SiteSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := models.NewSiteSettings()
	return db.Create(&settings).Error
}

func seedSEO(db *gorm.DB) error {
	for _, page := range seoPages {
		var count int64
		if err := db.Model(&models.SEOSettings{}).Where("page_name = ?", page).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		seo := models.NewSEOSettings(page)
		if err := db.Create(&seo).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedServices(db *gorm.DB, placeholders *services.PlaceholderService) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []models.Service{
		{
			Title:        "Nettoyage Fin de Chantier",
			Description:  "Service spécialisé dans le nettoyage après travaux. Éliminez tous les débris, poussières et résidus de chantier pour une livraison parfaite.",
			Icon:         "hard-hat",
			Featured:     true,
			DisplayOrder: 1,
		},
		{
			Title:        "Nettoyage d'Appartements",
			Description:  "Entretien professionnel de vos appartements avec produits de qualité. Service complet pour un logement impeccable.",
			Icon:         "home",
			Featured:     true,
			DisplayOrder: 2,
		},
		{
			Title:        "Nettoyage de Bureau",
			Description:  "Maintien d'un environnement de travail propre et professionnel. Service régulier ou occasionnel pour vos bureaux.",
			Icon:         "building-2",
			Featured:     true,
			DisplayOrder: 3,
		},
		{
			Title:        "Nettoyage Fin d'Événement",
			Description:  "Nettoyage complet après événements. Remise en état rapide et efficace des lieux après vos festivités.",
			Icon:         "sparkles",
			DisplayOrder: 4,
		},
	}

	for _, service := range starters {
		filename := fmt.Sprintf("service_%s.jpg", strings.ReplaceAll(strings.ToLower(service.Title), " ", "_"))
		path, err := placeholders.RandomImage(600, 400, filename)
		if err != nil {
			log.Printf("placeholder generation failed for %q: %v", service.Title, err)
			path = "default.jpg"
		}
		service.Image = path

		if err := db.Create(&service).Error; err != nil {
			return err
		}
	}

	return nil
}
