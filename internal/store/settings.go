package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/bellari/internal/models"
)

// Settings returns the singleton site settings row, creating it with
// defaults when absent. Sequential calls are idempotent; the startup seeding
// step (database.Seed) runs before the listener starts so concurrent
// first-access never races in normal operation.
func (s *Store) Settings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	settings = models.NewSiteSettings()
	if err := s.db.Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes back the singleton settings row.
func (s *Store) SaveSettings(settings *models.SiteSettings) error {
	return s.db.Save(settings).Error
}

// SEOForPage returns the SEO row for a page key, creating it with defaults
// when absent. The insert rides the unique index on page_name so two
// concurrent first accesses cannot produce duplicate rows.
func (s *Store) SEOForPage(page string) (*models.SEOSettings, error) {
	seo := models.NewSEOSettings(page)
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_name"}},
		DoNothing: true,
	}).Create(&seo).Error; err != nil {
		return nil, err
	}

	var stored models.SEOSettings
	if err := s.db.Where("page_name = ?", page).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// AllSEO returns every per-page SEO row for the admin listing.
func (s *Store) AllSEO() ([]models.SEOSettings, error) {
	var rows []models.SEOSettings
	err := s.db.Order("page_name asc").Find(&rows).Error
	return rows, err
}

// SaveSEO writes back an edited SEO row.
func (s *Store) SaveSEO(seo *models.SEOSettings) error {
	return s.db.Save(seo).Error
}
