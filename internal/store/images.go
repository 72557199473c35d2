package store

import (
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/example/bellari/internal/models"
)

// Images returns all uploaded image records, newest first.
func (s *Store) Images() ([]models.SiteImage, error) {
	var images []models.SiteImage
	err := s.db.Order("uploaded_at desc").Find(&images).Error
	return images, err
}

// ImageByID returns one image record or gorm.ErrRecordNotFound.
func (s *Store) ImageByID(id uint) (*models.SiteImage, error) {
	var image models.SiteImage
	if err := s.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// CreateImage persists a new image record.
func (s *Store) CreateImage(image *models.SiteImage) error {
	return s.db.Create(image).Error
}

// DeleteImage removes the image row, then attempts to remove the stored file
// under dir. File removal is best-effort cleanup: the returned flag reports
// whether the file was actually removed, and a filesystem failure never
// fails the delete itself.
func (s *Store) DeleteImage(id uint, dir string) (fileRemoved bool, err error) {
	image, err := s.ImageByID(id)
	if err != nil {
		return false, err
	}

	result := s.db.Delete(&models.SiteImage{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, gorm.ErrRecordNotFound
	}

	if image.Filename == "" {
		return false, nil
	}
	if rmErr := os.Remove(filepath.Join(dir, image.Filename)); rmErr != nil {
		return false, nil
	}
	return true, nil
}
