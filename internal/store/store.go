// Package store is the data-access facade over the persistence schema. All
// operations take the gorm handle held by the Store; nothing in this package
// relies on process-wide state.
package store

import (
	"gorm.io/gorm"

	"github.com/example/bellari/internal/models"
)

// Store bundles read/write operations over the site content tables.
type Store struct {
	db *gorm.DB
}

// New constructs a Store around an initialized database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that compose their own
// queries (seeding, tests).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Services

// FeaturedServices returns featured services ordered for display.
func (s *Store) FeaturedServices() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Where("featured = ?", true).Order("display_order asc").Find(&services).Error
	return services, err
}

// AllServices returns every service ordered for display.
func (s *Store) AllServices() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Order("display_order asc").Find(&services).Error
	return services, err
}

// ServiceByID returns one service or gorm.ErrRecordNotFound.
func (s *Store) ServiceByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// CreateService persists a new service.
func (s *Store) CreateService(service *models.Service) error {
	return s.db.Create(service).Error
}

// SaveService writes back an edited service.
func (s *Store) SaveService(service *models.Service) error {
	return s.db.Save(service).Error
}

// DeleteService removes a service by ID. A missing ID reports
// gorm.ErrRecordNotFound and leaves the table unchanged.
func (s *Store) DeleteService(id uint) error {
	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Testimonials

// ApprovedTestimonials returns testimonials cleared for public display.
// Order is not contractual.
func (s *Store) ApprovedTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := s.db.Where("approved = ?", true).Find(&testimonials).Error
	return testimonials, err
}

// AllTestimonials returns every testimonial for the admin listing.
func (s *Store) AllTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := s.db.Find(&testimonials).Error
	return testimonials, err
}

// TestimonialByID returns one testimonial or gorm.ErrRecordNotFound.
func (s *Store) TestimonialByID(id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := s.db.First(&testimonial, id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// CreateTestimonial persists a new testimonial.
func (s *Store) CreateTestimonial(testimonial *models.Testimonial) error {
	return s.db.Create(testimonial).Error
}

// SaveTestimonial writes back an edited testimonial.
func (s *Store) SaveTestimonial(testimonial *models.Testimonial) error {
	return s.db.Save(testimonial).Error
}

// DeleteTestimonial removes a testimonial by ID.
func (s *Store) DeleteTestimonial(id uint) error {
	result := s.db.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Contact messages

// SaveContactMessage persists a new unread contact message and returns the
// stored record. Presence of name, email and message is the caller's
// concern; this layer performs no syntactic validation.
func (s *Store) SaveContactMessage(name, email, phone, subject, message string) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
		IsRead:  false,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// Messages returns all contact messages, newest first.
func (s *Store) Messages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.db.Order("created_at desc").Find(&messages).Error
	return messages, err
}

// RecentMessages returns the most recent contact messages for the dashboard.
func (s *Store) RecentMessages(limit int) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.db.Order("created_at desc").Limit(limit).Find(&messages).Error
	return messages, err
}

// MarkMessageRead flips the is_read flag on one message.
func (s *Store) MarkMessageRead(id uint) error {
	var msg models.ContactMessage
	if err := s.db.First(&msg, id).Error; err != nil {
		return err
	}
	return s.db.Model(&msg).Update("is_read", true).Error
}

// DeleteMessage removes a contact message by ID.
func (s *Store) DeleteMessage(id uint) error {
	result := s.db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DashboardStats aggregates the counts shown on the admin dashboard.
type DashboardStats struct {
	UnreadCount       int64                   `json:"unread_count"`
	ServicesCount     int64                   `json:"services_count"`
	MessagesCount     int64                   `json:"messages_count"`
	TestimonialsCount int64                   `json:"testimonials_count"`
	RecentMessages    []models.ContactMessage `json:"recent_messages"`
}

// Stats collects dashboard counters and the five most recent messages.
func (s *Store) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).
		Count(&stats.UnreadCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Service{}).Count(&stats.ServicesCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ContactMessage{}).Count(&stats.MessagesCount).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Testimonial{}).Count(&stats.TestimonialsCount).Error; err != nil {
		return nil, err
	}

	recent, err := s.RecentMessages(5)
	if err != nil {
		return nil, err
	}
	stats.RecentMessages = recent

	return stats, nil
}

// Admins

// AdminByUsername looks up the admin credential row.
func (s *Store) AdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// AdminByID resolves a previously authenticated session identity. A missing
// row fails closed at the middleware.
func (s *Store) AdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
