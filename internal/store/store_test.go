package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Service{},
		&models.ContactMessage{},
		&models.Testimonial{},
		&models.SiteSettings{},
		&models.SEOSettings{},
		&models.SiteImage{},
	)
	require.NoError(t, err)

	return db
}

func TestServiceOrdering(t *testing.T) {
	st := New(setupTestDB(t))

	require.NoError(t, st.CreateService(&models.Service{Title: "C", Description: "c", DisplayOrder: 3, Featured: true}))
	require.NoError(t, st.CreateService(&models.Service{Title: "A", Description: "a", DisplayOrder: 1}))
	require.NoError(t, st.CreateService(&models.Service{Title: "B", Description: "b", DisplayOrder: 2, Featured: true}))

	all, err := st.AllServices()
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].DisplayOrder, all[i].DisplayOrder)
	}

	featured, err := st.FeaturedServices()
	require.NoError(t, err)
	require.Len(t, featured, 2)

	allIDs := make(map[uint]bool)
	for _, s := range all {
		allIDs[s.ID] = true
	}
	for _, s := range featured {
		assert.True(t, s.Featured)
		assert.True(t, allIDs[s.ID], "featured service must be in the full listing")
	}
}

func TestDeleteServiceMissing(t *testing.T) {
	st := New(setupTestDB(t))

	require.NoError(t, st.CreateService(&models.Service{Title: "Keep", Description: "d"}))

	err := st.DeleteService(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Retry is an idempotent no-op.
	err = st.DeleteService(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, st.DB().Model(&models.Service{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApprovedTestimonials(t *testing.T) {
	st := New(setupTestDB(t))

	require.NoError(t, st.CreateTestimonial(&models.Testimonial{Name: "Ali", Content: "Parfait", Rating: 5, Approved: true}))
	// Approved left unset: excluded from the public listing.
	require.NoError(t, st.CreateTestimonial(&models.Testimonial{Name: "Sara", Content: "Bien", Rating: 4}))

	approved, err := st.ApprovedTestimonials()
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "Ali", approved[0].Name)
	assert.True(t, approved[0].Approved)
}

func TestSaveContactMessage(t *testing.T) {
	st := New(setupTestDB(t))

	before := time.Now().Add(-time.Second)
	msg, err := st.SaveContactMessage("Jane", "jane@x.com", "", "Devis", "Bonjour")
	require.NoError(t, err)
	require.NotNil(t, msg)

	assert.False(t, msg.IsRead)
	assert.NotZero(t, msg.ID)
	assert.True(t, !msg.CreatedAt.Before(before))

	var count int64
	require.NoError(t, st.DB().Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMarkMessageRead(t *testing.T) {
	st := New(setupTestDB(t))

	msg, err := st.SaveContactMessage("Jane", "jane@x.com", "", "", "Bonjour")
	require.NoError(t, err)

	require.NoError(t, st.MarkMessageRead(msg.ID))

	stored := &models.ContactMessage{}
	require.NoError(t, st.DB().First(stored, msg.ID).Error)
	assert.True(t, stored.IsRead)

	assert.ErrorIs(t, st.MarkMessageRead(9999), gorm.ErrRecordNotFound)
}

func TestStats(t *testing.T) {
	st := New(setupTestDB(t))

	require.NoError(t, st.CreateService(&models.Service{Title: "S", Description: "d"}))
	require.NoError(t, st.CreateTestimonial(&models.Testimonial{Name: "N", Content: "c"}))

	for i := 0; i < 7; i++ {
		_, err := st.SaveContactMessage("Jane", "jane@x.com", "", "", "Bonjour")
		require.NoError(t, err)
	}
	first := &models.ContactMessage{}
	require.NoError(t, st.DB().First(first).Error)
	require.NoError(t, st.MarkMessageRead(first.ID))

	stats, err := st.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 6, stats.UnreadCount)
	assert.EqualValues(t, 1, stats.ServicesCount)
	assert.EqualValues(t, 7, stats.MessagesCount)
	assert.EqualValues(t, 1, stats.TestimonialsCount)
	assert.Len(t, stats.RecentMessages, 5)
}

func TestSettingsSingleton(t *testing.T) {
	st := New(setupTestDB(t))

	first, err := st.Settings()
	require.NoError(t, err)
	assert.Equal(t, "Bellari Propreté Services", first.CompanyName)
	assert.Equal(t, "Lun-Sam: 8h-18h", first.OpeningHours)

	second, err := st.Settings()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, st.DB().Model(&models.SiteSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "second call must not create a duplicate")
}

func TestSEOForPage(t *testing.T) {
	st := New(setupTestDB(t))

	seo, err := st.SEOForPage("home")
	require.NoError(t, err)
	assert.Equal(t, "home", seo.PageName)
	assert.Equal(t, "index, follow", seo.Robots)
	assert.Equal(t, "website", seo.OGType)

	seo.Title = "Accueil"
	require.NoError(t, st.SaveSEO(seo))

	again, err := st.SEOForPage("home")
	require.NoError(t, err)
	assert.Equal(t, seo.ID, again.ID)
	assert.Equal(t, "Accueil", again.Title)

	var count int64
	require.NoError(t, st.DB().Model(&models.SEOSettings{}).Where("page_name = ?", "home").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteImage(t *testing.T) {
	st := New(setupTestDB(t))
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.png"), []byte("png-bytes"), 0o644))

	image := &models.SiteImage{Name: "Hero", Filename: "abc.png"}
	require.NoError(t, st.CreateImage(image))

	removed, err := st.DeleteImage(image.ID, dir)
	require.NoError(t, err)
	assert.True(t, removed)
	_, statErr := os.Stat(filepath.Join(dir, "abc.png"))
	assert.True(t, os.IsNotExist(statErr))

	// Row gone even when the file is already missing.
	orphan := &models.SiteImage{Name: "Orphan", Filename: "missing.png"}
	require.NoError(t, st.CreateImage(orphan))

	removed, err = st.DeleteImage(orphan.ID, dir)
	require.NoError(t, err)
	assert.False(t, removed, "missing file reports cleanup failure without failing the delete")

	var count int64
	require.NoError(t, st.DB().Model(&models.SiteImage{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	_, err = st.DeleteImage(9999, dir)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
