package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bellari/internal/config"
	"github.com/example/bellari/internal/handlers"
	"github.com/example/bellari/internal/middleware"
	"github.com/example/bellari/internal/services"
	"github.com/example/bellari/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	st := store.New(db)
	placeholders := services.NewPlaceholderService(cfg.ImagesDir())

	publicHandler := handlers.NewPublicHandler(st)
	authHandler := handlers.NewAuthHandler(st, cfg)
	adminHandler := handlers.NewAdminHandler(st)
	serviceHandler := handlers.NewServiceAdminHandler(st, placeholders, cfg.ImagesDir())
	testimonialHandler := handlers.NewTestimonialAdminHandler(st, cfg.ImagesDir())
	settingsHandler := handlers.NewSettingsAdminHandler(st, cfg.ImagesDir())
	imageHandler := handlers.NewImageAdminHandler(st, cfg.ImagesDir())

	// Public pages
	app.Get("/", publicHandler.Home)
	app.Get("/services", publicHandler.Services)
	app.Get("/service/:id", publicHandler.ServiceDetail)
	app.Get("/contact", publicHandler.ContactPage)
	app.Post("/contact", publicHandler.ContactSubmit)
	app.Get("/devis", publicHandler.Devis)

	// Admin login flow lives outside the auth gate.
	app.Get("/admin/login", authHandler.LoginPage)
	app.Post("/admin/login", authHandler.Login)

	admin := app.Group("/admin", middleware.AdminAuth(cfg, st))

	admin.Get("/logout", authHandler.Logout)
	admin.Get("/", adminHandler.Dashboard)

	admin.Get("/messages", adminHandler.Messages)
	admin.Post("/messages/:id/read", adminHandler.MarkMessageRead)
	admin.Post("/messages/:id/delete", adminHandler.DeleteMessage)

	admin.Get("/services", serviceHandler.List)
	admin.Get("/services/add", serviceHandler.AddForm)
	admin.Post("/services/add", serviceHandler.Add)
	admin.Get("/services/:id/edit", serviceHandler.EditForm)
	admin.Post("/services/:id/edit", serviceHandler.Edit)
	admin.Post("/services/:id/delete", serviceHandler.Delete)

	admin.Get("/testimonials", testimonialHandler.List)
	admin.Get("/testimonials/add", testimonialHandler.AddForm)
	admin.Post("/testimonials/add", testimonialHandler.Add)
	admin.Get("/testimonials/:id/edit", testimonialHandler.EditForm)
	admin.Post("/testimonials/:id/edit", testimonialHandler.Edit)
	admin.Post("/testimonials/:id/delete", testimonialHandler.Delete)

	admin.Get("/settings", settingsHandler.SettingsPage)
	admin.Post("/settings", settingsHandler.UpdateSettings)

	admin.Get("/seo", settingsHandler.SEOList)
	admin.Get("/seo/:page", settingsHandler.SEOEditForm)
	admin.Post("/seo/:page", settingsHandler.SEOUpdate)

	admin.Get("/images", imageHandler.List)
	admin.Post("/images/upload", imageHandler.Upload)
	admin.Post("/images/:id/delete", imageHandler.Delete)
}
