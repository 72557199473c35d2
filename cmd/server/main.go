package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/bellari/internal/config"
	"github.com/example/bellari/internal/database"
	"github.com/example/bellari/internal/routes"
	"github.com/example/bellari/internal/services"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	placeholders := services.NewPlaceholderService(cfg.ImagesDir())
	if err := database.Seed(db, cfg, placeholders); err != nil {
		log.Fatalf("database seeding failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Bellari Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Static("/static", cfg.StaticDir)

	routes.Register(app, db, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
