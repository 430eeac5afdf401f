package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nourjazi01/hack-seneca/internal/config"
	"github.com/nourjazi01/hack-seneca/internal/database"
	"github.com/nourjazi01/hack-seneca/internal/routes"
	"github.com/nourjazi01/hack-seneca/internal/store"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Pick the record source: Postgres when DB_URL is set, the JSON
	// data directory otherwise.
	var source store.RecordSource
	if cfg.DBUrl != "" {
		if err := database.ConnectDB(cfg.DBUrl); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB()
		source = store.NewPostgresSource(database.DB)
		log.Println("Serving fitness records from Postgres")
	} else {
		source = store.NewFileSource(cfg.DataDir)
		log.Printf("Serving fitness records from %s", cfg.DataDir)
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	routes.RegisterRoutes(app, cfg, source)

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
