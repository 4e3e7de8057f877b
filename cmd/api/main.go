package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	config "github.com/skillswap/backend/configs"
	"github.com/skillswap/backend/handlers"
	"github.com/skillswap/backend/jobs"
	"github.com/skillswap/backend/routes"
	"github.com/skillswap/backend/storage"
	"github.com/skillswap/backend/store"
)

func main() {
	kv := openStorage()

	sessions := store.NewSessionStore(kv,
		config.ConfigOr("DEMO_EMAIL", "test@student.com"),
		config.ConfigOr("DEMO_PASSWORD", "12345"),
	)
	catalog := store.NewCatalogStore(kv)

	ctx := context.Background()
	if err := sessions.Load(ctx); err != nil {
		log.Printf("⚠️ Failed to load user snapshot, starting signed out: %v", err)
	}
	if err := catalog.Load(ctx); err != nil {
		log.Printf("⚠️ Failed to load catalog snapshot, starting empty: %v", err)
	}

	c := cron.New()
	sessionJobs := jobs.NewSessionJobs(catalog)
	c.AddFunc("*/5 * * * *", sessionJobs.CompleteElapsedSessions)
	go c.Start()
	log.Println("✅ Cron job for session completion scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "SkillSwap",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to SkillSwap API",
		})
	})

	routes.AuthRoutes(app, handlers.NewAuthHandler(sessions))
	routes.ProfileRoutes(app, handlers.NewProfileHandler(sessions))
	routes.OfferRoutes(app, handlers.NewOfferHandler(catalog))
	routes.BookingRoutes(app, handlers.NewBookingHandler(catalog))
	routes.ReviewRoutes(app, handlers.NewReviewHandler(catalog))
	routes.ReportRoutes(app, handlers.NewReportHandler(catalog))
	routes.AdminRoutes(app, handlers.NewAdminHandler(catalog))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}

// openStorage picks the storage backend: postgres when DATABASE_URL is set,
// otherwise one JSON file per key under the data directory.
func openStorage() storage.KV {
	if dsn := config.Config("DATABASE_URL"); dsn != "" {
		kv, err := storage.NewPostgresStore(dsn)
		if err != nil {
			log.Fatalf("🔥 Failed to connect to database: %v", err)
		}
		log.Println("✅ Database connected successfully")
		return kv
	}

	dir := config.ConfigOr("DATA_DIR", "data")
	kv, err := storage.NewFileStore(dir)
	if err != nil {
		log.Fatalf("🔥 Failed to open data directory: %v", err)
	}
	log.Printf("✅ Using file storage at %s", dir)
	return kv
}
