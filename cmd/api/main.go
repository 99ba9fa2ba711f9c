package main

import (
	"log"
	"time"

	config "github.com/LALo99-vk/Photography-Website/configs"
	"github.com/LALo99-vk/Photography-Website/database"
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/jobs"
	"github.com/LALo99-vk/Photography-Website/routes"
	"github.com/LALo99-vk/Photography-Website/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	db, err := database.Connect(config.Config("DATABASE_URL"))
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	if err := database.SeedAdmin(db,
		config.Config("ADMIN_ID"),
		config.Config("ADMIN_EMAIL"),
		config.Config("ADMIN_PASSWORD"),
		config.Config("ADMIN_DISPLAY_NAME"),
	); err != nil {
		log.Fatalf("🔥 Failed to seed admin profile: %v", err)
	}
	if err := database.SeedSettings(db); err != nil {
		log.Fatalf("🔥 Failed to seed settings: %v", err)
	}

	photoStore, err := storage.NewCloudinaryStore(config.Config("CLOUDINARY_URL"))
	if err != nil {
		log.Fatalf("🔥 Failed to initialize photo storage: %v", err)
	}

	exportDir := config.Config("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}
	exportJob := jobs.NewExportJob(db, exportDir)
	if err := exportJob.Start(); err != nil {
		log.Fatalf("🔥 Failed to start export scheduler: %v", err)
	}
	defer exportJob.Stop()

	app := fiber.New(fiber.Config{
		AppName:       "Photography Platform",
		CaseSensitive: true,
		StrictRouting: false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Disposition",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	authHandler := handlers.NewAuthHandler(db)
	bookingHandler := handlers.NewBookingHandler(db)
	photoHandler := handlers.NewPhotoHandler(db, photoStore)
	paymentHandler := handlers.NewPaymentHandler(db)
	pricingHandler := handlers.NewPricingHandler(db)
	userHandler := handlers.NewUserHandler(db)
	excelHandler := handlers.NewExcelHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	routes.AuthRoutes(app, db, authHandler)
	routes.BookingRoutes(app, db, bookingHandler)
	routes.PhotoRoutes(app, photoHandler)
	routes.PaymentRoutes(app, db, paymentHandler)
	routes.PricingRoutes(app, db, pricingHandler)
	routes.UserRoutes(app, db, userHandler)
	routes.ExcelRoutes(app, db, excelHandler)
	routes.AdminRoutes(app, db, adminHandler, bookingHandler)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now().UTC()})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
