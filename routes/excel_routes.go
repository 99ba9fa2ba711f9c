package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ExcelRoutes(app *fiber.App, db *gorm.DB, h *handlers.ExcelHandler) {
	excel := app.Group("/api/excel", middleware.Protected(), middleware.StaffRequired(db))

	excel.Get("/export", h.Export)
	excel.Get("/stats", h.Stats)
}
