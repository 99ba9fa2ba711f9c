package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(app *fiber.App, db *gorm.DB, h *handlers.UserHandler) {
	users := app.Group("/api/users", middleware.Protected())

	users.Get("", middleware.AdminRequired(db), h.ListUsers)
	users.Get("/:userId", h.GetUser)
}
