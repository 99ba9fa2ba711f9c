package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, h *handlers.AuthHandler) {
	auth := app.Group("/api/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	auth.Post("/profile", middleware.Protected(), h.UpsertProfile)
	auth.Get("/profile/:uid", middleware.Protected(), h.GetProfile)
	auth.Patch("/role/:uid", middleware.Protected(), middleware.AdminRequired(db), h.UpdateRole)
}
