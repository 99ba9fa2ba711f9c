package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AdminRoutes(app *fiber.App, db *gorm.DB, h *handlers.AdminHandler, bookings *handlers.BookingHandler) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.AdminRequired(db))

	admin.Get("/stats", h.GetStats)

	admin.Get("/bookings", h.GetAllBookings)
	admin.Get("/bookings/:id", h.GetBooking)
	admin.Patch("/bookings/:id/status", bookings.UpdateStatus)

	admin.Get("/users", h.GetUsers)
	admin.Get("/users/:id", h.GetUser)

	admin.Get("/admins", h.GetAdmins)
	admin.Post("/admins", h.CreateAdmin)

	admin.Get("/settings", h.GetSettings)
	admin.Put("/settings/:key", h.UpdateSetting)
}
