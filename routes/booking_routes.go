package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BookingRoutes(app *fiber.App, db *gorm.DB, h *handlers.BookingHandler) {
	booking := app.Group("/api/bookings", middleware.Protected())

	booking.Post("", h.CreateBooking)
	booking.Get("/user/:userId", h.GetUserBookings)
	booking.Get("", middleware.StaffRequired(db), h.GetAllBookings)
	booking.Get("/:id", h.GetBooking)
	booking.Put("/:id", h.EditBooking)
	booking.Patch("/:id/status", middleware.StaffRequired(db), h.UpdateStatus)
	booking.Delete("/:id", h.DeleteBooking)
}
