package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
)

func PhotoRoutes(app *fiber.App, h *handlers.PhotoHandler) {
	photos := app.Group("/api/photos", middleware.Protected())

	photos.Post("/upload/:bookingId", h.UploadPhotos)
	photos.Get("/booking/:bookingId", h.GetBookingPhotos)
	photos.Get("/selections/:bookingId", h.GetSelections)
	photos.Post("/:photoId/select", h.ToggleSelection)
	photos.Delete("/:photoId", h.DeletePhoto)
}
