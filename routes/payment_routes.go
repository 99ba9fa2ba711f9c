package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PaymentRoutes(app *fiber.App, db *gorm.DB, h *handlers.PaymentHandler) {
	payments := app.Group("/api/payments", middleware.Protected())

	payments.Post("", h.CreatePayment)
	payments.Get("/user/:userId", h.GetUserPayments)
	payments.Patch("/:id/status", middleware.StaffRequired(db), h.UpdatePaymentStatus)
}
