package routes

import (
	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PricingRoutes(app *fiber.App, db *gorm.DB, h *handlers.PricingHandler) {
	pricing := app.Group("/api/pricing")

	// The catalog itself is public; only admins change it.
	pricing.Get("", h.GetPricing)
	pricing.Post("", middleware.Protected(), middleware.AdminRequired(db), h.CreatePricing)
	pricing.Put("/:slug", middleware.Protected(), middleware.AdminRequired(db), h.UpdatePricing)
}
