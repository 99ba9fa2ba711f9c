package handlers

import (
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/LALo99-vk/Photography-Website/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PricingHandler struct {
	DB *gorm.DB
}

func NewPricingHandler(db *gorm.DB) *PricingHandler {
	return &PricingHandler{DB: db}
}

// GetPricing is the public catalog, grouped into packages and add-ons.
func (h *PricingHandler) GetPricing(c *fiber.Ctx) error {
	var items []models.PricingItem
	if err := h.DB.
		Order("category asc").
		Order("display_order asc").
		Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load pricing"})
	}

	packages := make([]models.PricingItem, 0)
	addons := make([]models.PricingItem, 0)
	for _, item := range items {
		if item.Category == models.PricingPackage {
			packages = append(packages, item)
		} else {
			addons = append(addons, item)
		}
	}

	return c.JSON(fiber.Map{"packages": packages, "addons": addons})
}

type CreatePricingRequest struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name" validate:"required"`
	Category     string   `json:"category" validate:"required,oneof=package addon"`
	Price        float64  `json:"price" validate:"gte=0"`
	Duration     *string  `json:"duration"`
	Features     []string `json:"features"`
	DisplayOrder int      `json:"display_order"`
}

// CreatePricing adds a catalog row. The slug falls back to a form of the
// name; add-ons never carry a duration.
func (h *PricingHandler) CreatePricing(c *fiber.Ctx) error {
	var req CreatePricingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot derive a slug from the name"})
	}

	var duration *string
	if req.Category == models.PricingPackage {
		duration = req.Duration
	}

	callerID := middleware.CallerID(c)
	item := models.PricingItem{
		Slug:         slug,
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		Duration:     duration,
		Features:     req.Features,
		DisplayOrder: req.DisplayOrder,
		UpdatedBy:    &callerID,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Failed to create pricing item"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pricing item created",
		"pricing": item,
	})
}

type UpdatePricingRequest struct {
	Name         *string   `json:"name"`
	Price        *float64  `json:"price"`
	Duration     *string   `json:"duration"`
	Features     *[]string `json:"features"`
	DisplayOrder *int      `json:"display_order"`
}

// UpdatePricing applies a partial update to one catalog row by slug.
func (h *PricingHandler) UpdatePricing(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var item models.PricingItem
	if err := h.DB.First(&item, "slug = ?", slug).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pricing item not found"})
	}

	var req UpdatePricingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Duration != nil {
		item.Duration = req.Duration
	}
	if req.Features != nil {
		item.Features = *req.Features
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	callerID := middleware.CallerID(c)
	item.UpdatedBy = &callerID

	if err := h.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update pricing"})
	}

	return c.JSON(fiber.Map{"message": "Pricing updated", "pricing": item})
}
