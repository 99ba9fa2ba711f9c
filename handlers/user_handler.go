package handlers

import (
	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// ListUsers returns every profile, newest first. Admin only via route
// middleware.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var users []models.Profile
	if err := h.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get users"})
	}
	return c.JSON(users)
}

// GetUser returns one profile; a user can fetch their own, staff can
// fetch anyone's.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	targetUserID := c.Params("userId")
	callerID := middleware.CallerID(c)

	if callerID != targetUserID && !models.IsStaffRole(middleware.RoleFor(h.DB, callerID)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var user models.Profile
	if err := h.DB.First(&user, "id = ?", targetUserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}
