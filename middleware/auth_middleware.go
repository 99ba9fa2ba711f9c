package middleware

import (
	config "github.com/LALo99-vk/Photography-Website/configs"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "No token provided"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid token"})
}

// CallerID returns the authenticated profile id from the verified token.
func CallerID(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := claims["user_id"].(string)
	return id
}

func CallerEmail(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	email, _ := claims["email"].(string)
	return email
}

// RoleFor loads the caller's role from the profiles table. Roles are not
// carried in the token so an admin demoting a user takes effect on the
// user's next request.
func RoleFor(db *gorm.DB, userID string) string {
	var profile models.Profile
	if err := db.Select("role").First(&profile, "id = ?", userID).Error; err != nil {
		return ""
	}
	return profile.Role
}

// AdminRequired allows only callers whose profile role is admin.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := RoleFor(db, CallerID(c))
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		c.Locals("role", role)
		return c.Next()
	}
}

// StaffRequired allows admins and photographers.
func StaffRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := RoleFor(db, CallerID(c))
		if !models.IsStaffRole(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}
		c.Locals("role", role)
		return c.Next()
	}
}
