package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

// GetStats returns booking counts per status for the dashboard.
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	type statusCount struct {
		Status string
		Count  int64
	}

	var counts []statusCount
	if err := h.DB.Model(&models.Booking{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get statistics"})
	}

	stats := fiber.Map{
		"total":                  int64(0),
		models.BookingPending:    int64(0),
		models.BookingConfirmed:  int64(0),
		models.BookingCompleted:  int64(0),
		models.BookingCancelled:  int64(0),
		models.BookingCouldNotDo: int64(0),
		models.BookingDeleted:    int64(0),
	}
	var total int64
	for _, sc := range counts {
		stats[sc.Status] = sc.Count
		total += sc.Count
	}
	stats["total"] = total

	return c.JSON(stats)
}

// GetAllBookings is the back-office listing. Unlike the staff listing it
// includes soft-deleted bookings and supports event-date range filters.
func (h *AdminHandler) GetAllBookings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.Booking{})
	countQuery := h.DB.Model(&models.Booking{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}
	if eventType := c.Query("eventType"); eventType != "" {
		query = query.Where("event_type = ?", eventType)
		countQuery = countQuery.Where("event_type = ?", eventType)
	}
	if startDate := c.Query("startDate"); startDate != "" {
		query = query.Where("event_date >= ?", startDate)
		countQuery = countQuery.Where("event_date >= ?", startDate)
	}
	if endDate := c.Query("endDate"); endDate != "" {
		query = query.Where("event_date <= ?", endDate)
		countQuery = countQuery.Where("event_date <= ?", endDate)
	}

	var total int64
	countQuery.Count(&total)

	var bookings []models.Booking
	if err := query.
		Preload("Profile").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get bookings"})
	}

	return c.JSON(fiber.Map{
		"bookings":   bookings,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

// GetBooking returns one booking with the owner profile and, when set,
// the profile of whoever last changed the status.
func (h *AdminHandler) GetBooking(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking models.Booking
	if err := h.DB.Preload("Profile").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	var statusUpdatedBy *models.Profile
	if booking.StatusUpdatedBy != nil {
		var p models.Profile
		if err := h.DB.Select("id", "display_name", "email").
			First(&p, "id = ?", *booking.StatusUpdatedBy).Error; err == nil {
			statusUpdatedBy = &p
		}
	}

	return c.JSON(fiber.Map{
		"booking":                   booking,
		"status_updated_by_profile": statusUpdatedBy,
	})
}

// GetUsers lists profiles with pagination, an optional role filter and a
// name/email search.
func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := h.DB.Model(&models.Profile{})
	countQuery := h.DB.Model(&models.Profile{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
		countQuery = countQuery.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + search + "%"
		query = query.Where("display_name ILIKE ? OR email ILIKE ?", term, term)
		countQuery = countQuery.Where("display_name ILIKE ? OR email ILIKE ?", term, term)
	}

	var total int64
	countQuery.Count(&total)

	var users []models.Profile
	if err := query.
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get users"})
	}

	return c.JSON(fiber.Map{
		"users":      users,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": int(math.Ceil(float64(total) / float64(limit))),
	})
}

// GetUser returns one profile together with all their bookings,
// including soft-deleted ones.
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	var user models.Profile
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var bookings []models.Booking
	if err := h.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get user details"})
	}

	return c.JSON(fiber.Map{"user": user, "bookings": bookings})
}

// GetAdmins lists back-office accounts (admins and photographers).
func (h *AdminHandler) GetAdmins(c *fiber.Ctx) error {
	var admins []models.Profile
	if err := h.DB.
		Where("role IN ?", []string{models.RoleAdmin, models.RolePhotographer}).
		Order("created_at desc").
		Find(&admins).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get admins"})
	}
	return c.JSON(admins)
}

type CreateAdminRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"required,min=2"`
	Role        string `json:"role"`
}

// CreateAdmin provisions a new back-office account with role admin or
// photographer.
func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var req CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Role == "" {
		req.Role = models.RoleAdmin
	}
	if req.Role != models.RoleAdmin && req.Role != models.RolePhotographer {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid role. Must be admin or photographer"})
	}

	var count int64
	h.DB.Model(&models.Profile{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	admin := models.Profile{
		ID:          uuid.NewString(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    string(hashedPassword),
		Role:        req.Role,
	}
	if err := h.DB.Create(&admin).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create admin account"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin account created successfully",
		"admin":   admin,
	})
}

// GetSettings returns the flat key/value settings store.
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := h.DB.Order("setting_key").Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get settings"})
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.SettingKey] = s.SettingValue
	}
	return c.JSON(out)
}

type UpdateSettingRequest struct {
	SettingValue string `json:"setting_value" validate:"required"`
}

// UpdateSetting upserts one settings key. Schedule changes for the
// export job take effect on the next process start.
func (h *AdminHandler) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var req UpdateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	setting := models.Setting{SettingKey: key, SettingValue: req.SettingValue}
	if err := h.DB.Save(&setting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update setting"})
	}

	return c.JSON(fiber.Map{"message": "Setting updated successfully", "setting": setting})
}
