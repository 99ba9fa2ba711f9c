package handlers

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/LALo99-vk/Photography-Website/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BookingHandler struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{DB: db, Now: time.Now}
}

type CreateBookingRequest struct {
	EventType          string   `json:"event_type" validate:"required"`
	PackageType        string   `json:"package_type" validate:"required"`
	EventDate          string   `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime          string   `json:"event_time"`
	Location           string   `json:"location"`
	Duration           int      `json:"duration"`
	GuestCount         *int     `json:"guest_count"`
	AdditionalServices []string `json:"additional_services"`
	SpecialRequests    string   `json:"special_requests"`
	BudgetRange        string   `json:"budget_range"`
	TotalAmount        float64  `json:"total_amount"`
}

// CreateBooking records a new booking for the caller, always starting
// out pending. The total amount is stored as submitted; the catalog is
// not consulted server-side.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	callerID := middleware.CallerID(c)
	callerEmail := middleware.CallerEmail(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	eventDate, _ := time.Parse("2006-01-02", req.EventDate)

	h.ensureProfile(callerID, callerEmail)

	booking := models.Booking{
		UserID:             callerID,
		EventType:          req.EventType,
		PackageType:        req.PackageType,
		EventDate:          eventDate,
		EventTime:          req.EventTime,
		Location:           req.Location,
		Duration:           req.Duration,
		GuestCount:         req.GuestCount,
		AdditionalServices: req.AdditionalServices,
		SpecialRequests:    req.SpecialRequests,
		BudgetRange:        req.BudgetRange,
		TotalAmount:        req.TotalAmount,
		Status:             models.BookingPending,
	}
	if err := h.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// ensureProfile creates a minimal client profile when the caller has
// none yet. A failure is logged but never blocks booking creation.
func (h *BookingHandler) ensureProfile(id, email string) {
	var count int64
	if err := h.DB.Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		log.Printf("Profile lookup failed for %s: %v", id, err)
		return
	}
	if count > 0 {
		return
	}

	profile := models.Profile{
		ID:          id,
		Email:       email,
		DisplayName: displayNameFromEmail(email),
		Role:        models.RoleClient,
	}
	if err := h.DB.Create(&profile).Error; err != nil {
		log.Printf("Profile creation failed for %s: %v", id, err)
	}
}

// GetUserBookings lists a user's bookings, newest event first. Deleted
// bookings are excluded here; the back office sees them elsewhere.
func (h *BookingHandler) GetUserBookings(c *fiber.Ctx) error {
	targetUserID := c.Params("userId")
	callerID := middleware.CallerID(c)
	callerRole := middleware.RoleFor(h.DB, callerID)

	if err := services.CanListBookingsFor(callerID, callerRole, targetUserID); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var bookings []models.Booking
	if err := h.DB.
		Preload("Profile").
		Where("user_id = ? AND deleted_at IS NULL", targetUserID).
		Order("event_date desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get bookings"})
	}

	return c.JSON(bookings)
}

// GetAllBookings is the staff listing with status/event-type filters and
// offset pagination. Route middleware already requires a staff role.
func (h *BookingHandler) GetAllBookings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
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

	var total int64
	countQuery.Count(&total)

	var bookings []models.Booking
	if err := query.
		Preload("Profile").
		Order("event_date desc").
		Offset(offset).Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get bookings"})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking models.Booking
	if err := h.DB.Preload("Profile").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	callerID := middleware.CallerID(c)
	callerRole := middleware.RoleFor(h.DB, callerID)
	if err := services.CanViewBooking(callerID, callerRole, booking.UserID); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	return c.JSON(booking)
}

type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Reason *string `json:"reason"`
	Notes  *string `json:"notes"`
}

// UpdateStatus moves a booking between the live statuses and stamps who
// did it. Every live status may transition to every other; deleted is
// not a valid target here.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	callerID := middleware.CallerID(c)
	callerRole, _ := c.Locals("role").(string)
	if callerRole == "" {
		callerRole = middleware.RoleFor(h.DB, callerID)
	}
	if err := services.CanUpdateStatus(callerRole, req.Status); err != nil {
		if errors.Is(err, services.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	var booking models.Booking
	if err := h.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	now := h.Now()
	booking.Status = req.Status
	booking.StatusUpdatedAt = &now
	booking.StatusUpdatedBy = &callerID
	if req.Reason != nil {
		booking.StatusReason = req.Reason
	}
	if req.Notes != nil {
		booking.StatusNotes = req.Notes
	}

	if err := h.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking status"})
	}

	return c.JSON(fiber.Map{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

type EditBookingRequest struct {
	EventType          *string   `json:"event_type"`
	PackageType        *string   `json:"package_type"`
	EventDate          *string   `json:"event_date"`
	EventTime          *string   `json:"event_time"`
	Location           *string   `json:"location"`
	Duration           *int      `json:"duration"`
	GuestCount         *int      `json:"guest_count"`
	AdditionalServices *[]string `json:"additional_services"`
	SpecialRequests    *string   `json:"special_requests"`
	BudgetRange        *string   `json:"budget_range"`
	TotalAmount        *float64  `json:"total_amount"`
}

// EditBooking applies a partial update. Owners may edit within an hour
// of creation while the booking is not confirmed or completed; admins
// may edit anything at any time.
func (h *BookingHandler) EditBooking(c *fiber.Ctx) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var req EditBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var booking models.Booking
	if err := h.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	callerID := middleware.CallerID(c)
	callerRole := middleware.RoleFor(h.DB, callerID)
	state := services.BookingState{
		OwnerID:   booking.UserID,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
		DeletedAt: booking.DeletedAt,
	}
	if err := services.CanEditBooking(callerID, callerRole, state, h.Now()); err != nil {
		if errors.Is(err, services.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.EventType != nil {
		booking.EventType = *req.EventType
	}
	if req.PackageType != nil {
		booking.PackageType = *req.PackageType
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid event date"})
		}
		booking.EventDate = eventDate
	}
	if req.EventTime != nil {
		booking.EventTime = *req.EventTime
	}
	if req.Location != nil {
		booking.Location = *req.Location
	}
	if req.Duration != nil {
		booking.Duration = *req.Duration
	}
	if req.GuestCount != nil {
		booking.GuestCount = req.GuestCount
	}
	if req.AdditionalServices != nil {
		booking.AdditionalServices = *req.AdditionalServices
	}
	if req.SpecialRequests != nil {
		booking.SpecialRequests = *req.SpecialRequests
	}
	if req.BudgetRange != nil {
		booking.BudgetRange = *req.BudgetRange
	}
	if req.TotalAmount != nil {
		booking.TotalAmount = *req.TotalAmount
	}

	if err := h.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	return c.JSON(fiber.Map{
		"message": "Booking updated successfully",
		"booking": booking,
	})
}

type DeleteBookingRequest struct {
	DeletionReason string `json:"deletionReason"`
}

// DeleteBooking soft-deletes a booking. Deleting twice is a conflict;
// the first deletion's reason and timestamp are never overwritten.
func (h *BookingHandler) DeleteBooking(c *fiber.Ctx) error {
	bookingID, err := bookingIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var req DeleteBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	reason := strings.TrimSpace(req.DeletionReason)
	if reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Deletion reason is required"})
	}

	var booking models.Booking
	if err := h.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	callerID := middleware.CallerID(c)
	callerRole := middleware.RoleFor(h.DB, callerID)
	state := services.BookingState{
		OwnerID:   booking.UserID,
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
		DeletedAt: booking.DeletedAt,
	}
	if err := services.CanSoftDeleteBooking(callerID, callerRole, state, h.Now()); err != nil {
		if errors.Is(err, services.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	now := h.Now()
	booking.Status = models.BookingDeleted
	booking.DeletedAt = &now
	booking.DeletionReason = &reason
	booking.DeletedBy = &callerID

	if err := h.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}

	return c.JSON(fiber.Map{"message": "Booking deleted successfully"})
}

func bookingIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, errors.New("invalid booking id")
	}
	return uint(id), nil
}
