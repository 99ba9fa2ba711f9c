package handlers

import (
	"strconv"

	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PaymentHandler struct {
	DB *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db}
}

type CreatePaymentRequest struct {
	BookingID             uint    `json:"booking_id" validate:"required"`
	Amount                float64 `json:"amount" validate:"required,gt=0"`
	Currency              string  `json:"currency"`
	PaymentMethod         *string `json:"payment_method"`
	StripePaymentIntentID *string `json:"stripe_payment_intent_id"`
	Status                string  `json:"status"`
}

func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
	if req.Status == "" {
		req.Status = "pending"
	}
	if !models.IsValidPaymentStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	payment := models.Payment{
		BookingID:             req.BookingID,
		UserID:                middleware.CallerID(c),
		Amount:                req.Amount,
		Currency:              req.Currency,
		PaymentMethod:         req.PaymentMethod,
		StripePaymentIntentID: req.StripePaymentIntentID,
		Status:                req.Status,
	}
	if err := h.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create payment"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Payment created successfully",
		"paymentId": payment.ID,
	})
}

func (h *PaymentHandler) GetUserPayments(c *fiber.Ctx) error {
	targetUserID := c.Params("userId")
	callerID := middleware.CallerID(c)

	if callerID != targetUserID && !models.IsStaffRole(middleware.RoleFor(h.DB, callerID)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var payments []models.Payment
	if err := h.DB.
		Where("user_id = ?", targetUserID).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get payments"})
	}

	return c.JSON(payments)
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdatePaymentStatus is a staff operation; the route carries the role
// middleware.
func (h *PaymentHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	paymentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var req UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if !models.IsValidPaymentStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	result := h.DB.Model(&models.Payment{}).Where("id = ?", paymentID).Update("status", req.Status)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment status"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	return c.JSON(fiber.Map{"message": "Payment status updated successfully"})
}
