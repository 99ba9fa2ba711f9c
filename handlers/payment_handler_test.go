package handlers_test

import (
	"net/http"
	"testing"

	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/LALo99-vk/Photography-Website/routes"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newPaymentApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	app := fiber.New()
	routes.PaymentRoutes(app, db, handlers.NewPaymentHandler(db))
	return app
}

func TestCreatePayment(t *testing.T) {
	db := newTestDB(t)
	app := newPaymentApp(t, db)
	seedProfile(t, db, "client-1", "client1@example.com", models.RoleClient)
	booking := seedBooking(t, db, "client-1", models.BookingConfirmed, testClock)
	token := tokenFor(t, "client-1", "client1@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/payments", token, fiber.Map{
		"booking_id": booking.ID,
		"amount":     500,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var payment models.Payment
	db.First(&payment, "booking_id = ?", booking.ID)
	if payment.Currency != "USD" || payment.Status != "pending" {
		t.Errorf("defaults not applied: currency=%q status=%q", payment.Currency, payment.Status)
	}
	if payment.UserID != "client-1" {
		t.Errorf("user_id = %q, want caller id", payment.UserID)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/payments", token, fiber.Map{
		"booking_id": booking.ID,
		"amount":     500,
		"status":     "refunded",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown status = %d, want 400", resp.StatusCode)
	}
}

func TestGetUserPayments(t *testing.T) {
	db := newTestDB(t)
	app := newPaymentApp(t, db)
	seedProfile(t, db, "client-1", "client1@example.com", models.RoleClient)
	seedProfile(t, db, "client-2", "client2@example.com", models.RoleClient)
	seedProfile(t, db, "photog-1", "photog@example.com", models.RolePhotographer)
	booking := seedBooking(t, db, "client-1", models.BookingConfirmed, testClock)
	db.Create(&models.Payment{BookingID: booking.ID, UserID: "client-1", Amount: 500, Currency: "USD", Status: "succeeded"})

	resp := doJSON(t, app, http.MethodGet, "/api/payments/user/client-1", tokenFor(t, "client-1", "client1@example.com"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("self status = %d, want 200", resp.StatusCode)
	}
	var payments []models.Payment
	decodeInto(t, resp, &payments)
	if len(payments) != 1 {
		t.Fatalf("got %d payments, want 1", len(payments))
	}

	resp = doJSON(t, app, http.MethodGet, "/api/payments/user/client-1", tokenFor(t, "photog-1", "photog@example.com"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("staff status = %d, want 200", resp.StatusCode)
	}
	resp = doJSON(t, app, http.MethodGet, "/api/payments/user/client-1", tokenFor(t, "client-2", "client2@example.com"), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("other client status = %d, want 403", resp.StatusCode)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	db := newTestDB(t)
	app := newPaymentApp(t, db)
	seedProfile(t, db, "client-1", "client1@example.com", models.RoleClient)
	seedProfile(t, db, "photog-1", "photog@example.com", models.RolePhotographer)
	booking := seedBooking(t, db, "client-1", models.BookingConfirmed, testClock)
	payment := models.Payment{BookingID: booking.ID, UserID: "client-1", Amount: 500, Currency: "USD", Status: "pending"}
	db.Create(&payment)
	path := "/api/payments/" + itoa(payment.ID) + "/status"

	resp := doJSON(t, app, http.MethodPatch, path, tokenFor(t, "client-1", "client1@example.com"), fiber.Map{
		"status": "succeeded",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("client status = %d, want 403", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPatch, path, tokenFor(t, "photog-1", "photog@example.com"), fiber.Map{
		"status": "succeeded",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("staff status = %d, want 200", resp.StatusCode)
	}
	var updated models.Payment
	db.First(&updated, payment.ID)
	if updated.Status != "succeeded" {
		t.Errorf("status = %q, want succeeded", updated.Status)
	}

	resp = doJSON(t, app, http.MethodPatch, "/api/payments/9999/status", tokenFor(t, "photog-1", "photog@example.com"), fiber.Map{
		"status": "succeeded",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing payment status = %d, want 404", resp.StatusCode)
	}
}
