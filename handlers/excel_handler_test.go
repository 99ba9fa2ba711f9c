package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/LALo99-vk/Photography-Website/handlers"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/LALo99-vk/Photography-Website/routes"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newExcelApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := handlers.NewExcelHandler(db)
	h.Now = func() time.Time { return testClock }
	routes.ExcelRoutes(app, db, h)
	return app
}

func TestExcelExport(t *testing.T) {
	db := newTestDB(t)
	app := newExcelApp(t, db)
	seedProfile(t, db, "client-1", "client1@example.com", models.RoleClient)
	seedProfile(t, db, "photog-1", "photog@example.com", models.RolePhotographer)
	seedBooking(t, db, "client-1", models.BookingConfirmed, testClock)

	resp := doJSON(t, app, http.MethodGet, "/api/excel/export", tokenFor(t, "client-1", "client1@example.com"), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("client status = %d, want 403", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/excel/export", tokenFor(t, "photog-1", "photog@example.com"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("staff status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "photography_report_2025-06-01.xlsx") {
		t.Errorf("Content-Disposition = %q", got)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	// xlsx files are zip archives.
	if len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("response body is not a spreadsheet")
	}
}

func TestExcelStats(t *testing.T) {
	db := newTestDB(t)
	app := newExcelApp(t, db)
	seedProfile(t, db, "client-1", "client1@example.com", models.RoleClient)
	seedProfile(t, db, "photog-1", "photog@example.com", models.RolePhotographer)
	booking := seedBooking(t, db, "client-1", models.BookingConfirmed, testClock)
	photo := seedPhoto(t, db, booking.ID, "a.jpg")
	db.Create(&models.PhotoSelection{PhotoID: photo.ID, UserID: "client-1", BookingID: booking.ID, SelectedAt: testClock})
	db.Create(&models.Payment{BookingID: booking.ID, UserID: "client-1", Amount: 500, Currency: "USD", Status: "succeeded"})
	db.Create(&models.Payment{BookingID: booking.ID, UserID: "client-1", Amount: 100, Currency: "USD", Status: "failed"})

	resp := doJSON(t, app, http.MethodGet, "/api/excel/stats", tokenFor(t, "photog-1", "photog@example.com"), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)

	bookings := body["bookings"].(map[string]interface{})
	if bookings["total_bookings"].(float64) != 1 {
		t.Errorf("total_bookings = %v, want 1", bookings["total_bookings"])
	}
	selections := body["selections"].(map[string]interface{})
	if selections["clients_with_selections"].(float64) != 1 {
		t.Errorf("clients_with_selections = %v, want 1", selections["clients_with_selections"])
	}
	revenue := body["revenue"].(map[string]interface{})
	// Only succeeded payments count toward revenue.
	if revenue["total_revenue"].(float64) != 500 {
		t.Errorf("total_revenue = %v, want 500", revenue["total_revenue"])
	}
	if revenue["total_payments"].(float64) != 2 {
		t.Errorf("total_payments = %v, want 2", revenue["total_payments"])
	}
}
