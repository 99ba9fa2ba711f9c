package services

import (
	"testing"
	"time"

	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newExportDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Profile{}, &models.Booking{}, &models.Photo{},
		&models.PhotoSelection{}, &models.Payment{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func seedExportData(t *testing.T, db *gorm.DB) {
	t.Helper()
	profile := models.Profile{ID: "client-1", Email: "c@example.com", DisplayName: "Cora", Password: "x", Role: models.RoleClient}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatal(err)
	}

	bookings := []models.Booking{
		{UserID: "client-1", EventType: "wedding", PackageType: "gold",
			EventDate: time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC), TotalAmount: 2500, Status: models.BookingConfirmed},
		{UserID: "client-1", EventType: "portrait", PackageType: "basic",
			EventDate: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), TotalAmount: 400, Status: models.BookingCompleted},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	photo := models.Photo{BookingID: bookings[1].ID, Filename: "a.jpg", FilePath: "https://cdn.test/a.jpg", UploadedBy: "photog-1", UploadDate: time.Now()}
	if err := db.Create(&photo).Error; err != nil {
		t.Fatal(err)
	}
	selection := models.PhotoSelection{PhotoID: photo.ID, UserID: "client-1", BookingID: bookings[1].ID, SelectedAt: time.Now()}
	if err := db.Create(&selection).Error; err != nil {
		t.Fatal(err)
	}
	payment := models.Payment{BookingID: bookings[0].ID, UserID: "client-1", Amount: 500, Currency: "USD", Status: "succeeded"}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatal(err)
	}
}

func TestBuildExportWorkbook(t *testing.T) {
	db := newExportDB(t)
	seedExportData(t, db)

	f, err := BuildExportWorkbook(db, ExportFilter{})
	if err != nil {
		t.Fatalf("BuildExportWorkbook() error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	if err != nil {
		t.Fatalf("read Bookings sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Bookings rows = %d, want header + 2", len(rows))
	}
	// Newest event date first.
	if rows[1][6] != "2025-09-20" {
		t.Errorf("first booking event date = %q, want 2025-09-20", rows[1][6])
	}
	// Selected Photos Count for the portrait booking.
	if rows[2][13] != "1" {
		t.Errorf("selected photos count = %q, want 1", rows[2][13])
	}

	selRows, err := f.GetRows("Photo Selections")
	if err != nil {
		t.Fatalf("read Photo Selections sheet: %v", err)
	}
	if len(selRows) != 2 {
		t.Fatalf("Photo Selections rows = %d, want header + 1", len(selRows))
	}
	if selRows[1][5] != "a.jpg" {
		t.Errorf("selection filename = %q, want a.jpg", selRows[1][5])
	}

	payRows, err := f.GetRows("Payments")
	if err != nil {
		t.Fatalf("read Payments sheet: %v", err)
	}
	if len(payRows) != 2 {
		t.Fatalf("Payments rows = %d, want header + 1", len(payRows))
	}
}

func TestBuildExportWorkbookDateFilter(t *testing.T) {
	db := newExportDB(t)
	seedExportData(t, db)

	f, err := BuildExportWorkbook(db, ExportFilter{StartDate: "2025-06-01"})
	if err != nil {
		t.Fatalf("BuildExportWorkbook() error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	if err != nil {
		t.Fatalf("read Bookings sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("filtered Bookings rows = %d, want header + 1", len(rows))
	}
	if rows[1][4] != "wedding" {
		t.Errorf("kept booking = %q, want the September wedding", rows[1][4])
	}

	// The March selection falls outside the filter too.
	selRows, err := f.GetRows("Photo Selections")
	if err != nil {
		t.Fatalf("read Photo Selections sheet: %v", err)
	}
	if len(selRows) != 1 {
		t.Fatalf("filtered Photo Selections rows = %d, want header only", len(selRows))
	}
}
