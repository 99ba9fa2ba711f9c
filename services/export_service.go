package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// headerColor matches the copper accent used across the site.
const headerColor = "D4AF37"

type bookingExportRow struct {
	ID                  uint
	DisplayName         string
	Email               string
	Phone               *string
	EventType           string
	PackageType         string
	EventDate           time.Time
	EventTime           string
	Location            string
	Duration            int
	GuestCount          *int
	Status              string
	TotalAmount         float64
	SelectedPhotosCount int64
	CreatedAt           time.Time
}

type selectionExportRow struct {
	BookingID   uint
	DisplayName string
	Email       string
	EventType   string
	EventDate   time.Time
	Filename    string
	SelectedAt  time.Time
	Notes       string
}

type paymentExportRow struct {
	ID            uint
	BookingID     uint
	DisplayName   string
	Amount        float64
	Currency      string
	Status        string
	PaymentMethod *string
	CreatedAt     time.Time
}

// ExportFilter narrows the bookings and selections sheets by event date.
// Zero values mean no bound.
type ExportFilter struct {
	StartDate string
	EndDate   string
}

// BuildExportWorkbook assembles the three-sheet spreadsheet (bookings
// with selection counts, photo selections, payments) used by both the
// scheduled export and the on-demand download.
func BuildExportWorkbook(db *gorm.DB, filter ExportFilter) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := addBookingsSheet(f, db, filter, headerStyle); err != nil {
		return nil, err
	}
	if err := addSelectionsSheet(f, db, filter, headerStyle); err != nil {
		return nil, err
	}
	if err := addPaymentsSheet(f, db, headerStyle); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func addBookingsSheet(f *excelize.File, db *gorm.DB, filter ExportFilter, headerStyle int) error {
	const sheet = "Bookings"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	headers := []interface{}{
		"Booking ID", "Client Name", "Email", "Phone", "Event Type",
		"Package", "Event Date", "Event Time", "Location", "Duration (hrs)",
		"Guest Count", "Status", "Total Amount", "Selected Photos Count",
		"Created At",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "O", 18)
	f.SetCellStyle(sheet, "A1", "O1", headerStyle)

	query := db.Table("bookings").
		Select("bookings.id, profiles.display_name, profiles.email, profiles.phone, "+
			"bookings.event_type, bookings.package_type, bookings.event_date, bookings.event_time, "+
			"bookings.location, bookings.duration, bookings.guest_count, bookings.status, "+
			"bookings.total_amount, count(ps.id) AS selected_photos_count, bookings.created_at").
		Joins("JOIN profiles ON bookings.user_id = profiles.id").
		Joins("LEFT JOIN photo_selections ps ON bookings.id = ps.booking_id").
		Group("bookings.id, profiles.id").
		Order("bookings.event_date desc")
	query = applyEventDateFilter(query, "bookings", filter)

	var rows []bookingExportRow
	if err := query.Scan(&rows).Error; err != nil {
		return fmt.Errorf("query bookings for export: %w", err)
	}

	for i, r := range rows {
		phone := ""
		if r.Phone != nil {
			phone = *r.Phone
		}
		guests := 0
		if r.GuestCount != nil {
			guests = *r.GuestCount
		}
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			r.ID, r.DisplayName, r.Email, phone, r.EventType,
			r.PackageType, r.EventDate.Format("2006-01-02"), r.EventTime,
			r.Location, r.Duration, guests, r.Status, r.TotalAmount,
			r.SelectedPhotosCount, r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func addSelectionsSheet(f *excelize.File, db *gorm.DB, filter ExportFilter, headerStyle int) error {
	const sheet = "Photo Selections"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	headers := []interface{}{
		"Booking ID", "Client Name", "Email", "Event Type", "Event Date",
		"Photo Filename", "Selected At", "Notes",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "H", 20)
	f.SetCellStyle(sheet, "A1", "H1", headerStyle)

	query := db.Table("photo_selections ps").
		Select("ps.booking_id, profiles.display_name, profiles.email, "+
			"bookings.event_type, bookings.event_date, photos.filename, ps.selected_at, ps.notes").
		Joins("JOIN photos ON ps.photo_id = photos.id").
		Joins("JOIN bookings ON ps.booking_id = bookings.id").
		Joins("JOIN profiles ON ps.user_id = profiles.id").
		Order("ps.selected_at desc")
	query = applyEventDateFilter(query, "bookings", filter)

	var rows []selectionExportRow
	if err := query.Scan(&rows).Error; err != nil {
		return fmt.Errorf("query selections for export: %w", err)
	}

	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			r.BookingID, r.DisplayName, r.Email, r.EventType,
			r.EventDate.Format("2006-01-02"), r.Filename,
			r.SelectedAt.Format("2006-01-02 15:04:05"), r.Notes,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func addPaymentsSheet(f *excelize.File, db *gorm.DB, headerStyle int) error {
	const sheet = "Payments"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	headers := []interface{}{
		"Payment ID", "Booking ID", "Client Name", "Amount", "Currency",
		"Status", "Payment Method", "Created At",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "H", 16)
	f.SetCellStyle(sheet, "A1", "H1", headerStyle)

	var rows []paymentExportRow
	if err := db.Table("payments").
		Select("payments.id, payments.booking_id, profiles.display_name, payments.amount, "+
			"payments.currency, payments.status, payments.payment_method, payments.created_at").
		Joins("JOIN profiles ON payments.user_id = profiles.id").
		Order("payments.created_at desc").
		Scan(&rows).Error; err != nil {
		return fmt.Errorf("query payments for export: %w", err)
	}

	for i, r := range rows {
		method := ""
		if r.PaymentMethod != nil {
			method = *r.PaymentMethod
		}
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{
			r.ID, r.BookingID, r.DisplayName, r.Amount, r.Currency,
			r.Status, method, r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func applyEventDateFilter(query *gorm.DB, table string, filter ExportFilter) *gorm.DB {
	if filter.StartDate != "" {
		query = query.Where(table+".event_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where(table+".event_date <= ?", filter.EndDate)
	}
	return query
}
