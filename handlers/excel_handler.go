package handlers

import (
	"fmt"
	"time"

	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/LALo99-vk/Photography-Website/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExcelHandler struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewExcelHandler(db *gorm.DB) *ExcelHandler {
	return &ExcelHandler{DB: db, Now: time.Now}
}

// Export streams the three-sheet report as a download. Staff only via
// route middleware; optional startDate/endDate narrow by event date.
func (h *ExcelHandler) Export(c *fiber.Ctx) error {
	filter := services.ExportFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	workbook, err := services.BuildExportWorkbook(h.DB, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate Excel report"})
	}

	filename := fmt.Sprintf("photography_report_%s.xlsx", h.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := workbook.Write(c.Response().BodyWriter()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate Excel report"})
	}
	return nil
}

// Stats returns the aggregate numbers shown next to the export button.
func (h *ExcelHandler) Stats(c *fiber.Ctx) error {
	var totalBookings, totalPhotos, totalSelections, totalPayments int64
	h.DB.Model(&models.Booking{}).Count(&totalBookings)
	h.DB.Model(&models.Photo{}).Count(&totalPhotos)
	h.DB.Model(&models.PhotoSelection{}).Count(&totalSelections)
	h.DB.Model(&models.Payment{}).Count(&totalPayments)

	var clientsWithSelections int64
	h.DB.Model(&models.PhotoSelection{}).Distinct("user_id").Count(&clientsWithSelections)

	var totalRevenue float64
	h.DB.Model(&models.Payment{}).
		Where("status = ?", "succeeded").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue)

	return c.JSON(fiber.Map{
		"bookings": fiber.Map{"total_bookings": totalBookings},
		"photos":   fiber.Map{"total_photos": totalPhotos},
		"selections": fiber.Map{
			"total_selections":        totalSelections,
			"clients_with_selections": clientsWithSelections,
		},
		"revenue": fiber.Map{
			"total_revenue":  totalRevenue,
			"total_payments": totalPayments,
		},
	})
}
