package handlers

import (
	"errors"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/LALo99-vk/Photography-Website/middleware"
	"github.com/LALo99-vk/Photography-Website/models"
	"github.com/LALo99-vk/Photography-Website/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	maxUploadFiles       = 50
	maxUploadSize        = 10 * 1024 * 1024
	defaultMaxSelections = 20
)

var allowedPhotoExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

type PhotoHandler struct {
	DB    *gorm.DB
	Store storage.ObjectStore
	Now   func() time.Time
}

func NewPhotoHandler(db *gorm.DB, store storage.ObjectStore) *PhotoHandler {
	return &PhotoHandler{DB: db, Store: store, Now: time.Now}
}

type uploadedPhoto struct {
	ID           uint   `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// UploadPhotos stores delivery photos for a booking. Staff only. A file
// that fails to store is skipped; the response reports what succeeded.
func (h *PhotoHandler) UploadPhotos(c *fiber.Ctx) error {
	callerID := middleware.CallerID(c)
	if !models.IsStaffRole(middleware.RoleFor(h.DB, callerID)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	bookingID, err := strconv.Atoi(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var count int64
	h.DB.Model(&models.Booking{}).Where("id = ?", bookingID).Count(&count)
	if count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["photos"]) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No files uploaded"})
	}

	files := form.File["photos"]
	if len(files) > maxUploadFiles {
		files = files[:maxUploadFiles]
	}

	var uploaded []uploadedPhoto
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedPhotoExtensions[ext] || file.Size > maxUploadSize {
			log.Printf("Skipping %s: not an allowed image or too large", file.Filename)
			continue
		}

		src, err := file.Open()
		if err != nil {
			log.Printf("Skipping %s: %v", file.Filename, err)
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			log.Printf("Skipping %s: %v", file.Filename, err)
			continue
		}

		storedName := uuid.NewString() + ext
		url, err := h.Store.Upload(c.Context(), storedName, data)
		if err != nil {
			log.Printf("Upload failed for %s: %v", file.Filename, err)
			continue
		}

		photo := models.Photo{
			BookingID:    uint(bookingID),
			Filename:     storedName,
			OriginalName: file.Filename,
			FilePath:     url,
			FileSize:     file.Size,
			MimeType:     file.Header.Get("Content-Type"),
			UploadedBy:   callerID,
			UploadDate:   h.Now(),
		}
		if err := h.DB.Create(&photo).Error; err != nil {
			log.Printf("Photo row insert failed for %s: %v", file.Filename, err)
			continue
		}

		uploaded = append(uploaded, uploadedPhoto{
			ID:           photo.ID,
			Filename:     photo.Filename,
			OriginalName: photo.OriginalName,
			Size:         photo.FileSize,
			URL:          photo.FilePath,
		})
	}

	if len(uploaded) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photos"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Photos uploaded successfully",
		"photos":  uploaded,
	})
}

type photoWithSelection struct {
	models.Photo
	SelectionID *uint      `json:"selection_id"`
	SelectedAt  *time.Time `json:"selected_at"`
	Notes       *string    `json:"notes"`
}

// GetBookingPhotos returns a booking's photos with the caller's own
// selection state joined in.
func (h *PhotoHandler) GetBookingPhotos(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking models.Booking
	if err := h.DB.Select("id", "user_id").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	callerID := middleware.CallerID(c)
	if callerID != booking.UserID && !models.IsStaffRole(middleware.RoleFor(h.DB, callerID)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var photos []photoWithSelection
	if err := h.DB.Table("photos").
		Select("photos.*, ps.id AS selection_id, ps.selected_at, ps.notes").
		Joins("LEFT JOIN photo_selections ps ON ps.photo_id = photos.id AND ps.user_id = ?", callerID).
		Where("photos.booking_id = ?", bookingID).
		Order("photos.upload_date desc").
		Scan(&photos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get photos"})
	}

	return c.JSON(photos)
}

type SelectPhotoRequest struct {
	Notes string `json:"notes"`
}

// ToggleSelection selects or deselects a photo for the booking's owning
// client. Selecting is capped by max_photo_selections; deselecting is
// always allowed.
func (h *PhotoHandler) ToggleSelection(c *fiber.Ctx) error {
	photoID, err := strconv.Atoi(c.Params("photoId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid photo ID"})
	}

	var req SelectPhotoRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var photo models.Photo
	if err := h.DB.Preload("Booking").First(&photo, "id = ?", photoID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
	}

	callerID := middleware.CallerID(c)
	if callerID != photo.Booking.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var existing models.PhotoSelection
	err = h.DB.Where("photo_id = ? AND user_id = ?", photoID, callerID).First(&existing).Error
	if err == nil {
		if err := h.DB.Delete(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deselect photo"})
		}
		return c.JSON(fiber.Map{"message": "Photo deselected", "selected": false})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to select photo"})
	}

	maxSelections := h.maxSelections()

	var current int64
	h.DB.Model(&models.PhotoSelection{}).
		Where("user_id = ? AND booking_id = ?", callerID, photo.BookingID).
		Count(&current)
	if current >= int64(maxSelections) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maximum " + strconv.Itoa(maxSelections) + " photos can be selected",
		})
	}

	selection := models.PhotoSelection{
		PhotoID:    uint(photoID),
		UserID:     callerID,
		BookingID:  photo.BookingID,
		Notes:      req.Notes,
		SelectedAt: h.Now(),
	}
	if err := h.DB.Create(&selection).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to select photo"})
	}

	return c.JSON(fiber.Map{"message": "Photo selected", "selected": true})
}

// maxSelections reads the configured cap, falling back to the default.
// The cap only gates new selections; lowering it never invalidates rows
// that already exist.
func (h *PhotoHandler) maxSelections() int {
	var setting models.Setting
	if err := h.DB.First(&setting, "setting_key = ?", models.SettingMaxPhotoSelections).Error; err != nil {
		return defaultMaxSelections
	}
	max, err := strconv.Atoi(setting.SettingValue)
	if err != nil || max < 1 {
		return defaultMaxSelections
	}
	return max
}

// GetSelections lists the caller's selected photos for a booking, with
// the photo columns joined in so the client can render them directly.
func (h *PhotoHandler) GetSelections(c *fiber.Ctx) error {
	bookingID, err := strconv.Atoi(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	var booking models.Booking
	if err := h.DB.Select("id", "user_id").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	callerID := middleware.CallerID(c)
	if callerID != booking.UserID && !models.IsStaffRole(middleware.RoleFor(h.DB, callerID)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var selections []photoWithSelection
	if err := h.DB.Table("photo_selections ps").
		Select("photos.*, ps.id AS selection_id, ps.selected_at, ps.notes").
		Joins("JOIN photos ON photos.id = ps.photo_id").
		Where("ps.booking_id = ? AND ps.user_id = ?", bookingID, callerID).
		Order("ps.selected_at desc").
		Scan(&selections).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get selections"})
	}

	return c.JSON(selections)
}

// DeletePhoto removes a photo and its selections. Staff only. The
// object-store removal is best effort; the rows are authoritative.
func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	callerID := middleware.CallerID(c)
	if !models.IsStaffRole(middleware.RoleFor(h.DB, callerID)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	photoID, err := strconv.Atoi(c.Params("photoId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid photo ID"})
	}

	var photo models.Photo
	if err := h.DB.First(&photo, "id = ?", photoID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
	}

	if err := h.DB.Where("photo_id = ?", photoID).Delete(&models.PhotoSelection{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete photo"})
	}
	if err := h.DB.Delete(&photo).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete photo"})
	}

	if h.Store != nil {
		name := strings.TrimSuffix(photo.Filename, filepath.Ext(photo.Filename))
		if err := h.Store.Delete(c.Context(), name); err != nil {
			log.Printf("Object store delete failed for %s: %v", photo.Filename, err)
		}
	}

	return c.JSON(fiber.Map{"message": "Photo deleted successfully"})
}
