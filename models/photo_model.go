package models

import (
	"time"
)

type Photo struct {
	ID           uint   `gorm:"primary_key" json:"id"`
	BookingID    uint   `gorm:"not null;index" json:"booking_id"`
	Filename     string `gorm:"size:255;not null" json:"filename"`
	OriginalName string `gorm:"size:255" json:"original_name"`
	FilePath     string `gorm:"type:text;not null" json:"file_path"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `gorm:"size:100" json:"mime_type"`
	UploadedBy   string `gorm:"size:64" json:"uploaded_by"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`

	UploadDate time.Time `json:"upload_date"`
}
