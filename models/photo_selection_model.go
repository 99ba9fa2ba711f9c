package models

import (
	"time"
)

// PhotoSelection joins a photo to the client who picked it. A (photo,
// user) pair has at most one row; selecting again removes it.
type PhotoSelection struct {
	ID        uint   `gorm:"primary_key" json:"id"`
	PhotoID   uint   `gorm:"not null;uniqueIndex:idx_photo_user" json:"photo_id"`
	UserID    string `gorm:"size:64;not null;uniqueIndex:idx_photo_user" json:"user_id"`
	BookingID uint   `gorm:"not null;index" json:"booking_id"`
	Notes     string `gorm:"type:text" json:"notes"`

	Photo Photo `gorm:"foreignkey:PhotoID" json:"-"`

	SelectedAt time.Time `json:"selected_at"`
}
