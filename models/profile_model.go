package models

import (
	"time"
)

const (
	RoleClient       = "client"
	RolePhotographer = "photographer"
	RoleAdmin        = "admin"
)

// Profile is the identity record for every caller. The ID is the stable
// subject issued at registration and is referenced by bookings, photos,
// selections and payments.
type Profile struct {
	ID          string  `gorm:"size:64;primary_key" json:"id"`
	Email       string  `gorm:"size:255;not null;unique" json:"email"`
	DisplayName string  `gorm:"size:255;not null" json:"display_name"`
	Password    string  `gorm:"not null" json:"-"`
	Role        string  `gorm:"size:20;not null;default:'client'" json:"role"`
	Phone       *string `gorm:"size:30" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func IsStaffRole(role string) bool {
	return role == RoleAdmin || role == RolePhotographer
}

func IsValidRole(role string) bool {
	return role == RoleClient || role == RolePhotographer || role == RoleAdmin
}
