package models

import (
	"time"
)

const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
	BookingCouldNotDo = "could_not_do"
	BookingDeleted    = "deleted"
)

type Booking struct {
	ID                 uint       `gorm:"primary_key" json:"id"`
	UserID             string     `gorm:"size:64;not null;index" json:"user_id"`
	EventType          string     `gorm:"size:50;not null" json:"event_type"`
	PackageType        string     `gorm:"size:50;not null" json:"package_type"`
	EventDate          time.Time  `gorm:"not null" json:"event_date"`
	EventTime          string     `gorm:"size:20" json:"event_time"`
	Location           string     `gorm:"size:255" json:"location"`
	Duration           int        `json:"duration"`
	GuestCount         *int       `json:"guest_count"`
	AdditionalServices StringList `gorm:"type:text" json:"additional_services"`
	SpecialRequests    string     `gorm:"type:text" json:"special_requests"`
	BudgetRange        string     `gorm:"size:50" json:"budget_range"`
	TotalAmount        float64    `gorm:"type:numeric(10,2)" json:"total_amount"`

	Status          string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	StatusReason    *string    `gorm:"size:100" json:"status_reason"`
	StatusNotes     *string    `gorm:"type:text" json:"status_notes"`
	StatusUpdatedAt *time.Time `json:"status_updated_at"`
	StatusUpdatedBy *string    `gorm:"size:64" json:"status_updated_by"`

	// Soft deletion. DeletedAt set means the booking is hidden from the
	// owner's listing but stays visible to the back office.
	DeletedAt      *time.Time `json:"deleted_at"`
	DeletionReason *string    `gorm:"type:text" json:"deletion_reason"`
	DeletedBy      *string    `gorm:"size:64" json:"deleted_by"`

	Profile Profile `gorm:"foreignkey:UserID" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusUpdateTargets are the statuses a status update may set. The
// deleted state is reachable only through soft deletion.
var StatusUpdateTargets = []string{
	BookingPending,
	BookingConfirmed,
	BookingCompleted,
	BookingCancelled,
	BookingCouldNotDo,
}

func IsStatusUpdateTarget(status string) bool {
	for _, s := range StatusUpdateTargets {
		if s == status {
			return true
		}
	}
	return false
}
