package models

import (
	"time"
)

type Payment struct {
	ID                    uint    `gorm:"primary_key" json:"id"`
	BookingID             uint    `gorm:"not null;index" json:"booking_id"`
	UserID                string  `gorm:"size:64;not null;index" json:"user_id"`
	Amount                float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency              string  `gorm:"size:3;not null;default:'USD'" json:"currency"`
	PaymentMethod         *string `gorm:"size:50" json:"payment_method"`
	StripePaymentIntentID *string `gorm:"size:255" json:"stripe_payment_intent_id"`
	Status                string  `gorm:"size:20;not null;default:'pending'" json:"status"`

	Profile Profile `gorm:"foreignkey:UserID" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var PaymentStatuses = []string{"pending", "succeeded", "failed", "cancelled"}

func IsValidPaymentStatus(status string) bool {
	for _, s := range PaymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
