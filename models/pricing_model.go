package models

import (
	"time"
)

const (
	PricingPackage = "package"
	PricingAddon   = "addon"
)

// PricingItem is one row of the public price catalog, either a package
// or an add-on service, keyed by a human readable slug.
type PricingItem struct {
	ID           uint       `gorm:"primary_key" json:"id"`
	Slug         string     `gorm:"size:100;not null;unique" json:"slug"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Category     string     `gorm:"size:20;not null" json:"category"`
	Price        float64    `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration     *string    `gorm:"size:50" json:"duration"`
	Features     StringList `gorm:"type:text" json:"features"`
	DisplayOrder int        `gorm:"default:0" json:"display_order"`
	UpdatedBy    *string    `gorm:"size:64" json:"updated_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PricingItem) TableName() string {
	return "pricing"
}
