package models

import (
	"time"

	"gorm.io/gorm"
)

// PremadeProject is a ready-built kit sold through the catalog. Purchases are
// acknowledgment-only; no transaction is recorded server-side.
type PremadeProject struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Category    string         `gorm:"not null;index" json:"category"`
	Difficulty  Difficulty     `gorm:"not null;index" json:"difficulty"`
	Price       float64        `gorm:"not null" json:"price"`
	Features    StringList     `gorm:"type:text" json:"features"`
	ImageURL    string         `json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks required fields and normalizes optional collections.
func (p *PremadeProject) Validate() error {
	if p.Title == "" || p.Description == "" {
		return NewValidationError("Title and description are required")
	}
	if p.Category == "" {
		return NewValidationError("Category is required")
	}
	if !p.Difficulty.Valid() {
		return NewValidationError("Difficulty must be beginner, intermediate or advanced")
	}
	if p.Price < 0 {
		return NewValidationError("Price must not be negative")
	}
	if p.Features == nil {
		p.Features = StringList{}
	}
	return nil
}
