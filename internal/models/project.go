package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a buildable engineering project in the catalog.
type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Category    string     `gorm:"not null;index" json:"category"`
	Difficulty  Difficulty `gorm:"not null;index" json:"difficulty"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	ImageURL    string     `json:"image_url"`
	IsFeatured  bool       `gorm:"index" json:"is_featured"`
	ProjectURL  string     `json:"project_url,omitempty"`
	// Views is incremented fire-and-forget on each detail read.
	Views     int            `gorm:"default:0" json:"views"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks required fields and normalizes optional collections.
func (p *Project) Validate() error {
	if p.Title == "" || p.Description == "" {
		return NewValidationError("Title and description are required")
	}
	if p.Category == "" {
		return NewValidationError("Category is required")
	}
	if !p.Difficulty.Valid() {
		return NewValidationError("Difficulty must be beginner, intermediate or advanced")
	}
	if p.Tags == nil {
		p.Tags = StringList{}
	}
	return nil
}
