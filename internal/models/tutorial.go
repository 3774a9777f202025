package models

import (
	"time"

	"gorm.io/gorm"
)

// Tutorial is a long-form learning article, optionally paired with a video.
type Tutorial struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Category    string         `gorm:"not null;index" json:"category"`
	Difficulty  Difficulty     `gorm:"not null;index" json:"difficulty"`
	Tags        StringList     `gorm:"type:text" json:"tags"`
	ImageURL    string         `json:"image_url,omitempty"`
	VideoURL    string         `json:"video_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks required fields and normalizes optional collections.
func (t *Tutorial) Validate() error {
	if t.Title == "" || t.Description == "" {
		return NewValidationError("Title and description are required")
	}
	if t.Content == "" {
		return NewValidationError("Content is required")
	}
	if t.Category == "" {
		return NewValidationError("Category is required")
	}
	if !t.Difficulty.Valid() {
		return NewValidationError("Difficulty must be beginner, intermediate or advanced")
	}
	if t.Tags == nil {
		t.Tags = StringList{}
	}
	return nil
}
