package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamUpListing advertises a project looking for collaborators. Applying to a
// listing is acknowledgment-only; no membership record is persisted.
type TeamUpListing struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Difficulty     Difficulty     `gorm:"not null;index" json:"difficulty"`
	Duration       string         `json:"duration,omitempty"`
	TeamSize       int            `json:"team_size,omitempty"`
	OpenPositions  int            `json:"open_positions,omitempty"`
	SkillsRequired StringList     `gorm:"type:text" json:"skills_required"`
	ImageURL       string         `json:"image_url,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks required fields and normalizes optional collections.
func (l *TeamUpListing) Validate() error {
	if l.Title == "" || l.Description == "" {
		return NewValidationError("Title and description are required")
	}
	if !l.Difficulty.Valid() {
		return NewValidationError("Difficulty must be beginner, intermediate or advanced")
	}
	if l.TeamSize < 0 || l.OpenPositions < 0 {
		return NewValidationError("Team size and open positions must not be negative")
	}
	if l.SkillsRequired == nil {
		l.SkillsRequired = StringList{}
	}
	return nil
}
