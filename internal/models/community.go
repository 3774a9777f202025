package models

import (
	"time"

	"gorm.io/gorm"
)

// CommunityPost is a member-authored post on the community feed.
type CommunityPost struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Author     string     `gorm:"not null" json:"author"`
	Category   string     `gorm:"not null;index" json:"category"`
	Tags       StringList `gorm:"type:text" json:"tags"`
	Likes      int        `gorm:"default:0" json:"likes"`
	Views      int        `gorm:"default:0" json:"views"`
	ImageURL   string     `json:"image_url,omitempty"`
	// CommentsCount is not persisted; computed at query time from community_comments.
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks required fields and normalizes optional collections.
func (p *CommunityPost) Validate() error {
	if p.Title == "" || p.Content == "" {
		return NewValidationError("Title and content are required")
	}
	if p.Author == "" {
		return NewValidationError("Author is required")
	}
	if p.Category == "" {
		return NewValidationError("Category is required")
	}
	if p.Tags == nil {
		p.Tags = StringList{}
	}
	return nil
}

// CommunityComment backs the comment count shown on the feed.
type CommunityComment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PostID    uint           `gorm:"not null;index" json:"post_id"`
	Author    string         `gorm:"not null" json:"author"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Validate checks required fields.
func (c *CommunityComment) Validate() error {
	if c.Author == "" || c.Content == "" {
		return NewValidationError("Author and content are required")
	}
	return nil
}
