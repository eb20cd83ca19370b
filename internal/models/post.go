package models

import "time"

const (
	PostTypeVideo = "video"
	PostTypeNews  = "news"
)

type Post struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Type        string `gorm:"size:255;not null;index" json:"type"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// Direct comments only; replies to those comments are not expanded.
	Comments []Comment `gorm:"polymorphic:Commentable;polymorphicValue:Post" json:"comments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
