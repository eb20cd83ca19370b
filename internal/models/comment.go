package models

import "time"

// Commentable discriminator values stored in comments.commentable_type.
// A comment attaches either to a post or to another comment, which is
// what makes unbounded reply trees possible.
const (
	CommentableTypePost    = "Post"
	CommentableTypeComment = "Comment"
)

type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Body   string `gorm:"type:text;not null" json:"body"`

	// Polymorphic target. The pair is an application-level contract:
	// the storage layer does not enforce that CommentableID exists.
	CommentableID   uint   `gorm:"not null;index:idx_comments_commentable" json:"commentable_id"`
	CommentableType string `gorm:"size:255;not null;index:idx_comments_commentable" json:"commentable_type"`

	Replies []Comment `gorm:"polymorphic:Commentable;polymorphicValue:Comment" json:"replies,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
