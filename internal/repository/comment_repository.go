package repository

import (
	"gorm.io/gorm"

	"github.com/contentpulse/content-api/internal/models"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	// Delete removes the comment and every comment in its reply
	// subtree, so no reply is left pointing at a deleted owner.
	Delete(comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ids := []uint{comment.ID}

		// Walk the reply tree level by level. The tree only grows
		// through stored (commentable_type, commentable_id) pairs,
		// so each level is a single indexed query.
		frontier := []uint{comment.ID}
		for len(frontier) > 0 {
			var replyIDs []uint
			err := tx.Model(&models.Comment{}).
				Where("commentable_type = ? AND commentable_id IN ?", models.CommentableTypeComment, frontier).
				Pluck("id", &replyIDs).Error
			if err != nil {
				return err
			}
			ids = append(ids, replyIDs...)
			frontier = replyIDs
		}

		return tx.Delete(&models.Comment{}, ids).Error
	})
}
