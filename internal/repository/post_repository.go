package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/contentpulse/content-api/internal/models"
)

type PostRepository interface {
	Create(post *models.Post) error
	// GetByID loads the post with its direct comments, newest first.
	// Replies to those comments are not expanded.
	GetByID(id uint) (*models.Post, error)
	// List returns one page of posts ordered newest-created-first,
	// optionally filtered by type, plus the total row count.
	List(postType string, page, perPage int) ([]models.Post, int64, error)
	Update(post *models.Post) error
	Delete(post *models.Post) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Comments", func(db *gorm.DB) *gorm.DB {
		return db.Order("comments.created_at DESC")
	}).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(postType string, page, perPage int) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{})
	if postType != "" {
		query = query.Where("type = ?", postType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := query.Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepository) Update(post *models.Post) error {
	// The post may carry preloaded comments; only post columns change.
	return r.db.Omit(clause.Associations).Save(post).Error
}

func (r *postRepository) Delete(post *models.Post) error {
	return r.db.Delete(post).Error
}
