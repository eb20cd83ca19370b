package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/contentpulse/content-api/internal/models"
	"github.com/contentpulse/content-api/internal/repository"
)

// PerPage is the fixed page size for post listings.
const PerPage = 15

// PostPage is one page of a post listing.
type PostPage struct {
	Posts    []models.Post
	Total    int64
	Page     int
	PerPage  int
	LastPage int
}

// UpdatePostInput carries partial-update semantics: only non-nil
// fields are applied.
type UpdatePostInput struct {
	Type        *string
	Title       *string
	Description *string
}

type PostService interface {
	List(postType string, page int) (*PostPage, error)
	GetByID(id uint) (*models.Post, error)
	Create(postType, title, description string) (*models.Post, error)
	Update(id uint, input UpdatePostInput) (*models.Post, error)
	Delete(id uint) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) List(postType string, page int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := s.postRepo.List(postType, page, PerPage)
	if err != nil {
		return nil, err
	}

	lastPage := int((total + PerPage - 1) / PerPage)
	if lastPage < 1 {
		lastPage = 1
	}

	return &PostPage{
		Posts:    posts,
		Total:    total,
		Page:     page,
		PerPage:  PerPage,
		LastPage: lastPage,
	}, nil
}

func (s *postService) GetByID(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Create(postType, title, description string) (*models.Post, error) {
	post := &models.Post{
		Type:        postType,
		Title:       title,
		Description: description,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(id uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		post.Type = *input.Type
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(id uint) error {
	post, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.postRepo.Delete(post)
}
