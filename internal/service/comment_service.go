package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/contentpulse/content-api/internal/models"
	"github.com/contentpulse/content-api/internal/repository"
)

type CommentService interface {
	// ResolveTarget maps a client-facing target type onto the stored
	// commentable discriminator.
	ResolveTarget(targetType string) (string, error)
	// Create attaches a comment to its target. The author always comes
	// from the authenticated session, never from the request payload.
	// The target's existence is an application-level contract and is
	// not verified before insert.
	Create(body, targetType string, targetID, authorID uint) (*models.Comment, error)
	GetByID(id uint) (*models.Comment, error)
	// Update and Delete perform no ownership check themselves; callers
	// must gate both through CanModify first.
	Update(comment *models.Comment, body string) (*models.Comment, error)
	Delete(comment *models.Comment) error
	// CanModify is the single authorization predicate in the system:
	// only the comment's author may mutate it.
	CanModify(comment *models.Comment, userID uint) bool
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) ResolveTarget(targetType string) (string, error) {
	switch targetType {
	case "post":
		return models.CommentableTypePost, nil
	case "comment":
		return models.CommentableTypeComment, nil
	default:
		return "", ErrInvalidTarget
	}
}

func (s *commentService) Create(body, targetType string, targetID, authorID uint) (*models.Comment, error) {
	commentableType, err := s.ResolveTarget(targetType)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:          authorID,
		Body:            body,
		CommentableID:   targetID,
		CommentableType: commentableType,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) GetByID(id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Update(comment *models.Comment, body string) (*models.Comment, error) {
	comment.Body = body
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(comment *models.Comment) error {
	return s.commentRepo.Delete(comment)
}

func (s *commentService) CanModify(comment *models.Comment, userID uint) bool {
	return comment.UserID == userID
}
