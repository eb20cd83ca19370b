package handlers

import (
	"github.com/contentpulse/content-api/internal/service"
	"github.com/contentpulse/content-api/pkg/logger"
)

// Handler combines all handler types.
type Handler struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
}

// NewHandler creates a unified handler with all sub-handlers.
func NewHandler(auth service.AuthService, posts service.PostService, comments service.CommentService, log *logger.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(auth, log),
		Post:    NewPostHandler(posts, log),
		Comment: NewCommentHandler(comments, log),
	}
}
