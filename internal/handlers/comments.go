package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentpulse/content-api/internal/middleware"
	"github.com/contentpulse/content-api/internal/service"
	"github.com/contentpulse/content-api/pkg/logger"
)

type CommentHandler struct {
	commentService service.CommentService
	logger         *logger.Logger
}

func NewCommentHandler(commentService service.CommentService, log *logger.Logger) *CommentHandler {
	return &CommentHandler{commentService: commentService, logger: log}
}

type CreateCommentRequest struct {
	Body       string `json:"body" binding:"required"`
	TargetType string `json:"target_type" binding:"required,oneof=post comment"`
	TargetID   uint   `json:"target_id" binding:"required"`
}

type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// GetComment godoc
// @Summary      Get comment by ID
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Comment")
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Comment")
			return
		}
		h.logger.Error("failed to fetch comment %d: %v", id, err)
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

// CreateComment godoc
// @Summary      Create a comment
// @Description  Attach a comment to a post or to another comment. The author is always the authenticated user.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment data"
// @Success      201  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	comment, err := h.commentService.Create(req.Body, req.TargetType, req.TargetID, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTarget) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "The given data was invalid.",
				"errors":  gin.H{"target_type": []string{"The selected target_type is invalid."}},
			})
			return
		}
		h.logger.Error("failed to create comment: %v", err)
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": comment})
}

// UpdateComment godoc
// @Summary      Update a comment
// @Description  Only the comment's author may update it
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Param        request body UpdateCommentRequest true "New body"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Comment")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Comment")
			return
		}
		h.logger.Error("failed to fetch comment %d: %v", id, err)
		serverError(c)
		return
	}

	if !h.commentService.CanModify(comment, userID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not allowed to update this comment."})
		return
	}

	comment, err = h.commentService.Update(comment, req.Body)
	if err != nil {
		h.logger.Error("failed to update comment %d: %v", id, err)
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comment})
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Only the comment's author may delete it. Replies to the comment are removed with it.
// @Tags         comments
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Comment")
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Comment")
			return
		}
		h.logger.Error("failed to fetch comment %d: %v", id, err)
		serverError(c)
		return
	}

	if !h.commentService.CanModify(comment, userID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not allowed to delete this comment."})
		return
	}

	if err := h.commentService.Delete(comment); err != nil {
		h.logger.Error("failed to delete comment %d: %v", id, err)
		serverError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
