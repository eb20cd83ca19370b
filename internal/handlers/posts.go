package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/contentpulse/content-api/internal/models"
	"github.com/contentpulse/content-api/internal/service"
	"github.com/contentpulse/content-api/pkg/logger"
)

type PostHandler struct {
	postService service.PostService
	logger      *logger.Logger
}

func NewPostHandler(postService service.PostService, log *logger.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: log}
}

type CreatePostRequest struct {
	Type        string `json:"type" binding:"required,oneof=video news"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

type UpdatePostRequest struct {
	Type        *string `json:"type" binding:"omitempty,oneof=video news"`
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
}

// pathID parses a numeric path parameter; a non-numeric id behaves
// exactly like a missing row.
func pathID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetPosts godoc
// @Summary      List posts
// @Description  Paginated posts, newest first, optionally filtered by type
// @Tags         posts
// @Produce      json
// @Param        type query string false "Post type" Enums(video, news)
// @Param        page query int false "Page number"
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.postService.List(c.Query("type"), page)
	if err != nil {
		h.logger.Error("failed to list posts: %v", err)
		serverError(c)
		return
	}

	posts := result.Posts
	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": posts,
		"meta": gin.H{
			"current_page": result.Page,
			"per_page":     result.PerPage,
			"total":        result.Total,
			"last_page":    result.LastPage,
		},
	})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Post with its direct comments attached
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Post")
		return
	}

	post, err := h.postService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Post")
			return
		}
		h.logger.Error("failed to fetch post %d: %v", id, err)
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	post, err := h.postService.Create(req.Type, req.Title, req.Description)
	if err != nil {
		h.logger.Error("failed to create post: %v", err)
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": post})
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Partial update; only supplied fields are validated and changed
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body UpdatePostRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Post")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	post, err := h.postService.Update(id, service.UpdatePostInput{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Post")
			return
		}
		h.logger.Error("failed to update post %d: %v", id, err)
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": post})
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      204  "No Content"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		notFound(c, "Post")
		return
	}

	if err := h.postService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c, "Post")
			return
		}
		h.logger.Error("failed to delete post %d: %v", id, err)
		serverError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
