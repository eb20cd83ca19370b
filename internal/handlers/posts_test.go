package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/contentpulse/content-api/internal/models"
	"github.com/contentpulse/content-api/internal/service"
	"github.com/contentpulse/content-api/pkg/logger"
)

func putJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newPostRouter(postSvc service.PostService) *gin.Engine {
	h := NewPostHandler(postSvc, logger.New())
	router := gin.New()
	router.GET("/api/posts", h.GetPosts)
	router.GET("/api/posts/:id", h.GetPost)
	router.POST("/api/posts", h.CreatePost)
	router.PUT("/api/posts/:id", h.UpdatePost)
	router.DELETE("/api/posts/:id", h.DeletePost)
	return router
}

func TestGetPosts_MetaShape(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("List", "", 1).Return(&service.PostPage{
		Posts:    []models.Post{{ID: 2, Type: models.PostTypeNews, Title: "Second"}, {ID: 1, Type: models.PostTypeVideo, Title: "First"}},
		Total:    17,
		Page:     1,
		PerPage:  15,
		LastPage: 2,
	}, nil)

	w := doRequest(newPostRouter(postSvc), http.MethodGet, "/api/posts")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(1), meta["current_page"])
	assert.Equal(t, float64(15), meta["per_page"])
	assert.Equal(t, float64(17), meta["total"])
	assert.Equal(t, float64(2), meta["last_page"])
	assert.Len(t, body["data"], 2)
}

func TestGetPosts_TypeFilterAndPage(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("List", "video", 3).Return(&service.PostPage{
		Posts: []models.Post{}, Total: 0, Page: 3, PerPage: 15, LastPage: 1,
	}, nil)

	w := doRequest(newPostRouter(postSvc), http.MethodGet, "/api/posts?type=video&page=3")

	assert.Equal(t, http.StatusOK, w.Code)
	postSvc.AssertExpectations(t)
}

func TestGetPosts_EmptyPageIsArrayNotNull(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("List", "", 1).Return(&service.PostPage{
		Posts: nil, Total: 0, Page: 1, PerPage: 15, LastPage: 1,
	}, nil)

	w := doRequest(newPostRouter(postSvc), http.MethodGet, "/api/posts")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetPost_Success(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("GetByID", uint(1)).Return(&models.Post{
		ID: 1, Type: models.PostTypeVideo, Title: "First video",
		Comments: []models.Comment{{ID: 4, UserID: 7, Body: "Nice"}},
	}, nil)

	w := doRequest(newPostRouter(postSvc), http.MethodGet, "/api/posts/1")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "First video", data["title"])
	assert.Len(t, data["comments"], 1)
}

func TestGetPost_NotFound(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("GetByID", uint(99)).Return(nil, service.ErrNotFound)

	w := doRequest(newPostRouter(postSvc), http.MethodGet, "/api/posts/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found.", decodeBody(t, w)["message"])
}

func TestGetPost_NonNumericID(t *testing.T) {
	postSvc := new(MockPostService)

	w := doRequest(newPostRouter(postSvc), http.MethodGet, "/api/posts/abc")

	assert.Equal(t, http.StatusNotFound, w.Code)
	postSvc.AssertNotCalled(t, "GetByID")
}

func TestCreatePost_Success(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("Create", "video", "First video", "A description").
		Return(&models.Post{ID: 1, Type: models.PostTypeVideo, Title: "First video", Description: "A description"}, nil)

	w := postJSON(newPostRouter(postSvc), "/api/posts", gin.H{
		"type":        "video",
		"title":       "First video",
		"description": "A description",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "video", data["type"])
	postSvc.AssertExpectations(t)
}

func TestCreatePost_InvalidType(t *testing.T) {
	postSvc := new(MockPostService)

	w := postJSON(newPostRouter(postSvc), "/api/posts", gin.H{
		"type":  "podcast",
		"title": "First",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	typeErrs := errs["type"].([]interface{})
	assert.Equal(t, "The selected type is invalid.", typeErrs[0])
	postSvc.AssertNotCalled(t, "Create")
}

func TestCreatePost_MissingTitle(t *testing.T) {
	postSvc := new(MockPostService)

	w := postJSON(newPostRouter(postSvc), "/api/posts", gin.H{"type": "news"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "title")
	postSvc.AssertNotCalled(t, "Create")
}

func TestUpdatePost_PartialBody(t *testing.T) {
	postSvc := new(MockPostService)
	title := "New title"
	postSvc.On("Update", uint(1), service.UpdatePostInput{Title: &title}).
		Return(&models.Post{ID: 1, Type: models.PostTypeNews, Title: "New title"}, nil)

	w := putJSON(newPostRouter(postSvc), "/api/posts/1", gin.H{"title": "New title"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "New title", data["title"])
	postSvc.AssertExpectations(t)
}

func TestUpdatePost_NotFound(t *testing.T) {
	postSvc := new(MockPostService)
	title := "New title"
	postSvc.On("Update", uint(99), service.UpdatePostInput{Title: &title}).
		Return(nil, service.ErrNotFound)

	w := putJSON(newPostRouter(postSvc), "/api/posts/99", gin.H{"title": "New title"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost_Success(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("Delete", uint(1)).Return(nil)

	w := doRequest(newPostRouter(postSvc), http.MethodDelete, "/api/posts/1")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeletePost_NotFound(t *testing.T) {
	postSvc := new(MockPostService)
	postSvc.On("Delete", uint(99)).Return(service.ErrNotFound)

	w := doRequest(newPostRouter(postSvc), http.MethodDelete, "/api/posts/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
