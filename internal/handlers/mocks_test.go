package handlers

import (
	"github.com/stretchr/testify/mock"

	"github.com/contentpulse/content-api/internal/models"
	"github.com/contentpulse/content-api/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(name, email, password string) (*models.User, string, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) GetUser(userID uint) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ service.AuthService = (*MockAuthService)(nil)

// MockPostService is a mock implementation of service.PostService
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(postType string, page int) (*service.PostPage, error) {
	args := m.Called(postType, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostPage), args.Error(1)
}

func (m *MockPostService) GetByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Create(postType, title, description string) (*models.Post, error) {
	args := m.Called(postType, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Update(id uint, input service.UpdatePostInput) (*models.Post, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ service.PostService = (*MockPostService)(nil)

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ResolveTarget(targetType string) (string, error) {
	args := m.Called(targetType)
	return args.String(0), args.Error(1)
}

func (m *MockCommentService) Create(body, targetType string, targetID, authorID uint) (*models.Comment, error) {
	args := m.Called(body, targetType, targetID, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) GetByID(id uint) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) Update(comment *models.Comment, body string) (*models.Comment, error) {
	args := m.Called(comment, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentService) CanModify(comment *models.Comment, userID uint) bool {
	args := m.Called(comment, userID)
	return args.Bool(0)
}

var _ service.CommentService = (*MockCommentService)(nil)
