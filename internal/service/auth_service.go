package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/contentpulse/content-api/internal/models"
	"github.com/contentpulse/content-api/internal/repository"
	"github.com/contentpulse/content-api/pkg/jwt"
	"github.com/contentpulse/content-api/pkg/logger"
)

type AuthService interface {
	// Register creates a user with a bcrypt password hash and issues
	// a bearer token. The plaintext password is never stored or logged.
	Register(name, email, password string) (*models.User, string, error)
	// Login verifies credentials and issues a bearer token. Unknown
	// email and wrong password both return ErrInvalidCredentials so
	// callers cannot enumerate accounts.
	Login(email, password string) (*models.User, string, error)
	GetUser(userID uint) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.Service, log *logger.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     log,
	}
}

func (s *authService) Register(name, email, password string) (*models.User, string, error) {
	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password: %v", err)
		return nil, "", err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		s.logger.Error("failed to create user: %v", err)
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate token: %v", err)
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate token: %v", err)
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) GetUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
