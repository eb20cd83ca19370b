package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/contentpulse/content-api/docs" // swagger docs
	"github.com/contentpulse/content-api/internal/config"
	"github.com/contentpulse/content-api/internal/database"
	"github.com/contentpulse/content-api/internal/handlers"
	"github.com/contentpulse/content-api/internal/middleware"
	"github.com/contentpulse/content-api/internal/repository"
	"github.com/contentpulse/content-api/internal/service"
	"github.com/contentpulse/content-api/pkg/jwt"
	"github.com/contentpulse/content-api/pkg/logger"
)

type Server struct {
	db          database.Service
	handler     *handlers.Handler
	jwtService  *jwt.Service
	redisClient *redis.Client
}

// New wires the whole application and returns a ready http.Server.
func New(cfg *config.Config, log *logger.Logger) (*http.Server, database.Service, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	gormDB := db.GetDB()
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	authService := service.NewAuthService(userRepo, jwtService, log)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)

	handler := handlers.NewHandler(authService, postService, commentService, log)

	// Rate limiting only runs when Redis is configured.
	var redisClient *redis.Client
	if cfg.RedisHost != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	s := &Server{
		db:          db,
		handler:     handler,
		jwtService:  jwtService,
		redisClient: redisClient,
	}

	router := s.RegisterRoutes()

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.ServerPort,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return srv, db, nil
}

// RegisterRoutes sets up all application routes.
func (s *Server) RegisterRoutes() *gin.Engine {
	handlers.RegisterTagNames()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	if s.redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(s.redisClient, 100, time.Minute))
	}
	{
		// Auth routes (public; register is guest-only)
		api.POST("/auth/register", middleware.GuestMiddleware(s.jwtService), s.handler.Auth.Register)
		api.POST("/auth/login", s.handler.Auth.Login)

		// Post routes (public reads)
		api.GET("/posts", s.handler.Post.GetPosts)
		api.GET("/posts/:id", s.handler.Post.GetPost)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(s.jwtService))
		{
			protected.GET("/user", s.handler.Auth.GetUser)

			protected.POST("/posts", s.handler.Post.CreatePost)
			protected.PUT("/posts/:id", s.handler.Post.UpdatePost)
			protected.PATCH("/posts/:id", s.handler.Post.UpdatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)

			protected.GET("/comments/:id", s.handler.Comment.GetComment)
			protected.POST("/comments", s.handler.Comment.CreateComment)
			protected.PUT("/comments/:id", s.handler.Comment.UpdateComment)
			protected.PATCH("/comments/:id", s.handler.Comment.UpdateComment)
			protected.DELETE("/comments/:id", s.handler.Comment.DeleteComment)
		}
	}

	return r
}
