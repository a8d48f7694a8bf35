package router

import (
	"fmt"
	"time"

	"github.com/anonto42/nano-dating/backend/internal/handlers"
	"github.com/anonto42/nano-dating/backend/internal/middleware"
	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables backing the dating models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Like{},
		&models.Message{},
	)
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, jwtSecret string, log zerolog.Logger) error {
	if err := Migrate(db); err != nil {
		return fmt.Errorf("auto migrate models: %w", err)
	}
	log.Info().Msg("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Services ---
	store := services.NewStore(db)
	userService := services.NewUserService(store, time.Now)
	photoService := services.NewPhotoService(store, time.Now)
	likeService := services.NewLikeService(store)
	messageService := services.NewMessageService(store, time.Now)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))
	api.Use(middleware.LogUserActivity(userService, log))

	handlers.NewUserHandler(userService).RegisterUserRoutes(api)
	handlers.NewPhotoHandler(photoService).RegisterPhotoRoutes(api)
	handlers.NewLikeHandler(likeService).RegisterLikeRoutes(api)
	handlers.NewMessageHandler(messageService).RegisterMessageRoutes(api)

	log.Info().Msg("All routes configured.")
	return nil
}
