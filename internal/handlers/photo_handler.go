package handlers

import (
	"net/http"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/projection"
	"github.com/anonto42/nano-dating/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PhotoHandler handles photo HTTP requests
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// RegisterPhotoRoutes registers photo-related routes
func (h *PhotoHandler) RegisterPhotoRoutes(g *echo.Group) {
	g.GET("/users/:id/photos/main", h.GetMainPhoto)
	g.GET("/users/:id/photos/:photoId", h.GetPhoto)
	g.POST("/users/:id/photos", h.AddPhoto)
	g.POST("/users/:id/photos/:photoId/setMain", h.SetMainPhoto)
	g.DELETE("/users/:id/photos/:photoId", h.DeletePhoto)
}

func (h *PhotoHandler) GetPhoto(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	photoID, err := parseID(c, "photoId")
	if err != nil {
		return err
	}

	photo, err := h.photoService.GetPhoto(c.Request().Context(), photoID)
	if err != nil {
		return httpError(err)
	}
	if photo == nil || photo.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, "Photo not found")
	}
	return c.JSON(http.StatusOK, projection.Photo(*photo))
}

func (h *PhotoHandler) GetMainPhoto(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	photo, err := h.photoService.GetMainPhoto(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	if photo == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User has no main photo")
	}
	return c.JSON(http.StatusOK, projection.Photo(*photo))
}

// AddPhoto registers a photo the caller already uploaded to storage
func (h *PhotoHandler) AddPhoto(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}

	var req models.CreatePhotoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	photo, err := h.photoService.AddPhoto(c.Request().Context(), userID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, projection.Photo(*photo))
}

func (h *PhotoHandler) SetMainPhoto(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	photoID, err := parseID(c, "photoId")
	if err != nil {
		return err
	}

	if err := h.photoService.SetMainPhoto(c.Request().Context(), userID, photoID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	userID, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	photoID, err := parseID(c, "photoId")
	if err != nil {
		return err
	}

	if err := h.photoService.DeletePhoto(c.Request().Context(), userID, photoID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
