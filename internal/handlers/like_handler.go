package handlers

import (
	"net/http"

	"github.com/anonto42/nano-dating/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles like HTTP requests
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/users/:id/like/:recipientId", h.LikeUser)
	g.GET("/users/:id/like/:recipientId", h.GetLike)
	g.DELETE("/users/:id/like/:recipientId", h.UnlikeUser)
}

// LikeUser records that the caller likes :recipientId
func (h *LikeHandler) LikeUser(c echo.Context) error {
	id, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	recipientID, err := parseID(c, "recipientId")
	if err != nil {
		return err
	}

	if err := h.likeService.LikeUser(c.Request().Context(), id, recipientID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": true}})
}

// GetLike reports whether the caller likes :recipientId
func (h *LikeHandler) GetLike(c echo.Context) error {
	id, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	recipientID, err := parseID(c, "recipientId")
	if err != nil {
		return err
	}

	like, err := h.likeService.GetLike(c.Request().Context(), id, recipientID)
	if err != nil {
		return httpError(err)
	}
	if like == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Like not found")
	}
	return c.JSON(http.StatusOK, like)
}

// UnlikeUser removes the caller's like of :recipientId
func (h *LikeHandler) UnlikeUser(c echo.Context) error {
	id, err := authorizedUserID(c)
	if err != nil {
		return err
	}
	recipientID, err := parseID(c, "recipientId")
	if err != nil {
		return err
	}

	if err := h.likeService.UnlikeUser(c.Request().Context(), id, recipientID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
