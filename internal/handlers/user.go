package handlers

import (
	"net/http"

	"github.com/anonto42/nano-dating/backend/internal/models"
	"github.com/anonto42/nano-dating/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers member list and profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)
	g.GET("/users/:id", h.GetUser)
	g.PUT("/users/:id", h.UpdateUser)
}

// GetUsers returns one page of the member list for the caller
func (h *UserHandler) GetUsers(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	params := models.UserParams{PageParams: models.DefaultPageParams()}
	if err := bindQuery(c, &params); err != nil {
		return err
	}
	params.UserID = currentUserID

	page, err := h.userService.GetUsers(c.Request().Context(), params)
	if err != nil {
		return httpError(err)
	}
	return writePage(c, page)
}

// GetUser returns another member's detailed profile
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser updates the caller's own profile
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := authorizedUserID(c)
	if err != nil {
		return err
	}

	var req models.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userService.UpdateUser(c.Request().Context(), id, req); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
