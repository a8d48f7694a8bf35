package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/anonto42/nano-dating/backend/internal/middleware"
	"github.com/anonto42/nano-dating/backend/internal/pagination"
	"github.com/anonto42/nano-dating/backend/internal/services"
	"github.com/anonto42/nano-dating/backend/pkg/config"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the id of the authenticated caller, or 0.
func getUserIDFromContext(c echo.Context) uint {
	return middleware.UserIDFromContext(c)
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// authorizedUserID checks that the :id path parameter names the caller.
func authorizedUserID(c echo.Context) (uint, error) {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	id, err := parseID(c, "id")
	if err != nil {
		return 0, err
	}
	if id != currentUserID {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Cannot act on behalf of another user")
	}
	return id, nil
}

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

// bindQuery binds query parameters only, then validates.
func bindQuery(c echo.Context, params interface{}) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}
	return c.Validate(params)
}

// writePage sets the Pagination header and writes the page items as the body.
func writePage[T any](c echo.Context, page *pagination.PagedResult[T]) error {
	meta, err := json.Marshal(page.Metadata())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(config.PaginationHeader, string(meta))
	return c.JSON(http.StatusOK, page.Items)
}

// httpError maps service and pagination errors onto HTTP errors.
func httpError(err error) error {
	switch {
	case errors.Is(err, pagination.ErrInvalidRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPhotoNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrLikeNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotParticipant):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAlreadyLiked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrSelfLike),
		errors.Is(err, services.ErrAlreadyMain),
		errors.Is(err, services.ErrCannotDeleteMain):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
