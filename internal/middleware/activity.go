package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ActivityRecorder stamps a user's last-active time.
type ActivityRecorder interface {
	TouchLastActive(ctx context.Context, userID uint) error
}

// LogUserActivity records activity for the authenticated user after each
// handled request. A failure to record is logged, never returned.
func LogUserActivity(recorder ActivityRecorder, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			if userID := UserIDFromContext(c); userID != 0 {
				if touchErr := recorder.TouchLastActive(c.Request().Context(), userID); touchErr != nil {
					log.Warn().Err(touchErr).Uint("user_id", userID).Msg("failed to record user activity")
				}
			}
			return err
		}
	}
}
