package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/catalog-api/internal/core/domain"
)

// CallerHeader carries the caller's user ID. Authentication happens
// upstream (gateway/IdP); this service only resolves the ID to a directory
// record to obtain the admin flag.
const CallerHeader = "X-User-ID"

// CallerResolver looks up a caller in the user directory.
type CallerResolver interface {
	Resolve(ctx context.Context, userID string) (*domain.User, error)
}

// Identity resolves the per-request authorization context. Requests
// without a caller header proceed as anonymous non-admins; a caller header
// that does not resolve is rejected.
func Identity(resolver CallerResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get(CallerHeader)
			if userID == "" {
				c.Set("user_id", "")
				c.Set("is_admin", false)
				return next(c)
			}

			user, err := resolver.Resolve(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown caller")
				}
				return err
			}

			c.Set("user_id", user.ID)
			c.Set("is_admin", user.IsAdmin)
			return next(c)
		}
	}
}
