package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renthub/internal/common"
	"renthub/internal/models"
)

// RequireRole admits the request only when the authenticated role exactly
// matches one of the allowed roles. Roles carry no hierarchy: an endpoint
// that should admit admins must list RoleSuperAdmin explicitly. Resource
// ownership is not checked here; operations fold it into their lookups.
func RequireRole(allowed ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			if _, ok := common.GetUserIDFromContext(ctx); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			role, ok := common.GetRoleFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			for _, r := range allowed {
				if role == r {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusUnauthorized, "Insufficient role")
		}
	}
}
