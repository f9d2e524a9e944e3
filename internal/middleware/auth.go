package middleware

import (
	"net/http"
	"strings"

	"shopora/internal/auth"
	"shopora/internal/utils"

	"github.com/labstack/echo/v4"
)

// AuthJWT extracts the user identity from the Bearer session token and puts
// it on the request context. Requests without a valid token are rejected.
func AuthJWT(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims, err := auth.ParseToken(secret, tokenStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}

			ctx := utils.SetUserContext(c.Request().Context(), claims.Subject, claims.Email)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
