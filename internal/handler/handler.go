package handler

import (
	"github.com/labstack/echo/v4"

	"shopora/internal/utils"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func userIDFrom(c echo.Context) (string, bool) {
	return utils.GetUserIDFromContext(c.Request().Context())
}
