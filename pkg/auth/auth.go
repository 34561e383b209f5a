package auth

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserIDHeader carries the already-authenticated caller id. The gateway is the
// trusted upstream that sets it; the server tier takes it at face value.
const UserIDHeader = "X-Sharer-User-Id"

const userIDKey = "userIDKey"

// Middleware requires a positive integer user id in the auth header and puts
// it into the echo context for handlers.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(UserIDHeader)
		if raw == "" {
			return echo.NewHTTPError(http.StatusBadRequest, UserIDHeader+" header is required")
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, UserIDHeader+" header is invalid")
		}
		c.Set(userIDKey, id)
		return next(c)
	}
}

func GetUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(userIDKey).(int64)
	if !ok {
		return 0, errors.New("no user id in request context")
	}
	return id, nil
}
