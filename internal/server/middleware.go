package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	userHeader     = "X-User-ID"
	userContextKey = "user_id"
)

// userIdentity pulls the authenticated user's id from the X-User-ID header.
// Authentication itself happens upstream; the API only requires the id to
// be present and well-formed.
func userIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(userHeader)
		if raw == "" {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing " + userHeader + " header"})
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid " + userHeader + " header"})
		}

		c.Set(userContextKey, id)

		return next(c)
	}
}

func userID(c echo.Context) int64 {
	id, _ := c.Get(userContextKey).(int64)
	return id
}
