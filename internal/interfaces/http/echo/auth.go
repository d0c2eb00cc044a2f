package echo

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// The gateway in front of this service authenticates the request and forwards
// the user's id in this header.
const userIDHeader = "X-User-ID"

const ownerIDContextKey = "ownerID"

func RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(userIDHeader)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
				Code:    "unauthenticated",
				Message: "please log in",
			}})
		}
		c.Set(ownerIDContextKey, id)
		return next(c)
	}
}

func ownerID(c echo.Context) int64 {
	id, _ := c.Get(ownerIDContextKey).(int64)
	return id
}
