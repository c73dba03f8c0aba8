package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user's ID placed on the context by
// the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
