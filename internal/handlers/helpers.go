package handlers

import (
	"strconv"

	"geosolar-backoffice/internal/apperrors"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, err error) {
	apperrors.Respond(c, err)
}

// idParam reads a numeric :id (or other named) path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// currentUserID reads the identity stashed by the guard middleware.
func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}
