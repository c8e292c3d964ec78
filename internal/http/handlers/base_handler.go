// README: Shared handler helpers for JSON errors and error mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"siteplan/internal/modules/layout"
)

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func respondLayoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, layout.ErrBadRequest):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, layout.ErrNotFound), errors.Is(err, layout.ErrAssetNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
