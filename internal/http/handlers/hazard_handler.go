// README: Flood hazard lookup handler.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"siteplan/internal/modules/hazard"
	"siteplan/internal/types"
)

type HazardHandler struct {
	hazard *hazard.Service
}

func NewHazardHandler(svc *hazard.Service) *HazardHandler {
	return &HazardHandler{hazard: svc}
}

func (h *HazardHandler) Flood(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondError(c, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}

	r, err := h.hazard.Lookup(c.Request.Context(), types.Point{Lat: lat, Lng: lng})
	if err == hazard.ErrUnavailable {
		respondError(c, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		respondError(c, http.StatusBadGateway, "hazard lookup failed")
		return
	}
	c.JSON(http.StatusOK, r)
}
