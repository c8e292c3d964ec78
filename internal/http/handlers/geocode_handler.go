// README: Geocoding handlers backed by the Google Maps client.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"siteplan/internal/maps"
	"siteplan/internal/types"
)

type GeocodeHandler struct {
	geocode *maps.GeocodeService
}

// NewGeocodeHandler accepts a nil service; endpoints then answer 503.
func NewGeocodeHandler(svc *maps.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{geocode: svc}
}

func (h *GeocodeHandler) Geocode(c *gin.Context) {
	if h.geocode == nil {
		respondError(c, http.StatusServiceUnavailable, "geocoding not configured")
		return
	}
	address := c.Query("address")
	if address == "" {
		respondError(c, http.StatusBadRequest, "address query parameter is required")
		return
	}
	r, err := h.geocode.Geocode(c.Request.Context(), address)
	if err != nil {
		respondError(c, http.StatusBadGateway, "geocode failed")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *GeocodeHandler) Reverse(c *gin.Context) {
	if h.geocode == nil {
		respondError(c, http.StatusServiceUnavailable, "geocoding not configured")
		return
	}
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		respondError(c, http.StatusBadRequest, "lat and lng query parameters are required")
		return
	}
	r, err := h.geocode.ReverseGeocode(c.Request.Context(), types.Point{Lat: lat, Lng: lng})
	if err != nil {
		respondError(c, http.StatusBadGateway, "reverse geocode failed")
		return
	}
	c.JSON(http.StatusOK, r)
}
