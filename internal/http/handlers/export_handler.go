// README: Export handlers for GeoJSON, KML and DXF downloads.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"siteplan/internal/export"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

type ExportHandler struct {
	layout *layout.Service
}

func NewExportHandler(svc *layout.Service) *ExportHandler {
	return &ExportHandler{layout: svc}
}

func (h *ExportHandler) GeoJSON(c *gin.Context) {
	p, err := h.layout.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	buf, err := export.GeoJSON(p)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	download(c, "application/geo+json", fmt.Sprintf("%s.geojson", p.ID), buf)
}

func (h *ExportHandler) KML(c *gin.Context) {
	p, err := h.layout.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	buf, err := export.KML(p)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	download(c, "application/vnd.google-earth.kml+xml", fmt.Sprintf("%s.kml", p.ID), buf)
}

func (h *ExportHandler) DXF(c *gin.Context) {
	p, err := h.layout.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	download(c, "application/dxf", fmt.Sprintf("%s.dxf", p.ID), export.DXF(p))
}

func download(c *gin.Context, contentType, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
