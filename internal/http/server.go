// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siteplan/internal/config"
	"siteplan/internal/http/handlers"
	"siteplan/internal/http/middleware"
	"siteplan/internal/maps"
	"siteplan/internal/modules/hazard"
	"siteplan/internal/modules/layout"
)

type ServerDeps struct {
	Layout  *layout.Service
	Hazard  *hazard.Service
	Geocode *maps.GeocodeService // nil when no API key is configured
	Render  config.RenderConfig
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), middleware.Metrics())

	projectHandler := handlers.NewProjectHandler(s.deps.Layout, s.deps.Render)
	r.POST("/api/projects", projectHandler.Create)
	r.GET("/api/projects/:id", projectHandler.Get)
	r.GET("/api/projects/:id/violations", projectHandler.Violations)
	r.GET("/api/projects/:id/render.png", projectHandler.Render)
	r.POST("/api/boundary/import", projectHandler.ImportBoundary)

	assetHandler := handlers.NewAssetHandler(s.deps.Layout)
	r.PUT("/api/projects/:id/assets", assetHandler.Import)
	r.PUT("/api/projects/:id/assets/:assetId/position", assetHandler.Move)
	r.PUT("/api/projects/:id/assets/:assetId/rotation", assetHandler.Rotate)
	r.DELETE("/api/projects/:id/assets/:assetId", assetHandler.Delete)

	exportHandler := handlers.NewExportHandler(s.deps.Layout)
	r.GET("/api/projects/:id/export/geojson", exportHandler.GeoJSON)
	r.GET("/api/projects/:id/export/kml", exportHandler.KML)
	r.GET("/api/projects/:id/export/dxf", exportHandler.DXF)

	hazardHandler := handlers.NewHazardHandler(s.deps.Hazard)
	r.GET("/api/hazards/flood", hazardHandler.Flood)

	geocodeHandler := handlers.NewGeocodeHandler(s.deps.Geocode)
	r.GET("/api/geocode", geocodeHandler.Geocode)
	r.GET("/api/geocode/reverse", geocodeHandler.Reverse)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
