// README: Project handlers for create/get/violations/render/boundary import.
package handlers

import (
	"errors"
	"image/png"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"siteplan/internal/config"
	"siteplan/internal/ingest"
	"siteplan/internal/modules/layout"
	"siteplan/internal/modules/scene"
	"siteplan/internal/modules/validate"
	"siteplan/internal/types"
)

// boundaryUploadLimit caps KML/KMZ upload size.
const boundaryUploadLimit = 32 << 20

type ProjectHandler struct {
	layout *layout.Service
	render config.RenderConfig
}

func NewProjectHandler(svc *layout.Service, render config.RenderConfig) *ProjectHandler {
	return &ProjectHandler{layout: svc, render: render}
}

type createProjectReq struct {
	Name     string                  `json:"name"`
	Bounds   types.Bounds            `json:"bounds"`
	Boundary types.Ring              `json:"boundary"`
	Assets   []layout.PlacedAsset    `json:"assets"`
	Zones    []layout.ConstraintZone `json:"zones"`
	Roads    []layout.RoadSegment    `json:"roads"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.layout.Create(c.Request.Context(), layout.CreateCommand{
		Name:     req.Name,
		Bounds:   req.Bounds,
		Boundary: req.Boundary,
		Assets:   req.Assets,
		Zones:    req.Zones,
		Roads:    req.Roads,
	})
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project_id": id})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.layout.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Violations runs a full constraint evaluation against the stored layout.
func (h *ProjectHandler) Violations(c *gin.Context) {
	p, err := h.layout.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	violations := validate.Validate(p.Assets, p.Zones, p.Boundary)
	c.JSON(http.StatusOK, gin.H{
		"project_id": p.ID,
		"violations": violations,
		"count":      len(violations),
	})
}

// Render rasterizes the project to a PNG preview.
func (h *ProjectHandler) Render(c *gin.Context) {
	p, err := h.layout.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		respondLayoutError(c, err)
		return
	}

	width := queryInt(c, "width", h.render.WidthPx)
	height := queryInt(c, "height", h.render.HeightPx)
	if width < 16 || height < 16 || width > 8192 || height > 8192 {
		respondError(c, http.StatusBadRequest, "width and height must be within 16..8192")
		return
	}

	violations := validate.Validate(p.Assets, p.Zones, p.Boundary)
	r := scene.NewRenderer(scene.Callbacks{})
	defer r.Destroy()
	r.Apply(scene.Snapshot{
		Bounds:            p.Bounds,
		Boundary:          p.Boundary,
		BuildableAreas:    p.BuildableAreas,
		Zones:             p.Zones,
		Roads:             p.Roads,
		Assets:            p.Assets,
		Visible:           scene.ShowAll(),
		ViolatingAssetIDs: validate.ViolatingAssetIDs(violations),
	})

	img := r.Image(scene.DefaultScheme(), width, height)
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := png.Encode(c.Writer, img); err != nil {
		// headers are gone; nothing left to do but log via middleware
		_ = c.Error(err)
	}
}

// ImportBoundary extracts a site boundary from an uploaded KML or KMZ.
func (h *ProjectHandler) ImportBoundary(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, boundaryUploadLimit))
	if err != nil {
		respondError(c, http.StatusBadRequest, "read body failed")
		return
	}
	ring, bounds, err := ingest.Boundary(data)
	if errors.Is(err, ingest.ErrBadFormat) || errors.Is(err, ingest.ErrNoBoundary) {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"boundary": ring, "bounds": bounds})
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
