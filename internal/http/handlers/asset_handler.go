// README: Asset handlers for move/rotate/delete/import.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"siteplan/internal/metrics"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

type AssetHandler struct {
	layout *layout.Service
}

func NewAssetHandler(svc *layout.Service) *AssetHandler {
	return &AssetHandler{layout: svc}
}

type moveAssetReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Move persists a committed drag gesture: one request per gesture, at the
// final pointer coordinate.
func (h *AssetHandler) Move(c *gin.Context) {
	var req moveAssetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	a, err := h.layout.MoveAsset(c.Request.Context(), layout.MoveAssetCommand{
		ProjectID: types.ID(c.Param("id")),
		AssetID:   types.ID(c.Param("assetId")),
		Position:  types.Point{Lat: req.Lat, Lng: req.Lng},
	})
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	metrics.DragCommitsTotal.Inc()
	c.JSON(http.StatusOK, a)
}

type rotateAssetReq struct {
	RotationDeg float64 `json:"rotation_deg"`
}

func (h *AssetHandler) Rotate(c *gin.Context) {
	var req rotateAssetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	a, err := h.layout.RotateAsset(c.Request.Context(), layout.RotateAssetCommand{
		ProjectID:   types.ID(c.Param("id")),
		AssetID:     types.ID(c.Param("assetId")),
		RotationDeg: req.RotationDeg,
	})
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AssetHandler) Delete(c *gin.Context) {
	err := h.layout.DeleteAsset(c.Request.Context(), layout.DeleteAssetCommand{
		ProjectID: types.ID(c.Param("id")),
		AssetID:   types.ID(c.Param("assetId")),
	})
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type importAssetsReq struct {
	Assets []layout.PlacedAsset `json:"assets"`
}

// Import replaces the asset collection with an optimizer run's output.
func (h *AssetHandler) Import(c *gin.Context) {
	var req importAssetsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.layout.ImportAssets(c.Request.Context(), layout.ImportAssetsCommand{
		ProjectID: types.ID(c.Param("id")),
		Assets:    req.Assets,
	})
	if err != nil {
		respondLayoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": len(req.Assets)})
}
