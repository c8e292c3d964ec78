package scene

import (
	"image"
	"image/color"
	"log"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

// ColourScheme defines how site features are painted.
type ColourScheme struct {
	Background     color.Color
	Boundary       color.Color
	Buildable      color.Color
	RoadBorder     color.Color
	RoadSurface    color.Color
	RoadCenterline color.Color
	Selection      color.Color
	Violation      color.Color
	Marker         color.Color
	Assets         map[layout.AssetType]color.Color
	Zones          map[layout.ZoneType]color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background:     colornames.Whitesmoke,
		Boundary:       colornames.Black,
		Buildable:      colornames.Honeydew,
		RoadBorder:     colornames.Dimgray,
		RoadSurface:    colornames.Darkgray,
		RoadCenterline: colornames.White,
		Selection:      colornames.Royalblue,
		Violation:      colornames.Crimson,
		Marker:         colornames.Steelblue,
		Assets: map[layout.AssetType]color.Color{
			AssetTypeDefault:     colornames.Lightsteelblue,
			layout.AssetBuilding: colornames.Lightsteelblue,
			layout.AssetParking:  colornames.Silver,
			layout.AssetYard:     colornames.Wheat,
		},
		Zones: map[layout.ZoneType]color.Color{
			layout.ZoneSetback:      colornames.Gold,
			layout.ZoneWetland:      colornames.Lightblue,
			layout.ZoneSlope:        colornames.Tan,
			layout.ZoneEasement:     colornames.Plum,
			layout.ZoneExclusion:    colornames.Lightcoral,
			layout.ZonePropertyLine: colornames.Gray,
		},
	}
}

// AssetTypeDefault keys the fallback asset colour for unknown types.
const AssetTypeDefault layout.AssetType = ""

// Road stroke widths in pixels, stacked border → surface → centerline.
const (
	roadBorderPx     = 6.0
	roadSurfacePx    = 4.0
	roadCenterlinePx = 1.0
)

// projection maps geographic coordinates onto the image plane.
type projection struct {
	bounds types.Bounds
	w, h   float64
}

func newProjection(bounds types.Bounds, w, h int) (projection, bool) {
	if bounds.NorthEast.Lat <= bounds.SouthWest.Lat || bounds.NorthEast.Lng <= bounds.SouthWest.Lng {
		return projection{}, false
	}
	return projection{bounds: bounds, w: float64(w), h: float64(h)}, true
}

func (pr projection) point(p types.Point) (float64, float64) {
	x := (p.Lng - pr.bounds.SouthWest.Lng) / (pr.bounds.NorthEast.Lng - pr.bounds.SouthWest.Lng) * pr.w
	y := (pr.bounds.NorthEast.Lat - p.Lat) / (pr.bounds.NorthEast.Lat - pr.bounds.SouthWest.Lat) * pr.h
	return x, y
}

// Image rasterizes the current scene. A malformed feature is skipped with
// a warning; it never blanks the rest of the map.
func (r *Renderer) Image(scheme *ColourScheme, width, height int) image.Image {
	ctx := gg.NewContext(width, height)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	pr, ok := newProjection(r.snap.Bounds, width, height)
	if !ok {
		log.Printf("scene: degenerate bounds %+v, rendering blank frame", r.snap.Bounds)
		return ctx.Image()
	}

	if r.snap.Visible.BuildableAreas {
		for _, ring := range r.snap.BuildableAreas {
			r.fillRing(ctx, pr, ring, scheme.Buildable, "buildable area")
		}
	}
	if r.snap.Visible.Zones {
		for _, z := range r.snap.Zones {
			col, ok := scheme.Zones[z.Type]
			if !ok {
				col = colornames.Lightgray
			}
			r.fillRing(ctx, pr, z.Ring, withAlpha(col, 140), "zone "+string(z.ID))
		}
	}
	if r.snap.Visible.Boundary {
		r.strokeRing(ctx, pr, r.snap.Boundary, scheme.Boundary, 2, "boundary")
	}
	if r.snap.Visible.Roads {
		for _, road := range r.snap.Roads {
			r.drawRoad(ctx, pr, road, scheme)
		}
	}
	if r.snap.Visible.Assets && r.assets != nil {
		for _, a := range r.assets.assets {
			r.drawAsset(ctx, pr, a, scheme)
		}
	}

	return ctx.Image()
}

// SavePNG renders the scene with the given scheme and writes it to disk.
func (r *Renderer) SavePNG(fpath string, scheme *ColourScheme, width, height int) error {
	im := r.Image(scheme, width, height)
	return gg.NewContextForImage(im).SavePNG(fpath)
}

// drawRoad paints the three stacked strokes — border, surface-coloured
// base, dashed centerline — with endpoints snapped to nearby assets.
func (r *Renderer) drawRoad(ctx *gg.Context, pr projection, road layout.RoadSegment, scheme *ColourScheme) {
	x1, y1 := pr.point(r.ResolveRoadEndpoint(road.Start))
	x2, y2 := pr.point(r.ResolveRoadEndpoint(road.End))

	ctx.SetLineCapRound()

	ctx.SetColor(scheme.RoadBorder)
	ctx.SetLineWidth(roadBorderPx)
	ctx.DrawLine(x1, y1, x2, y2)
	ctx.Stroke()

	ctx.SetColor(scheme.RoadSurface)
	ctx.SetLineWidth(roadSurfacePx)
	ctx.DrawLine(x1, y1, x2, y2)
	ctx.Stroke()

	ctx.SetColor(scheme.RoadCenterline)
	ctx.SetLineWidth(roadCenterlinePx)
	ctx.SetDash(4, 4)
	ctx.DrawLine(x1, y1, x2, y2)
	ctx.Stroke()
	ctx.SetDash()
}

func (r *Renderer) drawAsset(ctx *gg.Context, pr projection, a layout.PlacedAsset, scheme *ColourScheme) {
	fp := a.Footprint
	pos := a.Pose.Position
	if r.live != nil && r.live.assetID == a.ID {
		fp = r.live.footprint
		pos = r.live.position
	}

	col, ok := scheme.Assets[a.Type]
	if !ok {
		col = scheme.Assets[AssetTypeDefault]
	}
	r.fillRing(ctx, pr, fp, col, "asset "+string(a.ID))

	outline := scheme.Boundary
	width := 1.0
	if r.snap.ViolatingAssetIDs[a.ID] {
		outline = scheme.Violation
		width = 2.5
	}
	if r.snap.SelectedAssetID == a.ID {
		outline = scheme.Selection
		width = 2.5
	}
	r.strokeRing(ctx, pr, fp, outline, width, "asset "+string(a.ID))

	x, y := pr.point(pos)
	ctx.SetColor(scheme.Marker)
	ctx.DrawCircle(x, y, 3)
	ctx.Fill()
}

func (r *Renderer) fillRing(ctx *gg.Context, pr projection, ring types.Ring, col color.Color, what string) {
	if !tracePolygon(ctx, pr, ring, what) {
		return
	}
	ctx.SetColor(col)
	ctx.Fill()
}

func (r *Renderer) strokeRing(ctx *gg.Context, pr projection, ring types.Ring, col color.Color, width float64, what string) {
	if !tracePolygon(ctx, pr, ring, what) {
		return
	}
	ctx.SetColor(col)
	ctx.SetLineWidth(width)
	ctx.Stroke()
}

// tracePolygon sets up a closed path for the ring. Rings with fewer than
// three usable vertices are skipped with a warning so one malformed
// feature cannot take down the frame.
func tracePolygon(ctx *gg.Context, pr projection, ring types.Ring, what string) bool {
	open := geometry.OpenRing(ring)
	if len(open) < 3 {
		if len(open) > 0 {
			log.Printf("scene: skipping %s with %d vertices", what, len(open))
		}
		return false
	}
	for i, p := range open {
		x, y := pr.point(p)
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.ClosePath()
	return true
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
