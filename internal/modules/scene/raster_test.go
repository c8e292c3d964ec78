package scene

import (
	"image/color"
	"testing"

	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

func TestImageRendersSceneAtRequestedSize(t *testing.T) {
	r := NewRenderer(Callbacks{})
	snap := testSnapshot(testAsset("a1", types.Point{Lat: 0.5, Lng: 0.5}))
	snap.Zones = []layout.ConstraintZone{{ID: "z1", Type: layout.ZoneWetland, Severity: layout.SeverityHigh, Ring: snap.Boundary}}
	snap.Roads = []layout.RoadSegment{{ID: "r1", Start: types.Point{Lat: 0.1, Lng: 0.1}, End: types.Point{Lat: 0.9, Lng: 0.9}, WidthFt: 24}}
	snap.ViolatingAssetIDs = map[types.ID]bool{"a1": true}
	r.Apply(snap)

	im := r.Image(DefaultScheme(), 320, 240)
	b := im.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("image size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}

	// the frame is not blank: the wetland zone fill must differ from the
	// background somewhere near the middle
	bg := DefaultScheme().Background
	mid := im.At(160, 120)
	if sameColor(mid, bg) {
		t.Error("expected the zone fill to differ from the background at the image centre")
	}
}

func TestImageSkipsDegenerateFeatures(t *testing.T) {
	r := NewRenderer(Callbacks{})
	snap := testSnapshot(testAsset("ok", types.Point{Lat: 0.5, Lng: 0.5}))
	// a malformed zone ring must not blank the rest of the scene
	snap.Zones = []layout.ConstraintZone{{ID: "broken", Type: layout.ZoneSlope, Ring: types.Ring{{Lat: 0.2, Lng: 0.2}}}}
	r.Apply(snap)

	im := r.Image(DefaultScheme(), 100, 100)
	if im == nil {
		t.Fatal("expected an image despite the degenerate zone")
	}
}

func TestImageDegenerateBoundsRenderBlankFrame(t *testing.T) {
	r := NewRenderer(Callbacks{})
	snap := testSnapshot(testAsset("a1", types.Point{Lat: 0.5, Lng: 0.5}))
	snap.Bounds = types.Bounds{} // zero extent
	r.Apply(snap)

	im := r.Image(DefaultScheme(), 64, 64)
	if im == nil {
		t.Fatal("expected a blank frame, not a nil image")
	}
	if b := im.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("blank frame size = %dx%d, want 64x64", b.Dx(), b.Dy())
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
