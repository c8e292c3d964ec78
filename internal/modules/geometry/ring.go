package geometry

import "siteplan/internal/types"

// PointInRing reports whether p lies inside ring using the even-odd
// ray-casting rule. A point exactly on an edge has undefined parity;
// callers at site scale never hit this case deliberately.
func PointInRing(p types.Point, ring types.Ring) bool {
	ring = OpenRing(ring)
	if len(ring) < 3 {
		return false
	}
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		a, b := ring[i], ring[j]
		if (a.Lat > p.Lat) != (b.Lat > p.Lat) &&
			p.Lng < (b.Lng-a.Lng)*(p.Lat-a.Lat)/(b.Lat-a.Lat)+a.Lng {
			inside = !inside
		}
		j = i
	}
	return inside
}

// RingsIntersect reports whether two rings overlap. True iff any vertex
// of a lies inside b or any vertex of b lies inside a.
//
// This is a deliberate approximation: it misses intersections where two
// edges cross without either polygon containing a vertex of the other
// (a thin sliver piercing through edges). Accepted for site-scale
// editing; do not strengthen without confirming the intended tolerance.
func RingsIntersect(a, b types.Ring) bool {
	for _, p := range OpenRing(a) {
		if PointInRing(p, b) {
			return true
		}
	}
	for _, p := range OpenRing(b) {
		if PointInRing(p, a) {
			return true
		}
	}
	return false
}

// OpenRing drops a closing vertex, if present, so closed and open input
// behave identically.
func OpenRing(ring types.Ring) types.Ring {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1]
	}
	return ring
}

// CloseRing returns the ring with its first vertex repeated exactly once.
// Rendering and export consumers need closed rings; the engine keeps
// footprints open internally.
func CloseRing(ring types.Ring) types.Ring {
	ring = OpenRing(ring)
	if len(ring) == 0 {
		return ring
	}
	closed := make(types.Ring, 0, len(ring)+1)
	closed = append(closed, ring...)
	return append(closed, ring[0])
}

// Centroid returns the vertex mean of the ring. Good enough for marker
// placement and lookup seeds; not an area-weighted centroid.
func Centroid(ring types.Ring) types.Point {
	ring = OpenRing(ring)
	if len(ring) == 0 {
		return types.Point{}
	}
	var lat, lng float64
	for _, p := range ring {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(ring))
	return types.Point{Lat: lat / n, Lng: lng / n}
}
