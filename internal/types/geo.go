// README: Shared geographic value objects used across modules.
package types

// ID identifies a project, asset, or zone.
type ID string

// Point is a geographic coordinate in decimal degrees. Latitude first,
// longitude second; every downstream computation assumes this pair order.
type Point struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Ring is an ordered sequence of coordinates describing a polygon
// boundary. Rings may arrive open or closed (first vertex repeated);
// geometry code treats both forms the same.
type Ring []Point

// Bounds is a rectangular map extent.
type Bounds struct {
	SouthWest Point `json:"southWest"`
	NorthEast Point `json:"northEast"`
}
