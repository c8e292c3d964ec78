package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"siteplan/internal/types"
)

// GeocodeResult is a simplified geocoder hit.
type GeocodeResult struct {
	Address  string      `json:"address"`
	Location types.Point `json:"location"`
	PlaceID  string      `json:"placeId"`
}

// GeocodeService handles interactions with the Google Geocoding API.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a new GeocodeService with the given API Key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode resolves a free-form address to coordinates, e.g. to center a
// new project on its parcel.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	resp, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocode api error: %w", err)
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("no results for %q", address)
	}

	hit := resp[0]
	return &GeocodeResult{
		Address: hit.FormattedAddress,
		Location: types.Point{
			Lat: hit.Geometry.Location.Lat,
			Lng: hit.Geometry.Location.Lng,
		},
		PlaceID: hit.PlaceID,
	}, nil
}

// ReverseGeocode resolves coordinates to the nearest street address, used
// for labeling measured points and hazard reports.
func (s *GeocodeService) ReverseGeocode(ctx context.Context, p types.Point) (*GeocodeResult, error) {
	resp, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: p.Lat, Lng: p.Lng},
	})
	if err != nil {
		return nil, fmt.Errorf("reverse geocode api error: %w", err)
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("no address at (%f, %f)", p.Lat, p.Lng)
	}

	hit := resp[0]
	return &GeocodeResult{
		Address: hit.FormattedAddress,
		Location: types.Point{
			Lat: hit.Geometry.Location.Lat,
			Lng: hit.Geometry.Location.Lng,
		},
		PlaceID: hit.PlaceID,
	}, nil
}
