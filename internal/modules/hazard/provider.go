// README: HTTP-backed flood hazard provider.
package hazard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"siteplan/internal/types"
)

// HTTPProvider fetches flood designations from an external mapping API.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPProvider creates a provider for the given API base URL. The key
// is sent as X-API-Key; pass "" for keyless endpoints.
func NewHTTPProvider(baseURL, apiKey string) (*HTTPProvider, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("hazard api base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid hazard api base url: %w", err)
	}
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// floodResponse is the wire shape of the upstream flood endpoint.
type floodResponse struct {
	Zone          string    `json:"zone"`
	BaseElevFt    float64   `json:"baseFloodElevationFt"`
	EffectiveDate time.Time `json:"effectiveDate"`
	Source        string    `json:"source"`
}

func (p *HTTPProvider) FloodHazard(ctx context.Context, pt types.Point) (*Report, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(pt.Lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(pt.Lng, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/flood?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build hazard request: %w", err)
	}
	if p.apiKey != "" {
		req.Header.Set("X-API-Key", p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hazard api error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hazard api status %d", resp.StatusCode)
	}

	var wire floodResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode hazard response: %w", err)
	}

	return &Report{
		Zone:          parseFloodZone(wire.Zone),
		BaseElevFt:    wire.BaseElevFt,
		EffectiveDate: wire.EffectiveDate,
		Source:        wire.Source,
	}, nil
}

// parseFloodZone maps the wire designation onto our enum; anything
// unrecognized degrades to unknown rather than an error.
func parseFloodZone(s string) FloodZone {
	switch FloodZone(s) {
	case ZoneMinimal, ZoneModerate, ZoneHighRisk, ZoneFloodway:
		return FloodZone(s)
	default:
		return ZoneUnknown
	}
}
