// README: Flood hazard lookups with a read-through Redis cache.
package hazard

import (
	"context"
	"errors"
	"log"

	"siteplan/internal/types"
)

var ErrUnavailable = errors.New("hazard data unavailable")

// Provider fetches authoritative flood designations. Implementations wrap
// an external mapping service.
type Provider interface {
	FloodHazard(ctx context.Context, p types.Point) (*Report, error)
}

type Service struct {
	store    *Store
	provider Provider
}

func NewService(store *Store, provider Provider) *Service {
	return &Service{store: store, provider: provider}
}

// Lookup returns the flood designation at a point, serving from cache when
// possible. A cache failure degrades to a provider call, never an error.
func (s *Service) Lookup(ctx context.Context, p types.Point) (*Report, error) {
	if s.store != nil {
		r, ok, err := s.store.GetReport(ctx, p)
		if err != nil {
			log.Printf("hazard: cache read failed, falling through: %v", err)
		} else if ok {
			return r, nil
		}
	}

	if s.provider == nil {
		return nil, ErrUnavailable
	}
	r, err := s.provider.FloodHazard(ctx, p)
	if err != nil {
		return nil, err
	}
	r.Location = p

	if s.store != nil {
		if err := s.store.PutReport(ctx, r); err != nil {
			log.Printf("hazard: cache write failed: %v", err)
		}
	}
	return r, nil
}
