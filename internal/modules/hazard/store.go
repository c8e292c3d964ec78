// README: Hazard report cache backed by Redis.
package hazard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"siteplan/internal/types"
)

const (
	reportKeyPrefix = "hazard:flood:%s"
	// Flood maps revise on a multi-year cycle; a month-long TTL keeps the
	// cache warm without serving retired designations forever.
	reportTTL = 30 * 24 * time.Hour
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func (s *Store) GetReport(ctx context.Context, p types.Point) (*Report, bool, error) {
	val, err := s.redis.Get(ctx, reportKey(p)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var r Report
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return nil, false, fmt.Errorf("decode cached report: %w", err)
	}
	return &r, true, nil
}

func (s *Store) PutReport(ctx context.Context, r *Report) error {
	buf, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return s.redis.Set(ctx, reportKey(r.Location), buf, reportTTL).Err()
}

// reportKey buckets nearby queries together: four decimal places is about
// 36 ft of longitude at mid latitudes, well inside one flood panel.
func reportKey(p types.Point) string {
	return fmt.Sprintf(reportKeyPrefix, fmt.Sprintf("%.4f:%.4f", p.Lat, p.Lng))
}
