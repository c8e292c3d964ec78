// README: Redis client for the flood hazard report cache.
package infra

import "github.com/redis/go-redis/v9"

// NewRedis returns a client for the given address. Connectivity is not
// verified here; the hazard cache tolerates an unreachable server and
// falls through to the upstream provider.
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
