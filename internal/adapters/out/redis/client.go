// Package redis wires the shared cache client used by the read side.
package redis

import "github.com/redis/go-redis/v9"

// NewClient returns a client for the given address. An empty address
// disables caching: callers treat a nil client as cache-off and read
// straight from the database.
func NewClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}
