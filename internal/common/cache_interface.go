package common

import "time"

// CacheInterface abstracts the read-through cache in front of reference
// data such as airports. Backed by go-cache in single-node deployments
// and by Redis when REDIS_HOST is configured.
type CacheInterface interface {
	Set(key string, value interface{}, duration time.Duration)

	// Get reports (value, true) on a hit and (nil, false) on a miss.
	Get(key string) (interface{}, bool)

	Delete(key string)

	// GetOrSet returns the cached value or runs the loader and caches
	// its result for the given duration.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases the underlying connection where one exists.
	Close() error
}
