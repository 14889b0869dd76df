package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"canvas-assistant/internal/model"
	pkgLog "canvas-assistant/pkg/log"
)

const (
	DefaultSweepInterval = 10 * time.Minute
	// fallbackTTL applies to resource types missing from every policy.
	fallbackTTL = 30 * time.Minute
)

// Cache is a TTL keyed store owned by one aggregation engine. Entries are
// replaced whole, so readers never observe a partial write.
type Cache struct {
	l     pkgLog.Logger
	ttls  map[model.ResourceType]time.Duration
	now   func() time.Time
	sweep time.Duration

	mu      sync.RWMutex
	entries map[Key]*entry
	group   singleflight.Group

	hits    atomic.Uint64
	misses  atomic.Uint64
	fetches atomic.Uint64
	failed  atomic.Uint64
}

// New creates a Cache. Missing TTLs fall back to model.DefaultTTLs.
func New(cfg Config, l pkgLog.Logger) *Cache {
	ttls := make(map[model.ResourceType]time.Duration, len(model.DefaultTTLs))
	for rt, ttl := range model.DefaultTTLs {
		ttls[rt] = ttl
	}
	for rt, ttl := range cfg.TTLs {
		if ttl > 0 {
			ttls[rt] = ttl
		}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	sweep := cfg.SweepInterval
	if sweep <= 0 {
		sweep = DefaultSweepInterval
	}

	return &Cache{
		l:       l,
		ttls:    ttls,
		now:     now,
		sweep:   sweep,
		entries: make(map[Key]*entry),
	}
}
