package cache

import (
	"context"
	"time"

	"canvas-assistant/internal/model"
)

// Key addresses one cached payload. ID is empty for collection-wide resources
// such as the course list.
type Key struct {
	Resource model.ResourceType
	ID       string
}

func (k Key) String() string {
	if k.ID == "" {
		return string(k.Resource)
	}
	return string(k.Resource) + ":" + k.ID
}

// FetchFunc loads a payload from upstream. On failure it returns the empty
// default for its resource alongside the error.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Config controls expiration and housekeeping.
type Config struct {
	// TTLs overrides model.DefaultTTLs per resource type.
	TTLs map[model.ResourceType]time.Duration
	// SweepInterval is how often StartSweeper drops stale entries.
	SweepInterval time.Duration
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Stats is a point-in-time view of cache usage.
type Stats struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
	Fetches uint64 `json:"fetches"`
	Failed  uint64 `json:"failed"`
}

type entry struct {
	payload   any
	fetchedAt time.Time
}
