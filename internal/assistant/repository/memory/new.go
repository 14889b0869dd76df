package memory

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"canvas-assistant/internal/assistant/repository"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/log"
)

// DefaultMaxSessions bounds how many conversations are held at once.
const DefaultMaxSessions = 1000

type implRepository struct {
	l          log.Logger
	mu         sync.Mutex
	sessions   *expirable.LRU[string, []model.Exchange]
	maxHistory int
}

// New returns an in-process history store. Sessions expire opts.TTL after
// their last write and the least recently used ones are evicted past
// maxSessions.
func New(l log.Logger, opts repository.Options, maxSessions int) repository.HistoryRepository {
	opts = opts.WithDefaults()
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &implRepository{
		l:          l,
		sessions:   expirable.NewLRU[string, []model.Exchange](maxSessions, nil, opts.TTL),
		maxHistory: opts.MaxHistory,
	}
}
