package redis

import (
	goredis "github.com/redis/go-redis/v9"

	"canvas-assistant/internal/assistant/repository"
	"canvas-assistant/pkg/log"
)

// DefaultKeyPrefix namespaces session lists.
const DefaultKeyPrefix = "canvas-assistant:session:"

type implRepository struct {
	l          log.Logger
	client     goredis.Cmdable
	prefix     string
	maxHistory int64
	opts       repository.Options
}

// New returns a history store keeping one redis list per session.
func New(l log.Logger, client goredis.Cmdable, keyPrefix string, opts repository.Options) repository.HistoryRepository {
	opts = opts.WithDefaults()
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &implRepository{
		l:          l,
		client:     client,
		prefix:     keyPrefix,
		maxHistory: int64(opts.MaxHistory),
		opts:       opts,
	}
}

func (r *implRepository) key(sessionID string) string {
	return r.prefix + sessionID
}
