package usecase

import (
	"time"

	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/lms/repository"
	pkgLog "canvas-assistant/pkg/log"
)

// DefaultConcurrency bounds the per-course fan-out of the deadline merge.
const DefaultConcurrency = 4

// Options tunes the engine. The zero value is usable.
type Options struct {
	Concurrency int
	Now         func() time.Time
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.LMSRepository
	calendar    repository.CalendarRepository
	cache       *cache.Cache
	concurrency int
	now         func() time.Time
}

// New creates the aggregation engine. calendar may be nil, in which case
// deadline export reports lms.ErrCalendarDisabled.
func New(
	l pkgLog.Logger,
	repo repository.LMSRepository,
	calendar repository.CalendarRepository,
	c *cache.Cache,
	opts Options,
) *implUseCase {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implUseCase{
		l:           l,
		repo:        repo,
		calendar:    calendar,
		cache:       c,
		concurrency: opts.Concurrency,
		now:         opts.Now,
	}
}
