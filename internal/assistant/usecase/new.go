package usecase

import (
	"time"

	"canvas-assistant/internal/assistant/repository"
	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/router"
	"canvas-assistant/pkg/llmprovider"
	pkgLog "canvas-assistant/pkg/log"
)

// Options tunes the conversation. Zero values take the defaults.
type Options struct {
	ContextWindow int
	Timezone      string
	Now           func() time.Time
}

type implUseCase struct {
	l             pkgLog.Logger
	lms           lms.UseCase
	router        router.Router
	llm           llmprovider.Generator
	history       repository.HistoryRepository
	contextWindow int
	loc           *time.Location
	now           func() time.Time
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	lmsUC lms.UseCase,
	rt router.Router,
	llm llmprovider.Generator,
	history repository.HistoryRepository,
	opts Options,
) *implUseCase {
	if opts.ContextWindow <= 0 {
		opts.ContextWindow = DefaultContextWindow
	}
	if opts.Timezone == "" {
		opts.Timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		loc = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &implUseCase{
		l:             l,
		lms:           lmsUC,
		router:        rt,
		llm:           llm,
		history:       history,
		contextWindow: opts.ContextWindow,
		loc:           loc,
		now:           opts.Now,
	}
}
