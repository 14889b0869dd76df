package gcalendar

import (
	"context"
	"time"

	"canvas-assistant/internal/lms/repository"
	pkgGCal "canvas-assistant/pkg/gcalendar"
	pkgLog "canvas-assistant/pkg/log"
)

const (
	// PropAssignmentID tags every exported event with its assignment.
	PropAssignmentID = "lmsAssignmentId"
	// PropSource marks events this service owns.
	PropSource  = "source"
	SourceValue = "canvas-assistant"

	DefaultEventDuration = 30 * time.Minute
	DefaultLookahead     = 180 * 24 * time.Hour
)

// Client is the part of the Google Calendar client the repository uses.
type Client interface {
	CreateEvent(ctx context.Context, req pkgGCal.CreateEventRequest) (*pkgGCal.Event, error)
	ListEvents(ctx context.Context, req pkgGCal.ListEventsRequest) ([]pkgGCal.Event, error)
}

// Config controls where and how deadline events are written.
type Config struct {
	CalendarID    string
	Timezone      string
	EventDuration time.Duration
	Lookahead     time.Duration
	Now           func() time.Time
}

type implRepository struct {
	client Client
	l      pkgLog.Logger
	cfg    Config
}

// New creates a Google Calendar backed deadline store.
func New(client Client, cfg Config, l pkgLog.Logger) repository.CalendarRepository {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = DefaultEventDuration
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = DefaultLookahead
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implRepository{
		client: client,
		l:      l,
		cfg:    cfg,
	}
}
