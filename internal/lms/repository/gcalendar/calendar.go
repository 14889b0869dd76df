package gcalendar

import (
	"context"
	"fmt"
	"strconv"

	"canvas-assistant/internal/lms/repository"
	"canvas-assistant/pkg/datemath"
	pkgGCal "canvas-assistant/pkg/gcalendar"
)

func (r *implRepository) ExportedAssignmentIDs(ctx context.Context) (map[int64]bool, error) {
	now := r.cfg.Now()
	events, err := r.client.ListEvents(ctx, pkgGCal.ListEventsRequest{
		CalendarID:        r.cfg.CalendarID,
		TimeMin:           now.Add(-r.cfg.EventDuration),
		TimeMax:           now.Add(r.cfg.Lookahead),
		PrivateProperties: []string{PropSource + "=" + SourceValue},
	})
	if err != nil {
		r.l.Errorf(ctx, "calendar repository: failed to list exported events: %v", err)
		return nil, err
	}

	ids := make(map[int64]bool, len(events))
	for _, ev := range events {
		raw, ok := ev.PrivateProperties[PropAssignmentID]
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			r.l.Warnf(ctx, "calendar repository: event %s has malformed assignment id %q", ev.ID, raw)
			continue
		}
		ids[id] = true
	}
	return ids, nil
}

// CreateDeadlineEvent writes a block that ends exactly at the due time.
func (r *implRepository) CreateDeadlineEvent(ctx context.Context, ev repository.CalendarEvent) (repository.CreatedEvent, error) {
	due := datemath.Parse(ev.DueAt)
	if due == nil {
		return repository.CreatedEvent{}, fmt.Errorf("calendar repository: unparseable due date %q", ev.DueAt)
	}

	created, err := r.client.CreateEvent(ctx, pkgGCal.CreateEventRequest{
		CalendarID:  r.cfg.CalendarID,
		Summary:     ev.Summary,
		Description: ev.Description,
		StartTime:   due.Add(-r.cfg.EventDuration),
		EndTime:     *due,
		Timezone:    r.cfg.Timezone,
		PrivateProperties: map[string]string{
			PropSource:       SourceValue,
			PropAssignmentID: strconv.FormatInt(ev.AssignmentID, 10),
		},
	})
	if err != nil {
		r.l.Errorf(ctx, "calendar repository: failed to create event for assignment %d: %v", ev.AssignmentID, err)
		return repository.CreatedEvent{}, err
	}

	return repository.CreatedEvent{ID: created.ID, Link: created.HtmlLink}, nil
}
