package usecase

import (
	"context"
	"fmt"
	"strings"

	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/lms/repository"
	"canvas-assistant/internal/model"
)

// ExportDeadlines writes every upcoming deadline not yet on the calendar.
// One failed event does not stop the run.
func (uc *implUseCase) ExportDeadlines(ctx context.Context) (lms.ExportDeadlinesOutput, error) {
	if uc.calendar == nil {
		return lms.ExportDeadlinesOutput{}, lms.ErrCalendarDisabled
	}

	deadlines := uc.UpcomingDeadlines(ctx)
	exported, err := uc.calendar.ExportedAssignmentIDs(ctx)
	if err != nil {
		return lms.ExportDeadlinesOutput{}, fmt.Errorf("lms: failed to list exported deadlines: %w", err)
	}

	out := lms.ExportDeadlinesOutput{Events: make([]lms.ExportedEvent, 0)}
	for _, d := range deadlines {
		if exported[d.AssignmentID] {
			out.Skipped++
			continue
		}

		created, err := uc.calendar.CreateDeadlineEvent(ctx, toCalendarEvent(d))
		if err != nil {
			uc.l.Warnf(ctx, "lms.usecase.ExportDeadlines: assignment %d not exported: %v", d.AssignmentID, err)
			out.Failed++
			continue
		}
		out.Created++
		out.Events = append(out.Events, lms.ExportedEvent{
			AssignmentID: d.AssignmentID,
			EventID:      created.ID,
			Link:         created.Link,
		})
	}

	uc.l.Infof(ctx, "lms.usecase.ExportDeadlines: created=%d skipped=%d failed=%d", out.Created, out.Skipped, out.Failed)
	return out, nil
}

func toCalendarEvent(d model.Deadline) repository.CalendarEvent {
	var desc strings.Builder
	fmt.Fprintf(&desc, "Course: %s\n", d.CourseName)
	fmt.Fprintf(&desc, "Points: %g\n", d.PointsPossible)
	if d.Submitted {
		desc.WriteString("Status: submitted\n")
	} else {
		desc.WriteString("Status: not submitted\n")
	}
	if d.HTMLURL != "" {
		fmt.Fprintf(&desc, "Link: %s\n", d.HTMLURL)
	}

	return repository.CalendarEvent{
		AssignmentID: d.AssignmentID,
		Summary:      fmt.Sprintf("[%s] %s", d.CourseName, d.AssignmentName),
		Description:  desc.String(),
		DueAt:        d.DueAt,
	}
}
