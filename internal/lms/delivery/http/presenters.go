package http

import (
	"fmt"
	"strings"

	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/response"
)

// --- Request DTOs ---

type aggregateReq struct {
	QueryType string   `json:"query_type"`
	Kinds     []string `json:"kinds"`
	Course    string   `json:"course" binding:"max=255"`
}

func (r aggregateReq) validate() error {
	for _, k := range r.Kinds {
		if !isValidKind(lms.Kind(k)) {
			return fmt.Errorf("%w: %q", lms.ErrInvalidKind, k)
		}
	}
	return nil
}

func (r aggregateReq) toInput() lms.Intent {
	course := strings.TrimSpace(r.Course)
	kinds := make([]lms.Kind, 0, len(r.Kinds))
	for _, k := range r.Kinds {
		kinds = append(kinds, lms.Kind(k))
	}
	if len(kinds) == 0 {
		kinds = lms.KindsForQuery(r.QueryType, course != "")
	}
	return lms.Intent{
		QueryType: r.QueryType,
		Kinds:     kinds,
		CourseRef: course,
	}
}

func isValidKind(k lms.Kind) bool {
	for _, valid := range lms.ValidKinds {
		if k == valid {
			return true
		}
	}
	return false
}

// --- Response DTOs ---

type meResp struct {
	User model.User `json:"user"`
}

type coursesResp struct {
	Courses []model.Course `json:"courses"`
	Total   int            `json:"total"`
}

func newCoursesResp(courses []model.Course) coursesResp {
	return coursesResp{Courses: courses, Total: len(courses)}
}

type deadlinesResp struct {
	Deadlines []model.Deadline `json:"deadlines"`
	Total     int              `json:"total"`
}

func newDeadlinesResp(deadlines []model.Deadline) deadlinesResp {
	return deadlinesResp{Deadlines: deadlines, Total: len(deadlines)}
}

type aggregateResp struct {
	Data        lms.DataBag       `json:"data"`
	GeneratedAt response.DateTime `json:"generated_at"`
}

func newAggregateResp(out lms.AggregateOutput) aggregateResp {
	return aggregateResp{
		Data:        out.Data,
		GeneratedAt: response.DateTime(out.GeneratedAt),
	}
}

type cacheStatsResp struct {
	Stats cache.Stats `json:"stats"`
}

type purgeResp struct {
	Purged int `json:"purged"`
}

type exportedEventResp struct {
	AssignmentID int64  `json:"assignment_id"`
	EventID      string `json:"event_id"`
	Link         string `json:"link"`
}

type exportResp struct {
	Created int                 `json:"created"`
	Skipped int                 `json:"skipped"`
	Failed  int                 `json:"failed"`
	Events  []exportedEventResp `json:"events"`
}

func newExportResp(out lms.ExportDeadlinesOutput) exportResp {
	events := make([]exportedEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = exportedEventResp{
			AssignmentID: ev.AssignmentID,
			EventID:      ev.EventID,
			Link:         ev.Link,
		}
	}
	return exportResp{
		Created: out.Created,
		Skipped: out.Skipped,
		Failed:  out.Failed,
		Events:  events,
	}
}
