package lms

import (
	"context"

	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/model"
)

// UseCase is the aggregation engine over the LMS.
type UseCase interface {
	// Aggregate fetches everything intent needs, cache first, and never fails
	// on upstream errors: missing data shows up as empty collections.
	Aggregate(ctx context.Context, intent Intent) AggregateOutput

	// ActiveCourses returns the cached active course list.
	ActiveCourses(ctx context.Context) []model.Course

	// UpcomingDeadlines merges future deadlines across all active courses.
	UpcomingDeadlines(ctx context.Context) []model.Deadline

	// ResolveCourse matches free text against active course names.
	ResolveCourse(ctx context.Context, name string) (int64, bool)

	// Profile returns the token owner; false means the token is not usable.
	Profile(ctx context.Context) (model.User, bool)

	// ExportDeadlines writes upcoming deadlines to the configured calendar.
	ExportDeadlines(ctx context.Context) (ExportDeadlinesOutput, error)

	// CacheStats and PurgeCache expose the engine's cache.
	CacheStats() cache.Stats
	PurgeCache() int
}
