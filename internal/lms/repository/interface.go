package repository

import (
	"context"

	"canvas-assistant/internal/model"
)

// LMSRepository fetches and normalizes LMS resources. Every method performs
// upstream calls. On failure it returns the empty default for its resource
// together with the error so callers can degrade without special cases.
type LMSRepository interface {
	// Self returns the token owner.
	Self(ctx context.Context) (model.User, error)

	// Courses returns active courses, excluding date-restricted ones.
	Courses(ctx context.Context) ([]model.Course, error)

	// CourseDetail returns one course with syllabus, term and teachers.
	CourseDetail(ctx context.Context, courseID int64) (model.Course, error)

	// Assignments returns the course's assignments with submission state.
	Assignments(ctx context.Context, courseID int64) ([]model.Assignment, error)

	// Grades combines assignment scores with the course's computed score.
	Grades(ctx context.Context, courseID int64) (model.Grades, error)

	// Modules returns modules with items attached. A failed item fetch only
	// empties that module's items.
	Modules(ctx context.Context, courseID int64) ([]model.Module, error)

	// Files returns course files.
	Files(ctx context.Context, courseID int64) ([]model.File, error)

	// Announcements returns course announcements.
	Announcements(ctx context.Context, courseID int64) ([]model.Announcement, error)
}

// CalendarEvent is a deadline rendered as a calendar entry.
type CalendarEvent struct {
	AssignmentID int64
	Summary      string
	Description  string
	DueAt        string
}

// CreatedEvent is what the calendar reports back.
type CreatedEvent struct {
	ID   string
	Link string
}

// CalendarRepository stores deadline events in an external calendar.
type CalendarRepository interface {
	// ExportedAssignmentIDs lists assignment IDs already present from now on.
	ExportedAssignmentIDs(ctx context.Context) (map[int64]bool, error)

	// CreateDeadlineEvent creates one event ending at the due time.
	CreateDeadlineEvent(ctx context.Context, ev CalendarEvent) (CreatedEvent, error)
}
