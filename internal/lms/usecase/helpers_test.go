package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/lms/repository"
	"canvas-assistant/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

var errUpstream = errors.New("canvas: API error 500")

// mockRepo is a scriptable repository.LMSRepository that counts calls.
type mockRepo struct {
	mu sync.Mutex

	self        model.User
	selfErr     error
	courses     []model.Course
	coursesErr  error
	detail      map[int64]model.Course
	assignments map[int64][]model.Assignment
	assignErr   map[int64]error
	grades      map[int64]model.Grades
	modules     map[int64][]model.Module
	files       map[int64][]model.File
	news        map[int64][]model.Announcement

	calls map[string]int
}

func (m *mockRepo) count(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *mockRepo) callCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockRepo) Self(ctx context.Context) (model.User, error) {
	m.count("self")
	if m.selfErr != nil {
		return model.User{}, m.selfErr
	}
	return m.self, nil
}

func (m *mockRepo) Courses(ctx context.Context) ([]model.Course, error) {
	m.count("courses")
	if m.coursesErr != nil {
		return []model.Course{}, m.coursesErr
	}
	return m.courses, nil
}

func (m *mockRepo) CourseDetail(ctx context.Context, courseID int64) (model.Course, error) {
	m.count("detail")
	return m.detail[courseID], nil
}

func (m *mockRepo) Assignments(ctx context.Context, courseID int64) ([]model.Assignment, error) {
	m.count("assignments")
	if err := m.assignErr[courseID]; err != nil {
		return []model.Assignment{}, err
	}
	return m.assignments[courseID], nil
}

func (m *mockRepo) Grades(ctx context.Context, courseID int64) (model.Grades, error) {
	m.count("grades")
	return m.grades[courseID], nil
}

func (m *mockRepo) Modules(ctx context.Context, courseID int64) ([]model.Module, error) {
	m.count("modules")
	return m.modules[courseID], nil
}

func (m *mockRepo) Files(ctx context.Context, courseID int64) ([]model.File, error) {
	m.count("files")
	return m.files[courseID], nil
}

func (m *mockRepo) Announcements(ctx context.Context, courseID int64) ([]model.Announcement, error) {
	m.count("announcements")
	return m.news[courseID], nil
}

type mockCalendar struct {
	exported map[int64]bool
	listErr  error
	failIDs  map[int64]bool
	created  []repository.CalendarEvent
}

func (m *mockCalendar) ExportedAssignmentIDs(ctx context.Context) (map[int64]bool, error) {
	return m.exported, m.listErr
}

func (m *mockCalendar) CreateDeadlineEvent(ctx context.Context, ev repository.CalendarEvent) (repository.CreatedEvent, error) {
	if m.failIDs[ev.AssignmentID] {
		return repository.CreatedEvent{}, errors.New("calendar quota exceeded")
	}
	m.created = append(m.created, ev)
	return repository.CreatedEvent{ID: "ev", Link: "https://calendar.example/ev"}, nil
}

// clock is a manually advanced time source shared by the cache and the engine.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestUseCase(repo *mockRepo, cal repository.CalendarRepository, clk *clock) *implUseCase {
	l := &mockLogger{}
	c := cache.New(cache.Config{Now: clk.Now}, l)
	return New(l, repo, cal, c, Options{Now: clk.Now})
}

func strPtr(s string) *string { return &s }
