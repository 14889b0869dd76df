package usecase

import (
	"context"
	"sync"
	"time"

	"canvas-assistant/internal/assistant/repository"
	"canvas-assistant/internal/assistant/repository/memory"
	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/llmprovider"
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

// mockLMS implements lms.UseCase.
type mockLMS struct {
	courses    []model.Course
	data       lms.DataBag
	lastIntent lms.Intent
}

func (m *mockLMS) Aggregate(ctx context.Context, intent lms.Intent) lms.AggregateOutput {
	m.lastIntent = intent
	data := m.data
	data.Courses = m.courses
	return lms.AggregateOutput{Data: data, GeneratedAt: fixedNow}
}
func (m *mockLMS) ActiveCourses(ctx context.Context) []model.Course       { return m.courses }
func (m *mockLMS) UpcomingDeadlines(ctx context.Context) []model.Deadline { return nil }
func (m *mockLMS) ResolveCourse(ctx context.Context, name string) (int64, bool) {
	return 0, false
}
func (m *mockLMS) Profile(ctx context.Context) (model.User, bool) { return model.User{}, false }
func (m *mockLMS) ExportDeadlines(ctx context.Context) (lms.ExportDeadlinesOutput, error) {
	return lms.ExportDeadlinesOutput{}, lms.ErrCalendarDisabled
}
func (m *mockLMS) CacheStats() cache.Stats { return cache.Stats{} }
func (m *mockLMS) PurgeCache() int         { return 0 }

type classifyCall struct {
	query   string
	courses []model.Course
	history []string
}

type mockRouter struct {
	intent lms.Intent
	err    error
	calls  []classifyCall
}

func (m *mockRouter) Classify(ctx context.Context, query string, courses []model.Course, history []string) (lms.Intent, error) {
	m.calls = append(m.calls, classifyCall{query: query, courses: courses, history: history})
	return m.intent, m.err
}

type mockLLM struct {
	mu      sync.Mutex
	answer  string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: m.answer}}},
		ProviderName: "mock",
	}, nil
}

// Wednesday.
var fixedNow = time.Date(2025, 6, 4, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	uc      *implUseCase
	lms     *mockLMS
	router  *mockRouter
	llm     *mockLLM
	history repository.HistoryRepository
}

func newTestEnv() *testEnv {
	env := &testEnv{
		lms: &mockLMS{courses: []model.Course{
			{ID: 1, Name: "Intro to Biology"},
			{ID: 2, Name: "Linear Algebra"},
		}},
		router:  &mockRouter{intent: lms.Intent{QueryType: "upcoming", Kinds: []lms.Kind{lms.KindUpcoming}}},
		llm:     &mockLLM{answer: "You have nothing due."},
		history: memory.New(&mockLogger{}, repository.Options{MaxHistory: 10}, 0),
	}
	env.uc = New(&mockLogger{}, env.lms, env.router, env.llm, env.history, Options{
		Now: func() time.Time { return fixedNow },
	})
	return env
}
