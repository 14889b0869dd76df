package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"canvas-assistant/internal/cache"
	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/middleware"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/log"
)

type mockUseCase struct {
	user       model.User
	userOK     bool
	courses    []model.Course
	deadlines  []model.Deadline
	lastIntent lms.Intent
	export     lms.ExportDeadlinesOutput
	exportErr  error
	purged     int
}

func (m *mockUseCase) Aggregate(ctx context.Context, intent lms.Intent) lms.AggregateOutput {
	m.lastIntent = intent
	id := int64(1)
	return lms.AggregateOutput{
		Data:        lms.DataBag{CourseID: &id, Courses: m.courses},
		GeneratedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *mockUseCase) ActiveCourses(ctx context.Context) []model.Course { return m.courses }

func (m *mockUseCase) UpcomingDeadlines(ctx context.Context) []model.Deadline { return m.deadlines }

func (m *mockUseCase) ResolveCourse(ctx context.Context, name string) (int64, bool) { return 0, false }

func (m *mockUseCase) Profile(ctx context.Context) (model.User, bool) { return m.user, m.userOK }

func (m *mockUseCase) ExportDeadlines(ctx context.Context) (lms.ExportDeadlinesOutput, error) {
	return m.export, m.exportErr
}

func (m *mockUseCase) CacheStats() cache.Stats { return cache.Stats{Entries: 3, Hits: 5} }

func (m *mockUseCase) PurgeCache() int { return m.purged }

func setupRouter(uc lms.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	RegisterRoutes(r.Group("/api/v1/lms"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return w, env
}

func TestMe(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		r := setupRouter(&mockUseCase{user: model.User{ID: 7, Name: "Ada"}, userOK: true})
		w, env := do(t, r, http.MethodGet, "/api/v1/lms/me", "")
		if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"Ada"`) {
			t.Errorf("unexpected response %d %s", w.Code, env.Data)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w, env := do(t, r, http.MethodGet, "/api/v1/lms/me", "")
		if w.Code != http.StatusUnauthorized || env.ErrorCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d %+v", w.Code, env)
		}
	})
}

func TestCoursesAndDeadlines(t *testing.T) {
	uc := &mockUseCase{
		courses:   []model.Course{{ID: 1, Name: "Intro to CS"}},
		deadlines: []model.Deadline{{AssignmentID: 11, DueAt: "2025-07-01T00:00:00Z"}},
	}
	r := setupRouter(uc)

	w, env := do(t, r, http.MethodGet, "/api/v1/lms/courses", "")
	var courses coursesResp
	json.Unmarshal(env.Data, &courses)
	if w.Code != http.StatusOK || courses.Total != 1 || courses.Courses[0].Name != "Intro to CS" {
		t.Errorf("unexpected courses: %d %+v", w.Code, courses)
	}

	w, env = do(t, r, http.MethodGet, "/api/v1/lms/deadlines", "")
	var deadlines deadlinesResp
	json.Unmarshal(env.Data, &deadlines)
	if w.Code != http.StatusOK || deadlines.Total != 1 || deadlines.Deadlines[0].AssignmentID != 11 {
		t.Errorf("unexpected deadlines: %d %+v", w.Code, deadlines)
	}
}

func TestAggregate(t *testing.T) {
	t.Run("valid intent", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setupRouter(uc)

		w, env := do(t, r, http.MethodPost, "/api/v1/lms/aggregate", `{"query_type":"grades","kinds":["grades"],"course":" Intro "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, env.Message)
		}
		if uc.lastIntent.CourseRef != "Intro" || !uc.lastIntent.Has(lms.KindGrades) {
			t.Errorf("unexpected intent: %+v", uc.lastIntent)
		}
		if !strings.Contains(string(env.Data), `"generated_at":"2025-06-01 00:00:00"`) {
			t.Errorf("unexpected body: %s", env.Data)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w, env := do(t, r, http.MethodPost, "/api/v1/lms/aggregate", `{"kinds":["quizzes"]}`)
		if w.Code != http.StatusBadRequest || env.ErrorCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d %+v", w.Code, env)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r := setupRouter(&mockUseCase{})
		w, _ := do(t, r, http.MethodPost, "/api/v1/lms/aggregate", `{`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCacheEndpoints(t *testing.T) {
	r := setupRouter(&mockUseCase{purged: 4})

	w, env := do(t, r, http.MethodGet, "/api/v1/lms/cache/stats", "")
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"entries":3`) {
		t.Errorf("unexpected stats: %d %s", w.Code, env.Data)
	}

	w, env = do(t, r, http.MethodDelete, "/api/v1/lms/cache", "")
	if w.Code != http.StatusOK || !strings.Contains(string(env.Data), `"purged":4`) {
		t.Errorf("unexpected purge: %d %s", w.Code, env.Data)
	}
}

func TestExportDeadlines(t *testing.T) {
	tests := []struct {
		name     string
		uc       *mockUseCase
		wantCode int
	}{
		{
			name: "created",
			uc: &mockUseCase{export: lms.ExportDeadlinesOutput{
				Created: 1,
				Events:  []lms.ExportedEvent{{AssignmentID: 11, EventID: "ev", Link: "https://calendar.example/ev"}},
			}},
			wantCode: http.StatusOK,
		},
		{
			name:     "calendar disabled",
			uc:       &mockUseCase{exportErr: lms.ErrCalendarDisabled},
			wantCode: http.StatusPreconditionFailed,
		},
		{
			name:     "calendar failure",
			uc:       &mockUseCase{exportErr: errors.New("lms: failed to list exported deadlines: boom")},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(tt.uc)
			w, env := do(t, r, http.MethodPost, "/api/v1/lms/deadlines/export", "")
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %+v", tt.wantCode, w.Code, env)
			}
			if w.Code == http.StatusInternalServerError && strings.Contains(env.Message, "boom") {
				t.Errorf("internal cause leaked: %q", env.Message)
			}
		})
	}
}
