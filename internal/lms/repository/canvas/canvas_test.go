package canvas

import (
	"context"
	"errors"
	"testing"

	pkgCanvas "canvas-assistant/pkg/canvas"
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

// mockClient is a scriptable pkgCanvas.Client.
type mockClient struct {
	self        *pkgCanvas.User
	courses     []pkgCanvas.Course
	coursesErr  error
	course      map[int64]*pkgCanvas.Course
	courseErr   error
	assignments []pkgCanvas.Assignment
	assignErr   error
	modules     []pkgCanvas.Module
	items       map[int64][]pkgCanvas.ModuleItem
	itemErrs    map[int64]error
	files       []pkgCanvas.File
	topics      []pkgCanvas.DiscussionTopic
	topicsErr   error

	lastInclude []string
}

func (m *mockClient) GetSelf(ctx context.Context) (*pkgCanvas.User, error) {
	if m.self == nil {
		return nil, errUpstream
	}
	return m.self, nil
}

func (m *mockClient) ListActiveCourses(ctx context.Context, include ...string) ([]pkgCanvas.Course, error) {
	m.lastInclude = include
	return m.courses, m.coursesErr
}

func (m *mockClient) GetCourse(ctx context.Context, courseID int64, include ...string) (*pkgCanvas.Course, error) {
	m.lastInclude = include
	if m.courseErr != nil {
		return nil, m.courseErr
	}
	return m.course[courseID], nil
}

func (m *mockClient) ListAssignments(ctx context.Context, courseID int64, include ...string) ([]pkgCanvas.Assignment, error) {
	return m.assignments, m.assignErr
}

func (m *mockClient) ListModules(ctx context.Context, courseID int64, include ...string) ([]pkgCanvas.Module, error) {
	return m.modules, nil
}

func (m *mockClient) ListModuleItems(ctx context.Context, courseID, moduleID int64) ([]pkgCanvas.ModuleItem, error) {
	if err := m.itemErrs[moduleID]; err != nil {
		return nil, err
	}
	return m.items[moduleID], nil
}

func (m *mockClient) ListFiles(ctx context.Context, courseID int64) ([]pkgCanvas.File, error) {
	return m.files, nil
}

func (m *mockClient) ListAnnouncements(ctx context.Context, courseID int64) ([]pkgCanvas.DiscussionTopic, error) {
	return m.topics, m.topicsErr
}

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestCourses_ActiveFilter(t *testing.T) {
	t.Run("drops date-restricted courses", func(t *testing.T) {
		client := &mockClient{courses: []pkgCanvas.Course{
			{ID: 1, Name: "Intro to CS"},
			{ID: 2, Name: "Archived", AccessRestrictedByDate: true},
			{ID: 3, Name: "Biology"},
		}}
		repo := New(client, &mockLogger{})

		got, err := repo.Courses(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
			t.Errorf("unexpected courses: %+v", got)
		}
		if len(client.lastInclude) != 1 || client.lastInclude[0] != pkgCanvas.IncludeTerm {
			t.Errorf("expected include term, got %v", client.lastInclude)
		}
	})

	t.Run("keeps everything when nothing is restricted", func(t *testing.T) {
		client := &mockClient{courses: []pkgCanvas.Course{{ID: 1}, {ID: 2}}}
		got, _ := New(client, &mockLogger{}).Courses(context.Background())
		if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("unexpected courses: %+v", got)
		}
	})

	t.Run("upstream failure yields empty list", func(t *testing.T) {
		client := &mockClient{coursesErr: errUpstream}
		got, err := New(client, &mockLogger{}).Courses(context.Background())
		if !errors.Is(err, errUpstream) {
			t.Fatalf("expected upstream error, got %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil list, got %v", got)
		}
	})
}

func TestModules_PartialFailureIsolation(t *testing.T) {
	client := &mockClient{
		modules: []pkgCanvas.Module{{ID: 1, Name: "Week 1"}, {ID: 2, Name: "Week 2"}, {ID: 3, Name: "Week 3"}},
		items: map[int64][]pkgCanvas.ModuleItem{
			1: {{ID: 11, Title: "Slides"}},
			3: {{ID: 31, Title: "Quiz"}, {ID: 32, Title: "Reading"}},
		},
		itemErrs: map[int64]error{2: errUpstream},
	}

	modules, err := New(client, &mockLogger{}).Modules(context.Background(), 99)
	if err != nil {
		t.Fatalf("a failed item fetch must not fail the whole call: %v", err)
	}
	if len(modules) != 3 {
		t.Fatalf("expected 3 modules, got %d", len(modules))
	}
	if len(modules[0].Items) != 1 || modules[0].Items[0].ModuleID != 1 {
		t.Errorf("module 1 items: %+v", modules[0].Items)
	}
	if modules[1].Items == nil || len(modules[1].Items) != 0 {
		t.Errorf("module 2 should have empty items, got %+v", modules[1].Items)
	}
	if len(modules[2].Items) != 2 {
		t.Errorf("module 3 items: %+v", modules[2].Items)
	}
	if modules[0].CourseID != 99 {
		t.Errorf("course id not set: %d", modules[0].CourseID)
	}
}

func TestGrades(t *testing.T) {
	assignments := []pkgCanvas.Assignment{
		{ID: 1, Name: "HW1", PointsPossible: floatPtr(10), Submission: &pkgCanvas.Submission{
			SubmittedAt: strPtr("2025-05-01T10:00:00Z"), Score: floatPtr(9), Grade: strPtr("9"),
		}},
		{ID: 2, Name: "HW2", PointsPossible: floatPtr(10), Submission: &pkgCanvas.Submission{
			SubmittedAt: strPtr("2025-05-08T10:00:00Z"),
		}},
		{ID: 3, Name: "HW3"},
	}

	t.Run("overall score from first enrollment", func(t *testing.T) {
		client := &mockClient{
			assignments: assignments,
			course: map[int64]*pkgCanvas.Course{7: {ID: 7, Enrollments: []pkgCanvas.Enrollment{
				{ComputedCurrentScore: floatPtr(88.5)},
				{ComputedCurrentScore: floatPtr(12)},
			}}},
		}

		g, err := New(client, &mockLogger{}).Grades(context.Background(), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.OverallScore == nil || *g.OverallScore != 88.5 {
			t.Errorf("unexpected overall score: %v", g.OverallScore)
		}
		if len(client.lastInclude) != 1 || client.lastInclude[0] != pkgCanvas.IncludeTotalScores {
			t.Errorf("expected total_scores include, got %v", client.lastInclude)
		}

		want := []struct {
			submitted, graded, hasScore bool
		}{{true, true, true}, {true, false, false}, {false, false, false}}
		for i, w := range want {
			rec := g.Assignments[i]
			if rec.Submitted != w.submitted || rec.Graded != w.graded || (rec.Score != nil) != w.hasScore {
				t.Errorf("record %d: %+v", i, rec)
			}
		}
		if g.Assignments[2].PointsPossible != 0 {
			t.Errorf("missing points must default to 0")
		}
	})

	t.Run("missing enrollment keeps overall unknown", func(t *testing.T) {
		client := &mockClient{
			assignments: assignments,
			course:      map[int64]*pkgCanvas.Course{7: {ID: 7}},
		}
		g, _ := New(client, &mockLogger{}).Grades(context.Background(), 7)
		if g.OverallScore != nil {
			t.Errorf("expected unknown overall score, got %v", *g.OverallScore)
		}
	})

	t.Run("summary failure yields empty grades", func(t *testing.T) {
		client := &mockClient{assignments: assignments, courseErr: errUpstream}
		g, err := New(client, &mockLogger{}).Grades(context.Background(), 7)
		if err == nil {
			t.Fatal("expected error")
		}
		if len(g.Assignments) != 0 || g.OverallScore != nil {
			t.Errorf("expected empty grades, got %+v", g)
		}
	})
}

func TestAssignments_Mapping(t *testing.T) {
	client := &mockClient{assignments: []pkgCanvas.Assignment{
		{ID: 1, Name: "No due date"},
		{ID: 2, Name: "Essay", DueAt: strPtr("2025-07-01T23:59:00Z"), PointsPossible: floatPtr(50)},
	}}

	got, err := New(client, &mockLogger{}).Assignments(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].DueAt != nil {
		t.Errorf("missing due date must stay nil")
	}
	if got[1].DueAt == nil || *got[1].DueAt != "2025-07-01T23:59:00Z" || got[1].PointsPossible != 50 {
		t.Errorf("unexpected assignment: %+v", got[1])
	}
	if got[1].CourseID != 4 {
		t.Errorf("course id not set")
	}
}

func TestAnnouncementsAndSelf(t *testing.T) {
	client := &mockClient{
		self: &pkgCanvas.User{ID: 5, Name: "Ada"},
		topics: []pkgCanvas.DiscussionTopic{
			{ID: 1, Title: "Exam moved", PostedAt: strPtr("2025-05-01T00:00:00Z"), Author: &pkgCanvas.Author{DisplayName: "Prof"}},
		},
	}
	repo := New(client, &mockLogger{})

	anns, err := repo.Announcements(context.Background(), 1)
	if err != nil || len(anns) != 1 || anns[0].Author != "Prof" || anns[0].PostedAt == "" {
		t.Errorf("unexpected announcements: %+v err=%v", anns, err)
	}

	u, err := repo.Self(context.Background())
	if err != nil || u.ID != 5 {
		t.Errorf("unexpected user: %+v err=%v", u, err)
	}

	client.self = nil
	if _, err := repo.Self(context.Background()); err == nil {
		t.Error("expected error when upstream fails")
	}
}
