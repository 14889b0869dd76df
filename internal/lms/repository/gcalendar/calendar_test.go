package gcalendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"canvas-assistant/internal/lms/repository"
	pkgGCal "canvas-assistant/pkg/gcalendar"
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

type mockClient struct {
	created   []pkgGCal.CreateEventRequest
	listReq   pkgGCal.ListEventsRequest
	events    []pkgGCal.Event
	listErr   error
	createErr error
}

func (m *mockClient) CreateEvent(ctx context.Context, req pkgGCal.CreateEventRequest) (*pkgGCal.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &pkgGCal.Event{ID: "ev-1", HtmlLink: "https://calendar.example/ev-1"}, nil
}

func (m *mockClient) ListEvents(ctx context.Context, req pkgGCal.ListEventsRequest) ([]pkgGCal.Event, error) {
	m.listReq = req
	return m.events, m.listErr
}

var fixedNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestRepo(client *mockClient) *implRepository {
	return New(client, Config{Now: func() time.Time { return fixedNow }}, &mockLogger{}).(*implRepository)
}

func TestExportedAssignmentIDs(t *testing.T) {
	t.Run("collects tagged events", func(t *testing.T) {
		client := &mockClient{events: []pkgGCal.Event{
			{ID: "a", PrivateProperties: map[string]string{PropAssignmentID: "11"}},
			{ID: "b", PrivateProperties: map[string]string{PropAssignmentID: "not-a-number"}},
			{ID: "c"},
			{ID: "d", PrivateProperties: map[string]string{PropAssignmentID: "12"}},
		}}
		repo := newTestRepo(client)

		ids, err := repo.ExportedAssignmentIDs(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ids) != 2 || !ids[11] || !ids[12] {
			t.Errorf("unexpected ids: %v", ids)
		}
		if client.listReq.CalendarID != "primary" {
			t.Errorf("expected primary calendar, got %q", client.listReq.CalendarID)
		}
		if len(client.listReq.PrivateProperties) != 1 || client.listReq.PrivateProperties[0] != "source=canvas-assistant" {
			t.Errorf("expected source filter, got %v", client.listReq.PrivateProperties)
		}
		if !client.listReq.TimeMax.Equal(fixedNow.Add(DefaultLookahead)) {
			t.Errorf("unexpected time max: %v", client.listReq.TimeMax)
		}
	})

	t.Run("propagates list failure", func(t *testing.T) {
		repo := newTestRepo(&mockClient{listErr: errors.New("boom")})
		if _, err := repo.ExportedAssignmentIDs(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestCreateDeadlineEvent(t *testing.T) {
	t.Run("ends at due time", func(t *testing.T) {
		client := &mockClient{}
		repo := newTestRepo(client)

		got, err := repo.CreateDeadlineEvent(context.Background(), repository.CalendarEvent{
			AssignmentID: 7,
			Summary:      "Lab 1",
			DueAt:        "2025-06-10T23:59:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ev-1" || got.Link == "" {
			t.Errorf("unexpected created event: %+v", got)
		}

		req := client.created[0]
		due := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
		if !req.EndTime.Equal(due) || !req.StartTime.Equal(due.Add(-DefaultEventDuration)) {
			t.Errorf("unexpected window %v - %v", req.StartTime, req.EndTime)
		}
		if req.PrivateProperties[PropAssignmentID] != "7" || req.PrivateProperties[PropSource] != SourceValue {
			t.Errorf("unexpected properties: %v", req.PrivateProperties)
		}
	})

	t.Run("rejects unparseable due date", func(t *testing.T) {
		client := &mockClient{}
		repo := newTestRepo(client)
		if _, err := repo.CreateDeadlineEvent(context.Background(), repository.CalendarEvent{DueAt: "soon"}); err == nil {
			t.Fatal("expected error")
		}
		if len(client.created) != 0 {
			t.Error("no event should be created")
		}
	})

	t.Run("propagates create failure", func(t *testing.T) {
		repo := newTestRepo(&mockClient{createErr: errors.New("quota")})
		_, err := repo.CreateDeadlineEvent(context.Background(), repository.CalendarEvent{DueAt: "2025-06-10T23:59:00Z"})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
