package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"canvas-assistant/internal/assistant/repository"
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

func exchange(i int) model.Exchange {
	return model.Exchange{Query: fmt.Sprintf("q%d", i), Answer: fmt.Sprintf("a%d", i)}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("caps at max history keeping the newest", func(t *testing.T) {
		repo := New(&mockLogger{}, repository.Options{MaxHistory: 3}, 0)
		for i := 1; i <= 5; i++ {
			if err := repo.Append(ctx, "s1", exchange(i)); err != nil {
				t.Fatalf("Append: %v", err)
			}
		}

		got, err := repo.List(ctx, "s1")
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 || got[0].Query != "q3" || got[2].Query != "q5" {
			t.Errorf("history = %+v", got)
		}
	})

	t.Run("unknown session is empty", func(t *testing.T) {
		repo := New(&mockLogger{}, repository.Options{}, 0)
		got, err := repo.List(ctx, "nobody")
		if err != nil || len(got) != 0 {
			t.Errorf("List = %v, %v", got, err)
		}
	})

	t.Run("sessions are isolated and deletable", func(t *testing.T) {
		repo := New(&mockLogger{}, repository.Options{}, 0)
		_ = repo.Append(ctx, "a", exchange(1))
		_ = repo.Append(ctx, "b", exchange(2))

		if err := repo.Delete(ctx, "a"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if got, _ := repo.List(ctx, "a"); len(got) != 0 {
			t.Errorf("deleted session still has %d exchanges", len(got))
		}
		if got, _ := repo.List(ctx, "b"); len(got) != 1 {
			t.Errorf("other session lost history: %v", got)
		}
	})

	t.Run("list returns a copy", func(t *testing.T) {
		repo := New(&mockLogger{}, repository.Options{}, 0)
		_ = repo.Append(ctx, "s", exchange(1))

		got, _ := repo.List(ctx, "s")
		got[0].Query = "mutated"

		again, _ := repo.List(ctx, "s")
		if again[0].Query != "q1" {
			t.Errorf("stored history was mutated: %+v", again)
		}
	})

	t.Run("sessions expire", func(t *testing.T) {
		repo := New(&mockLogger{}, repository.Options{TTL: 20 * time.Millisecond}, 0)
		_ = repo.Append(ctx, "s", exchange(1))

		time.Sleep(60 * time.Millisecond)
		if got, _ := repo.List(ctx, "s"); len(got) != 0 {
			t.Errorf("expected expired session, got %v", got)
		}
	})

	t.Run("least recently used session is evicted", func(t *testing.T) {
		repo := New(&mockLogger{}, repository.Options{}, 2)
		_ = repo.Append(ctx, "a", exchange(1))
		_ = repo.Append(ctx, "b", exchange(2))
		_ = repo.Append(ctx, "c", exchange(3))

		if got, _ := repo.List(ctx, "a"); len(got) != 0 {
			t.Errorf("expected a evicted, got %v", got)
		}
	})
}
