package repository

import (
	"context"

	"canvas-assistant/internal/model"
)

// HistoryRepository stores conversation exchanges per session.
type HistoryRepository interface {
	// Append adds ex to the session and drops the oldest exchanges beyond the
	// configured maximum.
	Append(ctx context.Context, sessionID string, ex model.Exchange) error

	// List returns the session's exchanges, oldest first. Unknown sessions are empty.
	List(ctx context.Context, sessionID string) ([]model.Exchange, error)

	// Delete forgets the session.
	Delete(ctx context.Context, sessionID string) error
}
