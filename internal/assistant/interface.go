package assistant

import (
	"context"

	"canvas-assistant/internal/model"
)

// UseCase answers free-text questions about the student's LMS account and
// keeps a short conversation history per session.
type UseCase interface {
	// Ask classifies the query, aggregates the data it needs and generates an answer.
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)

	// History returns the stored exchanges of a session, oldest first.
	History(ctx context.Context, sessionID string) ([]model.Exchange, error)

	// Reset forgets a session.
	Reset(ctx context.Context, sessionID string) error
}
