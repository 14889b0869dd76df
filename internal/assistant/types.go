package assistant

import (
	"time"

	"canvas-assistant/internal/lms"
)

// AskInput is one user turn. An empty SessionID starts a new session.
type AskInput struct {
	SessionID string
	Query     string
}

// AskOutput is the generated answer plus what it was built from.
type AskOutput struct {
	SessionID   string
	Answer      string
	Intent      lms.Intent
	Data        lms.DataBag
	Provider    string
	Degraded    bool
	GeneratedAt time.Time
}
