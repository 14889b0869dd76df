package memory

import (
	"context"

	"canvas-assistant/internal/model"
)

func (r *implRepository) Append(ctx context.Context, sessionID string, ex model.Exchange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, _ := r.sessions.Get(sessionID)
	next := make([]model.Exchange, 0, len(history)+1)
	next = append(next, history...)
	next = append(next, ex)
	if len(next) > r.maxHistory {
		next = next[len(next)-r.maxHistory:]
	}
	r.sessions.Add(sessionID, next)
	return nil
}

func (r *implRepository) List(ctx context.Context, sessionID string) ([]model.Exchange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, ok := r.sessions.Get(sessionID)
	if !ok {
		return nil, nil
	}
	return append([]model.Exchange(nil), history...), nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessions.Remove(sessionID) {
		r.l.Debugf(ctx, "memory history repository: session %s deleted", sessionID)
	}
	return nil
}
