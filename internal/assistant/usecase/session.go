package usecase

import (
	"context"
	"fmt"
	"strings"

	"canvas-assistant/internal/assistant"
	"canvas-assistant/internal/model"
)

func (uc *implUseCase) History(ctx context.Context, sessionID string) ([]model.Exchange, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, assistant.ErrEmptySessionID
	}
	history, err := uc.history.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return history, nil
}

func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return assistant.ErrEmptySessionID
	}
	if err := uc.history.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixReset, err)
	}
	uc.l.Infof(ctx, "%s: session %s cleared", LogPrefixReset, sessionID)
	return nil
}
