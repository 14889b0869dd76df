package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"canvas-assistant/internal/assistant"
	"canvas-assistant/internal/model"
)

// Ask answers one query. Upstream and model failures degrade the answer
// instead of failing the call; only an empty query or a cancelled context
// is an error.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input assistant.AskInput) (assistant.AskOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return assistant.AskOutput{}, assistant.ErrEmptyQuery
	}

	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	uc.l.Infof(ctx, "%s: user=%s channel=%s session=%s query=%q", LogPrefixAsk, sc.UserID, sc.Channel, sessionID, query)

	history, err := uc.history.List(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: failed to load history for %s: %v", LogPrefixAsk, sessionID, err)
	}
	recent := lastExchanges(history, uc.contextWindow)

	courses := uc.lms.ActiveCourses(ctx)
	intent, err := uc.router.Classify(ctx, query, courses, historyLines(recent))
	if err != nil {
		return assistant.AskOutput{}, fmt.Errorf("%s: %w", LogPrefixAsk, err)
	}

	agg := uc.lms.Aggregate(ctx, intent)
	answer, provider, ok := uc.generate(ctx, query, recent, agg.Data)
	if err := ctx.Err(); err != nil {
		return assistant.AskOutput{}, fmt.Errorf("%s: %w", LogPrefixAsk, err)
	}

	ex := model.Exchange{
		Query:     query,
		Answer:    answer,
		QueryType: intent.QueryType,
		CourseID:  agg.Data.CourseID,
		At:        uc.now(),
	}
	if err := uc.history.Append(ctx, sessionID, ex); err != nil {
		uc.l.Warnf(ctx, "%s: failed to store exchange for %s: %v", LogPrefixAsk, sessionID, err)
	}

	return assistant.AskOutput{
		SessionID:   sessionID,
		Answer:      answer,
		Intent:      intent,
		Data:        agg.Data,
		Provider:    provider,
		Degraded:    !ok,
		GeneratedAt: agg.GeneratedAt,
	}, nil
}

func lastExchanges(history []model.Exchange, n int) []model.Exchange {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func historyLines(exchanges []model.Exchange) []string {
	lines := make([]string, 0, len(exchanges)*2)
	for _, ex := range exchanges {
		lines = append(lines,
			"User: "+ex.Query,
			"Assistant: "+truncateText(ex.Answer, MaxHistoryAnswerChars),
		)
	}
	return lines
}

func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + MsgTruncated
}
