package http

import (
	"canvas-assistant/internal/assistant"
	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/response"
)

type queryReq struct {
	SessionID string `json:"session_id" binding:"max=128"`
	Query     string `json:"query" binding:"required,max=2000"`
}

func (r queryReq) toInput() assistant.AskInput {
	return assistant.AskInput{
		SessionID: r.SessionID,
		Query:     r.Query,
	}
}

type intentResp struct {
	QueryType string     `json:"query_type"`
	Kinds     []lms.Kind `json:"kinds"`
	Course    string     `json:"course,omitempty"`
	TimeFrame string     `json:"time_frame,omitempty"`
}

type queryResp struct {
	SessionID   string            `json:"session_id"`
	Answer      string            `json:"answer"`
	Intent      intentResp        `json:"intent"`
	CourseID    *int64            `json:"course_id,omitempty"`
	Provider    string            `json:"provider,omitempty"`
	Degraded    bool              `json:"degraded"`
	GeneratedAt response.DateTime `json:"generated_at"`
}

func newQueryResp(out assistant.AskOutput) queryResp {
	return queryResp{
		SessionID: out.SessionID,
		Answer:    out.Answer,
		Intent: intentResp{
			QueryType: out.Intent.QueryType,
			Kinds:     out.Intent.Kinds,
			Course:    out.Intent.CourseRef,
			TimeFrame: out.Intent.TimeFrame,
		},
		CourseID:    out.Data.CourseID,
		Provider:    out.Provider,
		Degraded:    out.Degraded,
		GeneratedAt: response.DateTime(out.GeneratedAt),
	}
}

type historyResp struct {
	SessionID string           `json:"session_id"`
	Exchanges []model.Exchange `json:"exchanges"`
	Total     int              `json:"total"`
}

func newHistoryResp(sessionID string, exchanges []model.Exchange) historyResp {
	if exchanges == nil {
		exchanges = []model.Exchange{}
	}
	return historyResp{SessionID: sessionID, Exchanges: exchanges, Total: len(exchanges)}
}
