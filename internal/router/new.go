package router

import (
	"context"

	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/llmprovider"
	"canvas-assistant/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	// Classify turns a free-text query into an intent. Model failures yield
	// the unknown intent; only a cancelled context is reported as an error.
	Classify(ctx context.Context, query string, courses []model.Course, history []string) (lms.Intent, error)
}

// SemanticRouter classifies user intent using LLM
type SemanticRouter struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm llmprovider.Generator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
