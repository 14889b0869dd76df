package http

import (
	"canvas-assistant/internal/lms"
	"canvas-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc lms.UseCase
}

// New creates the HTTP handler for the LMS domain.
func New(l log.Logger, uc lms.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
