package canvas

import (
	"canvas-assistant/internal/lms/repository"
	pkgCanvas "canvas-assistant/pkg/canvas"
	pkgLog "canvas-assistant/pkg/log"
)

type implRepository struct {
	client pkgCanvas.Client
	l      pkgLog.Logger
}

// New creates a Canvas backed LMS repository.
func New(client pkgCanvas.Client, l pkgLog.Logger) repository.LMSRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
