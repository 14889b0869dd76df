package http

import (
	"errors"
	"net/http"

	"canvas-assistant/internal/assistant"
	pkgErrors "canvas-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery), errors.Is(err, assistant.ErrEmptySessionID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
