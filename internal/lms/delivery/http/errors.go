package http

import (
	"errors"
	"net/http"

	"canvas-assistant/internal/lms"
	pkgErrors "canvas-assistant/pkg/errors"
)

var errTokenRejected = pkgErrors.NewHTTPError(http.StatusUnauthorized, "LMS token was rejected or the LMS is unreachable")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, lms.ErrCalendarDisabled):
		return pkgErrors.NewHTTPError(http.StatusPreconditionFailed, err.Error())
	case errors.Is(err, lms.ErrInvalidKind):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
