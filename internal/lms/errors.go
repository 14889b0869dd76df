package lms

import "errors"

var (
	ErrCalendarDisabled = errors.New("calendar export is not configured")
	ErrInvalidKind      = errors.New("unknown resource kind")
)
