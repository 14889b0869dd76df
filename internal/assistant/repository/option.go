package repository

import "time"

// Defaults shared by the history backends.
const (
	DefaultMaxHistory = 10
	DefaultTTL        = 24 * time.Hour
)

// Options configures a history backend.
type Options struct {
	MaxHistory int
	TTL        time.Duration
}

// WithDefaults fills unset fields.
func (o Options) WithDefaults() Options {
	if o.MaxHistory <= 0 {
		o.MaxHistory = DefaultMaxHistory
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	return o
}
