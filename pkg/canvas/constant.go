package canvas

import "time"

const (
	// DefaultBaseURL is the public Canvas REST root.
	DefaultBaseURL = "https://canvas.instructure.com/api/v1"

	// DefaultTimeout bounds every upstream request.
	DefaultTimeout = 30 * time.Second

	// DefaultPerPage is sent as per_page on list endpoints.
	DefaultPerPage = 100

	// DefaultMaxPages caps how many Link rel="next" pages are followed.
	DefaultMaxPages = 10
)
