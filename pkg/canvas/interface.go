package canvas

import "context"

// Include values accepted by Canvas include[] parameters.
const (
	IncludeTerm         = "term"
	IncludeSyllabusBody = "syllabus_body"
	IncludeTeachers     = "teachers"
	IncludeTotalScores  = "total_scores"
	IncludeSubmission   = "submission"
	IncludeItems        = "items"
)

// Client is a thin Canvas REST client. Every method performs real upstream
// calls and reports failures; it never caches.
// Implementations are safe for concurrent use.
type Client interface {
	// GetSelf returns the token owner (/users/self).
	GetSelf(ctx context.Context) (*User, error)

	// ListActiveCourses lists courses with enrollment_state=active.
	ListActiveCourses(ctx context.Context, include ...string) ([]Course, error)

	// GetCourse returns one course with the given include[] values.
	GetCourse(ctx context.Context, courseID int64, include ...string) (*Course, error)

	// ListAssignments lists the flat assignment list of a course.
	ListAssignments(ctx context.Context, courseID int64, include ...string) ([]Assignment, error)

	// ListModules lists modules; include items to embed them.
	ListModules(ctx context.Context, courseID int64, include ...string) ([]Module, error)

	// ListModuleItems lists the items of one module.
	ListModuleItems(ctx context.Context, courseID, moduleID int64) ([]ModuleItem, error)

	// ListFiles lists course files.
	ListFiles(ctx context.Context, courseID int64) ([]File, error)

	// ListAnnouncements lists discussion topics with only_announcements=true.
	ListAnnouncements(ctx context.Context, courseID int64) ([]DiscussionTopic, error)
}

// New creates a new Canvas client with the given configuration.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newCanvasImpl(cfg), nil
}
