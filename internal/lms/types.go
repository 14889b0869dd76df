package lms

import (
	"strings"
	"time"

	"canvas-assistant/internal/model"
)

// Kind is a resource kind an intent can ask for.
type Kind string

const (
	KindAssignments   Kind = "assignments"
	KindDeadlines     Kind = "deadlines"
	KindUpcoming      Kind = "upcoming"
	KindGrades        Kind = "grades"
	KindModules       Kind = "modules"
	KindFiles         Kind = "files"
	KindAnnouncements Kind = "announcements"
	KindCourseDetails Kind = "course_details"
)

// ValidKinds lists every Kind in a stable order.
var ValidKinds = []Kind{
	KindAssignments, KindDeadlines, KindUpcoming, KindGrades,
	KindModules, KindFiles, KindAnnouncements, KindCourseDetails,
}

// Intent is the classified form of a user query.
type Intent struct {
	QueryType    string   `json:"query_type"`
	Kinds        []Kind   `json:"kinds"`
	CourseRef    string   `json:"course,omitempty"`
	Confidence   string   `json:"confidence,omitempty"`
	TimeFrame    string   `json:"time_frame,omitempty"`
	SpecificItem string   `json:"specific_item,omitempty"`
	APICalls     []string `json:"api_calls,omitempty"`
}

// Has reports whether the intent asks for k.
func (i Intent) Has(k Kind) bool {
	return containsKind(i.Kinds, k)
}

// DataBag is the sole output of an aggregation: one collection per resource
// kind plus the resolved course. Kinds that were not requested stay nil.
type DataBag struct {
	CourseID      *int64               `json:"course_id,omitempty"`
	Courses       []model.Course       `json:"courses"`
	CourseDetails *model.Course        `json:"course_details,omitempty"`
	Assignments   []model.Assignment   `json:"assignments,omitempty"`
	Grades        *model.Grades        `json:"grades,omitempty"`
	Modules       []model.Module       `json:"modules,omitempty"`
	Files         []model.File         `json:"files,omitempty"`
	Announcements []model.Announcement `json:"announcements,omitempty"`
	Deadlines     []model.Deadline     `json:"upcoming_deadlines,omitempty"`
}

// AggregateOutput wraps a DataBag with the instant it was computed against.
type AggregateOutput struct {
	Data        DataBag
	GeneratedAt time.Time
}

// ExportDeadlinesOutput summarizes a calendar export run.
type ExportDeadlinesOutput struct {
	Created int
	Skipped int
	Failed  int
	Events  []ExportedEvent
}

// ExportedEvent is one deadline written to the calendar.
type ExportedEvent struct {
	AssignmentID int64
	EventID      string
	Link         string
}

// Query types produced by intent classification.
const (
	QueryTypeUnknown         = "unknown"
	QueryTypeAssignments     = "assignments"
	QueryTypeDeadlines       = "deadlines"
	QueryTypeUpcoming        = "upcoming"
	QueryTypeGrades          = "grades"
	QueryTypeCourseMaterials = "course_materials"
	QueryTypeModules         = "modules"
	QueryTypeFiles           = "files"
	QueryTypeAnnouncements   = "announcements"
	QueryTypeCourseInfo      = "course_info"
)

var queryKinds = map[string][]Kind{
	QueryTypeAssignments:     {KindAssignments},
	QueryTypeDeadlines:       {KindAssignments, KindDeadlines},
	QueryTypeUpcoming:        {KindUpcoming},
	QueryTypeGrades:          {KindGrades},
	QueryTypeCourseMaterials: {KindModules, KindFiles},
	QueryTypeModules:         {KindModules, KindFiles},
	QueryTypeFiles:           {KindFiles},
	QueryTypeAnnouncements:   {KindAnnouncements},
	QueryTypeCourseInfo:      {KindCourseDetails},
}

// KindsForQuery maps a query type to the resource kinds that answer it.
// A named course always adds its details. Unknown query types map to none.
func KindsForQuery(queryType string, namedCourse bool) []Kind {
	kinds := append([]Kind(nil), queryKinds[NormalizeQueryType(queryType)]...)
	if namedCourse && !containsKind(kinds, KindCourseDetails) {
		kinds = append(kinds, KindCourseDetails)
	}
	return kinds
}

// NormalizeQueryType folds free-form labels such as "Course Materials" onto
// the snake_case query types.
func NormalizeQueryType(queryType string) string {
	q := strings.ToLower(strings.TrimSpace(queryType))
	q = strings.NewReplacer(" ", "_", "-", "_").Replace(q)
	if q == "" {
		return QueryTypeUnknown
	}
	return q
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
