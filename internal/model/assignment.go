package model

// Submission is the current user's submission state for an assignment.
type Submission struct {
	SubmittedAt *string  `json:"submitted_at"`
	Score       *float64 `json:"score"`
	Grade       *string  `json:"grade"`
}

// Submitted reports whether the submission carries a submitted-at timestamp.
func (s *Submission) Submitted() bool {
	return s != nil && s.SubmittedAt != nil && *s.SubmittedAt != ""
}

// Graded reports whether a grade has been posted.
func (s *Submission) Graded() bool {
	return s != nil && s.Grade != nil
}

// Assignment is a snapshot of one assignment. DueAt is the raw upstream string
// and stays nil when the assignment has no due date.
type Assignment struct {
	ID             int64       `json:"id"`
	CourseID       int64       `json:"course_id"`
	Name           string      `json:"name"`
	DueAt          *string     `json:"due_at"`
	PointsPossible float64     `json:"points_possible"`
	HTMLURL        string      `json:"html_url,omitempty"`
	Submission     *Submission `json:"submission,omitempty"`
}

// GradeRecord is one graded line of a course.
type GradeRecord struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	PointsPossible float64  `json:"points_possible"`
	Score          *float64 `json:"score"`
	Submitted      bool     `json:"submitted"`
	Graded         bool     `json:"graded"`
}

// Grades is the grade summary of one course. OverallScore is nil when the
// LMS did not report a computed score.
type Grades struct {
	CourseID     int64         `json:"course_id"`
	OverallScore *float64      `json:"overall_score"`
	Assignments  []GradeRecord `json:"assignments"`
}

// Deadline is one entry of the cross-course deadline merge.
type Deadline struct {
	CourseID       int64   `json:"course_id"`
	CourseName     string  `json:"course_name"`
	AssignmentID   int64   `json:"assignment_id"`
	AssignmentName string  `json:"assignment_name"`
	DueAt          string  `json:"due_at"`
	PointsPossible float64 `json:"points_possible"`
	Submitted      bool    `json:"submitted"`
	HTMLURL        string  `json:"html_url,omitempty"`
}
