package model

// User is the account that owns the LMS token.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name,omitempty"`
	LoginID      string `json:"login_id,omitempty"`
	PrimaryEmail string `json:"primary_email,omitempty"`
}

// Term is the academic term a course runs in.
type Term struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StartAt string `json:"start_at,omitempty"`
	EndAt   string `json:"end_at,omitempty"`
}

// Teacher is a course instructor as listed on the course detail.
type Teacher struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// Course is a snapshot of one LMS course.
type Course struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CourseCode string    `json:"course_code"`
	Term       *Term     `json:"term,omitempty"`
	Syllabus   string    `json:"syllabus_body,omitempty"`
	Teachers   []Teacher `json:"teachers,omitempty"`
}
