package canvas

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds Canvas client configuration.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	PerPage     int
	MaxPages    int
	// HTTPClient is the base transport wrapped with bearer auth. Optional.
	HTTPClient *http.Client
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return fmt.Errorf("canvas: AccessToken is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.PerPage <= 0 {
		c.PerPage = DefaultPerPage
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	return nil
}

// APIError is returned for any non-2xx Canvas response.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("canvas: API error %d on %s: %s", e.StatusCode, e.Path, e.Body)
}

// User is the /users/self payload.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	LoginID      string `json:"login_id"`
	PrimaryEmail string `json:"primary_email"`
}

// Term is embedded in course payloads with include[]=term.
type Term struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// Enrollment is embedded in course payloads; total_scores adds the computed score.
type Enrollment struct {
	Type                 string   `json:"type"`
	EnrollmentState      string   `json:"enrollment_state"`
	ComputedCurrentScore *float64 `json:"computed_current_score"`
	ComputedFinalScore   *float64 `json:"computed_final_score"`
	ComputedCurrentGrade *string  `json:"computed_current_grade"`
}

// Teacher is embedded in course payloads with include[]=teachers.
type Teacher struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// Course is the Canvas course payload.
type Course struct {
	ID                     int64        `json:"id"`
	Name                   string       `json:"name"`
	CourseCode             string       `json:"course_code"`
	AccessRestrictedByDate bool         `json:"access_restricted_by_date"`
	Term                   *Term        `json:"term"`
	SyllabusBody           *string      `json:"syllabus_body"`
	Teachers               []Teacher    `json:"teachers"`
	Enrollments            []Enrollment `json:"enrollments"`
}

// Submission is embedded in assignments with include[]=submission.
type Submission struct {
	SubmittedAt   *string  `json:"submitted_at"`
	Score         *float64 `json:"score"`
	Grade         *string  `json:"grade"`
	WorkflowState string   `json:"workflow_state"`
}

// Assignment is the Canvas assignment payload.
type Assignment struct {
	ID                      int64       `json:"id"`
	CourseID                int64       `json:"course_id"`
	Name                    string      `json:"name"`
	DueAt                   *string     `json:"due_at"`
	PointsPossible          *float64    `json:"points_possible"`
	HTMLURL                 string      `json:"html_url"`
	HasSubmittedSubmissions bool        `json:"has_submitted_submissions"`
	Submission              *Submission `json:"submission"`
}

// ModuleItem is one entry of a module.
type ModuleItem struct {
	ID          int64  `json:"id"`
	ModuleID    int64  `json:"module_id"`
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	ContentID   int64  `json:"content_id"`
	HTMLURL     string `json:"html_url"`
	ExternalURL string `json:"external_url"`
}

// Module is the Canvas module payload.
type Module struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Position int          `json:"position"`
	Items    []ModuleItem `json:"items"`
}

// File is the Canvas file payload.
type File struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	ContentType string `json:"content-type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
	UpdatedAt   string `json:"updated_at"`
}

// Author is embedded in discussion topics.
type Author struct {
	DisplayName string `json:"display_name"`
}

// DiscussionTopic is the Canvas discussion topic payload; announcements are topics.
type DiscussionTopic struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	PostedAt *string `json:"posted_at"`
	HTMLURL  string  `json:"html_url"`
	Author   *Author `json:"author"`
}
