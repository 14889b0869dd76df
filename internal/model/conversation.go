package model

import "time"

// Exchange is one question/answer pair of a conversation.
type Exchange struct {
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	QueryType string    `json:"query_type,omitempty"`
	CourseID  *int64    `json:"course_id,omitempty"`
	At        time.Time `json:"at"`
}
