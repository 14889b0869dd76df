package router

// classification is the JSON object the classifier prompt asks for. The
// course_id the model may echo is ignored: course references are resolved
// against the live course list by name.
type classification struct {
	QueryType             string   `json:"query_type"`
	Course                *string  `json:"course"`
	CourseMatchConfidence *string  `json:"course_match_confidence"`
	TimeFrame             *string  `json:"time_frame"`
	SpecificItem          *string  `json:"specific_item"`
	APICalls              []string `json:"api_calls"`
}
