package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are the query classifier of a student assistant for a Canvas LMS account.
Analyze the student query and determine what information is needed from the Canvas API.

Identify:
1. The query type: one of assignments, deadlines, upcoming, grades, course_materials, modules, files, announcements, course_info, general
2. The course mentioned, if any, using the name from the course list when one matches
3. The time frame mentioned, if any
4. The specific assignment or material mentioned, if any
5. The Canvas API calls needed to answer the query

%s
Return only a JSON object with these keys:
{
  "query_type": "string",
  "course": "string or null",
  "course_id": "integer or null",
  "course_match_confidence": "high|medium|low or null",
  "time_frame": "string or null",
  "specific_item": "string or null",
  "api_calls": ["string"]
}`

	PromptCoursesPrefix = "Available courses:\n"
	PromptNoCourses     = "No active courses are available.\n"
	PromptHistoryPrefix = "Recent conversation:\n"
)

// Router configuration
const (
	RouterTemperature = 0.1
	RouterMaxTokens   = 500
)

// Log messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, falling back to unknown"
	ErrMsgJSONParseFailed = "failed to parse JSON, falling back to unknown"
	ErrMsgEmptyResponse   = "empty LLM response, falling back to unknown"
)

// FallbackAPICalls is what an unclassified query still needs.
var FallbackAPICalls = []string{"load_active_courses"}
