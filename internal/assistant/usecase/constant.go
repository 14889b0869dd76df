package usecase

// Log prefixes
const (
	LogPrefixAsk   = "internal.assistant.usecase.Ask"
	LogPrefixReset = "internal.assistant.usecase.Reset"
)

// Generation configuration
const (
	GenerationTemperature = 0.5
	GenerationMaxTokens   = 1000
	DefaultContextWindow  = 3
	DefaultTimezone       = "UTC"

	// MaxDataChars bounds the serialized data bag placed in the prompt.
	MaxDataChars = 60000
	// MaxHistoryAnswerChars bounds each previous answer shown to the classifier.
	MaxHistoryAnswerChars = 300
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// Time context template
const (
	TimeContextTemplate = `CURRENT TIME:
- Now: %s (%s, timezone %s)
- Today: %s
- Tomorrow: %s
- This week: %s to %s
Interpret relative dates such as "tomorrow" or "this week" against these values.`
)

// Response generation prompt
const (
	PromptResponseSystem = `You are Canvas AI, the assistant of a student using the Canvas LMS.
Use the data fetched from the Canvas API to answer the student's query.

CONTEXT:
%s

API DATA:
%s

Generate a helpful response that directly answers the student's question:
1. Use markdown headings for separate sections when appropriate
2. Use bullet points or numbered lists for multiple items
3. Bold key information like due dates, course names and scores
4. Show deadlines in a human-readable form with the weekday
5. Keep the tone conversational and encouraging
6. End with a short offer of further help

If the data does not answer the question, say so and explain what information is missing.`

	PromptPreviousConversation = "Previous conversation:\n"
	PromptCurrentQuery         = "Current query: %s\n"
)

// User-facing messages
const (
	MsgGenerationFailed = "I'm sorry, I encountered an error while generating a response. Please try again or rephrase your question."
	MsgTruncated        = "... [truncated]"
)
