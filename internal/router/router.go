package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/llmprovider"
)

// Classify determines the intent of query.
func (r *SemanticRouter) Classify(ctx context.Context, query string, courses []model.Course, history []string) (lms.Intent, error) {
	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: buildPrompt(courses, history)}},
		},
		Messages:       []llmprovider.Message{llmprovider.UserMessage(query)},
		Temperature:    RouterTemperature,
		MaxTokens:      RouterMaxTokens,
		ResponseFormat: llmprovider.ResponseFormatJSON,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fallbackIntent(), fmt.Errorf("%s: %w", LogPrefixClassify, ctxErr)
		}
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return fallbackIntent(), nil
	}

	text := stripCodeFence(resp.Content.Text())
	if text == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return fallbackIntent(), nil
	}

	var out classification
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return fallbackIntent(), nil
	}

	intent := out.toIntent()
	r.l.Infof(ctx, "%s: classified as %s (course: %q, kinds: %v)", LogPrefixClassify, intent.QueryType, intent.CourseRef, intent.Kinds)
	return intent, nil
}

func (c classification) toIntent() lms.Intent {
	course := strings.TrimSpace(deref(c.Course))
	if strings.EqualFold(course, "null") {
		course = ""
	}
	queryType := lms.NormalizeQueryType(c.QueryType)

	return lms.Intent{
		QueryType:    queryType,
		Kinds:        lms.KindsForQuery(queryType, course != ""),
		CourseRef:    course,
		Confidence:   deref(c.CourseMatchConfidence),
		TimeFrame:    deref(c.TimeFrame),
		SpecificItem: deref(c.SpecificItem),
		APICalls:     c.APICalls,
	}
}

func fallbackIntent() lms.Intent {
	return lms.Intent{
		QueryType: lms.QueryTypeUnknown,
		APICalls:  append([]string(nil), FallbackAPICalls...),
	}
}

func buildPrompt(courses []model.Course, history []string) string {
	var sb strings.Builder
	if len(courses) == 0 {
		sb.WriteString(PromptNoCourses)
	} else {
		sb.WriteString(PromptCoursesPrefix)
		for _, c := range courses {
			fmt.Fprintf(&sb, "ID: %d, Name: %s\n", c.ID, c.Name)
		}
	}
	if len(history) > 0 {
		sb.WriteString("\n" + PromptHistoryPrefix)
		for i, msg := range history {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, msg)
		}
	}
	return fmt.Sprintf(PromptRouterSystem, sb.String())
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
