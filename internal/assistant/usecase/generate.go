package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"canvas-assistant/internal/lms"
	"canvas-assistant/internal/model"
	"canvas-assistant/pkg/llmprovider"
)

// generate returns the answer text, the provider that produced it and false
// when the fixed apology was used instead.
func (uc *implUseCase) generate(ctx context.Context, query string, recent []model.Exchange, data lms.DataBag) (string, string, bool) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to encode data bag: %v", LogPrefixAsk, err)
		return MsgGenerationFailed, "", false
	}

	system := fmt.Sprintf(PromptResponseSystem,
		buildContext(query, recent, uc.timeContext()),
		truncateText(string(raw), MaxDataChars),
	)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Parts: []llmprovider.Part{{Text: system}}},
		Messages:          []llmprovider.Message{llmprovider.UserMessage(query)},
		Temperature:       GenerationTemperature,
		MaxTokens:         GenerationMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: response generation failed: %v", LogPrefixAsk, err)
		return MsgGenerationFailed, "", false
	}

	answer := strings.TrimSpace(resp.Content.Text())
	if answer == "" {
		uc.l.Warnf(ctx, "%s: empty response from %s", LogPrefixAsk, resp.ProviderName)
		return MsgGenerationFailed, resp.ProviderName, false
	}
	return answer, resp.ProviderName, true
}

func buildContext(query string, recent []model.Exchange, timeContext string) string {
	var sb strings.Builder
	sb.WriteString(timeContext)
	sb.WriteString("\n\n")
	if len(recent) > 0 {
		sb.WriteString(PromptPreviousConversation)
		for _, ex := range recent {
			fmt.Fprintf(&sb, "User: %s\nAssistant: %s\n", ex.Query, ex.Answer)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, PromptCurrentQuery, query)
	return sb.String()
}
