package openai

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Preset fills BaseURL and Model when
// they are empty.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Preset     string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Preset != "" {
		p, ok := Presets[c.Preset]
		if !ok {
			return fmt.Errorf("openai: unknown preset %q", c.Preset)
		}
		if c.BaseURL == "" {
			c.BaseURL = p.BaseURL
		}
		if c.Model == "" {
			c.Model = p.Model
		}
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type openAIImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is one chat completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	// ResponseFormat is empty for free text or ResponseFormatJSON.
	ResponseFormat string
}

// Message is a chat message. Role is "system", "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Response is the first choice of a completion.
type Response struct {
	Content      Message
	FinishReason string
	Model        string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	Temperature    float64             `json:"temperature,omitempty"`
	MaxTokens      int                 `json:"max_tokens,omitempty"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
