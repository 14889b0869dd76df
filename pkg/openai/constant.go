package openai

import "time"

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// ResponseFormatJSON asks the endpoint for a JSON object.
	ResponseFormatJSON = "json_object"
)

// Preset is an OpenAI-compatible vendor endpoint.
type Preset struct {
	BaseURL string
	Model   string
}

// Presets maps vendor names to their compatible endpoints.
var Presets = map[string]Preset{
	"openai":   {BaseURL: DefaultBaseURL, Model: DefaultModel},
	"deepseek": {BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat"},
	"qwen":     {BaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", Model: "qwen-plus"},
}
