package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "deepseek", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Generator is the consumer side of Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

var _ Generator = (*Manager)(nil)

// ResponseFormatJSON asks the provider for a single JSON object.
const ResponseFormatJSON = "json"

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// ResponseFormat is empty for free text or ResponseFormatJSON.
	ResponseFormat string
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a text segment of a message
type Part struct {
	Text string
}

// Text joins all text parts of the message.
func (m Message) Text() string {
	switch len(m.Parts) {
	case 0:
		return ""
	case 1:
		return m.Parts[0].Text
	}
	text := m.Parts[0].Text
	for _, p := range m.Parts[1:] {
		text += "\n" + p.Text
	}
	return text
}

// UserMessage builds a single-part user message.
func UserMessage(text string) Message {
	return Message{Role: "user", Parts: []Part{{Text: text}}}
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
