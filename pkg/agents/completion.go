// Completion request and response types
package agents

import (
	"context"
	"strings"
)

// ToolDefinition describes a function the model may invoke instead of
// replying with text. Parameters is a JSON-schema-shaped generic value.
type ToolDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  any    `json:"parameters"`
}

// ContextDocument is a retrieved document attached to a prompt for
// retrieval-augmented generation
type ContextDocument struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CompletionRequest aggregates everything a model needs for one completion
// transaction: prior history, the new prompt, an optional system preamble,
// sampling parameters, tool definitions and opaque provider-specific extras.
type CompletionRequest struct {
	Prompt           string
	Preamble         string
	ChatHistory      []Message
	Documents        []ContextDocument
	Temperature      *float64
	MaxTokens        *int
	Tools            []ToolDefinition
	AdditionalParams any
}

// PromptWithContext renders the prompt together with any attached context
// documents. With no attachments it returns the prompt unchanged.
func (r CompletionRequest) PromptWithContext() string {
	if len(r.Documents) == 0 {
		return r.Prompt
	}
	var sb strings.Builder
	sb.WriteString("<attachments>\n")
	for _, doc := range r.Documents {
		sb.WriteString(doc.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("</attachments>\n\n")
	sb.WriteString(r.Prompt)
	return sb.String()
}

// ModelChoice is the model's reply: either a text message or a tool call
type ModelChoice interface {
	choice()
}

// MessageChoice is a plain text reply
type MessageChoice struct {
	Content string
}

func (MessageChoice) choice() {}

// ToolCallChoice is a request to invoke a tool, with the call id and the
// arguments as a generic JSON value
type ToolCallChoice struct {
	ToolName  string
	CallID    string
	Arguments any
}

func (ToolCallChoice) choice() {}

// CompletionResponse is a model reply. RawResponse retains the unmodified
// provider reply for diagnostics.
type CompletionResponse struct {
	ID          string
	Choice      ModelChoice
	RawResponse any
}

// Text returns the text reply, if the model answered with one
func (r *CompletionResponse) Text() (string, bool) {
	if msg, ok := r.Choice.(MessageChoice); ok {
		return msg.Content, true
	}
	return "", false
}

// ToolCall returns the tool invocation, if the model requested one
func (r *CompletionResponse) ToolCall() (*ToolCallChoice, bool) {
	if call, ok := r.Choice.(ToolCallChoice); ok {
		return &call, true
	}
	return nil, false
}

// CompletionModel is one chat-completion transaction against a remote model.
// Implementations are stateless between calls and safe for concurrent use.
type CompletionModel interface {
	Completion(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
