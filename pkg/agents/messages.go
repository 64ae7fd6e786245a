// Message types and functionality
package agents

import "fmt"

// MessageRole defines the author of a conversation turn
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message represents a single conversation turn. Role and content variants
// are coupled: user turns may carry text, images, documents and tool results;
// assistant turns may only carry text and tool calls. The coupling is
// enforced by the provider content mappers rather than at construction time.
type Message struct {
	Role    MessageRole   `json:"role"`
	Content []ContentItem `json:"content"`
}

// NewUserMessage creates a user turn with a single text item
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Content: []ContentItem{NewText(text)}}
}

// NewAssistantMessage creates an assistant turn with a single text item
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: []ContentItem{NewText(text)}}
}

// GetText extracts the text of the first Text item, or "" when there is none
func (m Message) GetText() string {
	for _, item := range m.Content {
		if text, ok := item.(*Text); ok {
			return text.Text
		}
	}
	return ""
}

// AddContent appends a content item to the message
func (m *Message) AddContent(item ContentItem) {
	m.Content = append(m.Content, item)
}

// HasContentType checks if the message contains any content of the given type
func (m Message) HasContentType(contentType ContentType) bool {
	for _, item := range m.Content {
		if item.Type() == contentType {
			return true
		}
	}
	return false
}

// Validate checks the message and all of its content items
func (m Message) Validate() error {
	if len(m.Content) == 0 {
		return fmt.Errorf("message must have at least one content item")
	}
	for i, item := range m.Content {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("content item %d validation failed: %w", i, err)
		}
	}
	return nil
}
