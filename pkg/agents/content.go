package agents

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ContentType identifies the variant of a content item
type ContentType string

// Supported content variants
const (
	ContentTypeText       ContentType = "text"
	ContentTypeImage      ContentType = "image"
	ContentTypeDocument   ContentType = "document"
	ContentTypeAudio      ContentType = "audio"
	ContentTypeToolCall   ContentType = "tool_call"
	ContentTypeToolResult ContentType = "tool_result"
)

// ContentItem is one unit of message content. Each item is owned exclusively
// by its containing message; items are not shared across messages.
type ContentItem interface {
	// Type returns the content variant identifier
	Type() ContentType
	// Validate checks if the content is valid and meets requirements
	Validate() error
}

// ContentFormat describes how binary payloads are encoded when they cross the
// framework boundary. Provider adapters receive raw bytes; the framework
// represents attachments as base64 text.
type ContentFormat string

const (
	FormatBase64 ContentFormat = "base64"
	FormatString ContentFormat = "string"
)

// Text represents plain text content
type Text struct {
	Text string `json:"text"`
}

// NewText creates a new Text content item
func NewText(text string) *Text {
	return &Text{Text: text}
}

func (t *Text) Type() ContentType {
	return ContentTypeText
}

func (t *Text) Validate() error {
	if t == nil {
		return errors.New("text content cannot be nil")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("text content cannot be empty")
	}
	return nil
}

// ImageMediaType enumerates the image formats the framework can describe.
// Individual providers support a subset; unsupported entries are rejected by
// the provider's content mapper, not here.
type ImageMediaType string

const (
	ImageJPEG ImageMediaType = "image/jpeg"
	ImagePNG  ImageMediaType = "image/png"
	ImageGIF  ImageMediaType = "image/gif"
	ImageWEBP ImageMediaType = "image/webp"
	ImageSVG  ImageMediaType = "image/svg+xml"
	ImageHEIC ImageMediaType = "image/heic"
)

// Image represents an image attachment. Data is base64-encoded
type Image struct {
	Data      string         `json:"data"`
	MediaType ImageMediaType `json:"media_type,omitempty"`
	Format    ContentFormat  `json:"format,omitempty"`
}

// NewImage creates an Image content item from raw bytes
func NewImage(data []byte, mediaType ImageMediaType) *Image {
	return &Image{
		Data:      base64.StdEncoding.EncodeToString(data),
		MediaType: mediaType,
		Format:    FormatBase64,
	}
}

func (i *Image) Type() ContentType {
	return ContentTypeImage
}

func (i *Image) Validate() error {
	if i == nil {
		return errors.New("image content cannot be nil")
	}
	if i.Data == "" {
		return errors.New("image content must have data")
	}
	return nil
}

// DocumentMediaType enumerates the document formats the framework can
// describe. As with images, provider support is narrower than this list.
type DocumentMediaType string

const (
	DocumentPDF      DocumentMediaType = "application/pdf"
	DocumentTXT      DocumentMediaType = "text/plain"
	DocumentHTML     DocumentMediaType = "text/html"
	DocumentMarkdown DocumentMediaType = "text/markdown"
	DocumentCSV      DocumentMediaType = "text/csv"
	DocumentXML      DocumentMediaType = "application/xml"
	DocumentDOCX     DocumentMediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Document represents a document attachment. Data is base64-encoded
type Document struct {
	Data      string            `json:"data"`
	MediaType DocumentMediaType `json:"media_type,omitempty"`
	Format    ContentFormat     `json:"format,omitempty"`
}

// NewDocument creates a Document content item from raw bytes
func NewDocument(data []byte, mediaType DocumentMediaType) *Document {
	return &Document{
		Data:      base64.StdEncoding.EncodeToString(data),
		MediaType: mediaType,
		Format:    FormatBase64,
	}
}

func (d *Document) Type() ContentType {
	return ContentTypeDocument
}

func (d *Document) Validate() error {
	if d == nil {
		return errors.New("document content cannot be nil")
	}
	if d.Data == "" {
		return errors.New("document content must have data")
	}
	return nil
}

// Audio represents an audio attachment. No provider adapter in this module
// supports audio; the variant exists so callers get an explicit
// unsupported-feature error instead of silent truncation.
type Audio struct {
	Data      string        `json:"data"`
	MediaType string        `json:"media_type,omitempty"`
	Format    ContentFormat `json:"format,omitempty"`
}

func (a *Audio) Type() ContentType {
	return ContentTypeAudio
}

func (a *Audio) Validate() error {
	if a == nil {
		return errors.New("audio content cannot be nil")
	}
	if a.Data == "" {
		return errors.New("audio content must have data")
	}
	return nil
}

// ToolFunction identifies the function a tool call targets and its arguments
// as a generic JSON value
type ToolFunction struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

// ToolCall represents a function invocation requested by the model
type ToolCall struct {
	ID       string       `json:"id"`
	Function ToolFunction `json:"function"`
}

// NewToolCall creates a ToolCall content item
func NewToolCall(id, name string, arguments any) *ToolCall {
	return &ToolCall{ID: id, Function: ToolFunction{Name: name, Arguments: arguments}}
}

func (c *ToolCall) Type() ContentType {
	return ContentTypeToolCall
}

func (c *ToolCall) Validate() error {
	if c == nil {
		return errors.New("tool call cannot be nil")
	}
	if c.ID == "" {
		return errors.New("tool call must have an id")
	}
	if c.Function.Name == "" {
		return errors.New("tool call must have a function name")
	}
	return nil
}

// ToolResult carries the outcome of a tool call back to the model. Result
// content is restricted to Text and Image items.
type ToolResult struct {
	ID      string        `json:"id"`
	Content []ContentItem `json:"content"`
}

// NewToolResult creates a ToolResult for the given call id
func NewToolResult(id string, content ...ContentItem) *ToolResult {
	return &ToolResult{ID: id, Content: content}
}

func (r *ToolResult) Type() ContentType {
	return ContentTypeToolResult
}

func (r *ToolResult) Validate() error {
	if r == nil {
		return errors.New("tool result cannot be nil")
	}
	if r.ID == "" {
		return errors.New("tool result must have an id")
	}
	if len(r.Content) == 0 {
		return errors.New("tool result must have content")
	}
	for _, item := range r.Content {
		switch item.Type() {
		case ContentTypeText, ContentTypeImage:
		default:
			return errors.New("tool result content must be text or image")
		}
	}
	return nil
}

// DecodeBase64 decodes a base64 payload carried by Image or Document data
func DecodeBase64(data string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(data)
}
