// Content mapper: framework content items <-> Bedrock content blocks
package bedrock

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/modelfarm/go-agents/pkg/agents"
)

// Bedrock requires a name on document blocks; the framework's document
// attachments carry none.
const documentBlockName = "attachment"

// resolveRole maps a framework role onto a Bedrock conversation role.
// Unrecognized roles deliberately fall back to the user role so that history
// recorded under roles Bedrock does not model (a "system" turn, say) is still
// replayed rather than dropped.
func resolveRole(role agents.MessageRole) types.ConversationRole {
	switch role {
	case agents.RoleAssistant:
		return types.ConversationRoleAssistant
	case agents.RoleUser:
		return types.ConversationRoleUser
	default:
		return types.ConversationRoleUser
	}
}

// MessageToBedrock converts one conversation turn for replay. Content items
// the mapping cannot express are filtered out rather than failing the turn:
// history replay is best effort, while strict conversion applies to content
// arriving from the provider.
func MessageToBedrock(msg agents.Message) types.Message {
	role := resolveRole(msg.Role)
	convert := userContentToBlock
	if role == types.ConversationRoleAssistant {
		convert = assistantContentToBlock
	}

	blocks := make([]types.ContentBlock, 0, len(msg.Content))
	for _, item := range msg.Content {
		if block, err := convert(item); err == nil {
			blocks = append(blocks, block)
		}
	}
	return types.Message{Role: role, Content: blocks}
}

// MessageFromBedrock converts a provider message back into a framework turn.
// Unsupported content items are filtered; a message left with no content, or
// carrying a role outside user/assistant, fails the conversion.
func MessageFromBedrock(msg types.Message) (agents.Message, error) {
	switch msg.Role {
	case types.ConversationRoleAssistant:
		items := collectContent(msg.Content, assistantContentFromBlock)
		if len(items) == 0 {
			return agents.Message{}, &UnsupportedFeatureError{Feature: "message returned invalid response"}
		}
		return agents.Message{Role: agents.RoleAssistant, Content: items}, nil
	case types.ConversationRoleUser:
		items := collectContent(msg.Content, userContentFromBlock)
		if len(items) == 0 {
			return agents.Message{}, &UnsupportedFeatureError{Feature: "message returned invalid response"}
		}
		return agents.Message{Role: agents.RoleUser, Content: items}, nil
	default:
		return agents.Message{}, &UnsupportedFeatureError{
			Feature: fmt.Sprintf("conversation role %q", string(msg.Role)),
		}
	}
}

func collectContent(blocks []types.ContentBlock, convert func(types.ContentBlock) (agents.ContentItem, error)) []agents.ContentItem {
	items := make([]agents.ContentItem, 0, len(blocks))
	for _, block := range blocks {
		if item, err := convert(block); err == nil {
			items = append(items, item)
		}
	}
	return items
}

func userContentToBlock(item agents.ContentItem) (types.ContentBlock, error) {
	switch c := item.(type) {
	case *agents.Text:
		return &types.ContentBlockMemberText{Value: c.Text}, nil
	case *agents.Image:
		block, err := imageToBlock(c)
		if err != nil {
			return nil, err
		}
		return &types.ContentBlockMemberImage{Value: block}, nil
	case *agents.Document:
		block, err := documentToBlock(c)
		if err != nil {
			return nil, err
		}
		return &types.ContentBlockMemberDocument{Value: block}, nil
	case *agents.ToolResult:
		blocks := make([]types.ToolResultContentBlock, 0, len(c.Content))
		for _, result := range c.Content {
			if block, err := toolResultContentToBlock(result); err == nil {
				blocks = append(blocks, block)
			}
		}
		return &types.ContentBlockMemberToolResult{Value: types.ToolResultBlock{
			ToolUseId: aws.String(c.ID),
			Content:   blocks,
		}}, nil
	default:
		return nil, &UnsupportedFeatureError{
			Feature: fmt.Sprintf("%s content in user message", item.Type()),
		}
	}
}

func assistantContentToBlock(item agents.ContentItem) (types.ContentBlock, error) {
	switch c := item.(type) {
	case *agents.Text:
		return &types.ContentBlockMemberText{Value: c.Text}, nil
	case *agents.ToolCall:
		return &types.ContentBlockMemberToolUse{Value: types.ToolUseBlock{
			ToolUseId: aws.String(c.ID),
			Name:      aws.String(c.Function.Name),
			Input:     JSONToDocument(c.Function.Arguments),
		}}, nil
	default:
		return nil, &UnsupportedFeatureError{
			Feature: fmt.Sprintf("%s content in assistant message", item.Type()),
		}
	}
}

func userContentFromBlock(block types.ContentBlock) (agents.ContentItem, error) {
	switch b := block.(type) {
	case *types.ContentBlockMemberText:
		return agents.NewText(b.Value), nil
	case *types.ContentBlockMemberImage:
		return imageFromBlock(b.Value)
	case *types.ContentBlockMemberDocument:
		return documentFromBlock(b.Value)
	case *types.ContentBlockMemberToolResult:
		items := make([]agents.ContentItem, 0, len(b.Value.Content))
		for _, result := range b.Value.Content {
			if item, err := toolResultContentFromBlock(result); err == nil {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			return nil, &UnsupportedFeatureError{Feature: "tool result returned invalid response"}
		}
		return &agents.ToolResult{ID: aws.ToString(b.Value.ToolUseId), Content: items}, nil
	default:
		return nil, &UnsupportedFeatureError{Feature: "content block sent by Bedrock"}
	}
}

func assistantContentFromBlock(block types.ContentBlock) (agents.ContentItem, error) {
	switch b := block.(type) {
	case *types.ContentBlockMemberText:
		return agents.NewText(b.Value), nil
	case *types.ContentBlockMemberToolUse:
		args, err := DocumentToJSON(b.Value.Input)
		if err != nil {
			return nil, err
		}
		return agents.NewToolCall(aws.ToString(b.Value.ToolUseId), aws.ToString(b.Value.Name), args), nil
	default:
		return nil, &UnsupportedFeatureError{Feature: "content block sent by Bedrock"}
	}
}

func toolResultContentToBlock(item agents.ContentItem) (types.ToolResultContentBlock, error) {
	switch c := item.(type) {
	case *agents.Text:
		return &types.ToolResultContentBlockMemberText{Value: c.Text}, nil
	case *agents.Image:
		block, err := imageToBlock(c)
		if err != nil {
			return nil, err
		}
		return &types.ToolResultContentBlockMemberImage{Value: block}, nil
	default:
		return nil, &UnsupportedFeatureError{
			Feature: fmt.Sprintf("%s content in tool result", item.Type()),
		}
	}
}

func toolResultContentFromBlock(block types.ToolResultContentBlock) (agents.ContentItem, error) {
	switch b := block.(type) {
	case *types.ToolResultContentBlockMemberText:
		return agents.NewText(b.Value), nil
	case *types.ToolResultContentBlockMemberImage:
		return imageFromBlock(b.Value)
	case *types.ToolResultContentBlockMemberJson:
		// generic JSON tool results flatten to their canonical text form
		value, err := DocumentToJSON(b.Value)
		if err != nil {
			return nil, err
		}
		text, err := json.Marshal(value)
		if err != nil {
			return nil, &ConversionError{Reason: "failed to render tool result JSON", Err: err}
		}
		return agents.NewText(string(text)), nil
	default:
		return nil, &UnsupportedFeatureError{Feature: "tool result content block sent by Bedrock"}
	}
}

func imageToBlock(image *agents.Image) (types.ImageBlock, error) {
	var format types.ImageFormat
	switch image.MediaType {
	case agents.ImageJPEG:
		format = types.ImageFormatJpeg
	case agents.ImagePNG:
		format = types.ImageFormatPng
	case agents.ImageGIF:
		format = types.ImageFormatGif
	case agents.ImageWEBP:
		format = types.ImageFormatWebp
	default:
		return types.ImageBlock{}, &UnsupportedFormatError{Format: string(image.MediaType)}
	}

	data, err := base64.StdEncoding.DecodeString(image.Data)
	if err != nil {
		return types.ImageBlock{}, &ConversionError{Reason: "failed to decode image data", Err: err}
	}
	return types.ImageBlock{
		Format: format,
		Source: &types.ImageSourceMemberBytes{Value: data},
	}, nil
}

func imageFromBlock(block types.ImageBlock) (*agents.Image, error) {
	var mediaType agents.ImageMediaType
	switch block.Format {
	case types.ImageFormatJpeg:
		mediaType = agents.ImageJPEG
	case types.ImageFormatPng:
		mediaType = agents.ImagePNG
	case types.ImageFormatGif:
		mediaType = agents.ImageGIF
	case types.ImageFormatWebp:
		mediaType = agents.ImageWEBP
	default:
		return nil, &UnsupportedFormatError{Format: string(block.Format)}
	}

	source, ok := block.Source.(*types.ImageSourceMemberBytes)
	if !ok {
		return nil, &ConversionError{Reason: "image source is missing"}
	}
	return &agents.Image{
		Data:      base64.StdEncoding.EncodeToString(source.Value),
		MediaType: mediaType,
		Format:    agents.FormatBase64,
	}, nil
}

func documentToBlock(doc *agents.Document) (types.DocumentBlock, error) {
	var format types.DocumentFormat
	switch doc.MediaType {
	case agents.DocumentPDF:
		format = types.DocumentFormatPdf
	case agents.DocumentTXT:
		format = types.DocumentFormatTxt
	case agents.DocumentHTML:
		format = types.DocumentFormatHtml
	case agents.DocumentMarkdown:
		format = types.DocumentFormatMd
	case agents.DocumentCSV:
		format = types.DocumentFormatCsv
	default:
		return types.DocumentBlock{}, &UnsupportedFormatError{Format: string(doc.MediaType)}
	}

	data, err := base64.StdEncoding.DecodeString(doc.Data)
	if err != nil {
		return types.DocumentBlock{}, &ConversionError{Reason: "failed to decode document data", Err: err}
	}
	return types.DocumentBlock{
		Format: format,
		Name:   aws.String(documentBlockName),
		Source: &types.DocumentSourceMemberBytes{Value: data},
	}, nil
}

func documentFromBlock(block types.DocumentBlock) (*agents.Document, error) {
	var mediaType agents.DocumentMediaType
	switch block.Format {
	case types.DocumentFormatPdf:
		mediaType = agents.DocumentPDF
	case types.DocumentFormatTxt:
		mediaType = agents.DocumentTXT
	case types.DocumentFormatHtml:
		mediaType = agents.DocumentHTML
	case types.DocumentFormatMd:
		mediaType = agents.DocumentMarkdown
	case types.DocumentFormatCsv:
		mediaType = agents.DocumentCSV
	default:
		return nil, &UnsupportedFormatError{Format: string(block.Format)}
	}

	source, ok := block.Source.(*types.DocumentSourceMemberBytes)
	if !ok {
		return nil, &ConversionError{Reason: "document source is missing"}
	}
	return &agents.Document{
		Data:      base64.StdEncoding.EncodeToString(source.Value),
		MediaType: mediaType,
		Format:    agents.FormatBase64,
	}, nil
}
