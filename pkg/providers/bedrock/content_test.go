package bedrock

import (
	"encoding/base64"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfarm/go-agents/pkg/agents"
)

func TestImageRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}

	mediaTypes := []agents.ImageMediaType{
		agents.ImageGIF,
		agents.ImageJPEG,
		agents.ImagePNG,
		agents.ImageWEBP,
	}

	for _, mediaType := range mediaTypes {
		t.Run(string(mediaType), func(t *testing.T) {
			block, err := imageToBlock(agents.NewImage(payload, mediaType))
			require.NoError(t, err)

			source, ok := block.Source.(*types.ImageSourceMemberBytes)
			require.True(t, ok, "image payload should cross as raw bytes")
			assert.Equal(t, payload, source.Value)

			back, err := imageFromBlock(block)
			require.NoError(t, err)
			assert.Equal(t, mediaType, back.MediaType)
			assert.Equal(t, agents.FormatBase64, back.Format)

			decoded, err := base64.StdEncoding.DecodeString(back.Data)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded)
		})
	}
}

func TestImageUnsupportedFormat(t *testing.T) {
	_, err := imageToBlock(agents.NewImage([]byte("<svg/>"), agents.ImageSVG))

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, string(agents.ImageSVG), formatErr.Format)
}

func TestImageMalformedBase64(t *testing.T) {
	_, err := imageToBlock(&agents.Image{
		Data:      "not-base64!!!",
		MediaType: agents.ImagePNG,
	})

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
}

func TestDocumentRoundTrip_MediaTypes(t *testing.T) {
	payload := []byte("col_a,col_b\n1,2\n")

	mediaTypes := []agents.DocumentMediaType{
		agents.DocumentCSV,
		agents.DocumentHTML,
		agents.DocumentMarkdown,
		agents.DocumentPDF,
		agents.DocumentTXT,
	}

	for _, mediaType := range mediaTypes {
		t.Run(string(mediaType), func(t *testing.T) {
			block, err := documentToBlock(agents.NewDocument(payload, mediaType))
			require.NoError(t, err)
			require.NotNil(t, block.Name, "Bedrock requires a document name")

			back, err := documentFromBlock(block)
			require.NoError(t, err)
			assert.Equal(t, mediaType, back.MediaType)

			decoded, err := base64.StdEncoding.DecodeString(back.Data)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded)
		})
	}
}

func TestDocumentUnsupportedFormat(t *testing.T) {
	_, err := documentToBlock(agents.NewDocument([]byte("<xml/>"), agents.DocumentXML))

	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, string(agents.DocumentXML), formatErr.Format)
}

func TestAssistantContentRejectsImage(t *testing.T) {
	// there is no assistant-image path in the mapping
	_, err := assistantContentToBlock(agents.NewImage([]byte("png"), agents.ImagePNG))

	var featureErr *UnsupportedFeatureError
	require.ErrorAs(t, err, &featureErr)
	assert.Contains(t, featureErr.Feature, "image")
}

func TestUserContentRejectsAudio(t *testing.T) {
	_, err := userContentToBlock(&agents.Audio{Data: "AAAA"})

	var featureErr *UnsupportedFeatureError
	require.ErrorAs(t, err, &featureErr)
	assert.Contains(t, featureErr.Feature, "audio")
}

func TestToolCallRoundTrip(t *testing.T) {
	call := agents.NewToolCall("call-1", "add", map[string]any{"x": int64(1), "y": int64(2)})

	block, err := assistantContentToBlock(call)
	require.NoError(t, err)

	toolUse, ok := block.(*types.ContentBlockMemberToolUse)
	require.True(t, ok)
	assert.Equal(t, "call-1", aws.ToString(toolUse.Value.ToolUseId))
	assert.Equal(t, "add", aws.ToString(toolUse.Value.Name))

	back, err := assistantContentFromBlock(block)
	require.NoError(t, err)

	gotCall, ok := back.(*agents.ToolCall)
	require.True(t, ok)
	assert.Equal(t, "call-1", gotCall.ID)
	assert.Equal(t, "add", gotCall.Function.Name)
	assert.Equal(t, map[string]any{"x": int64(1), "y": int64(2)}, gotCall.Function.Arguments)
}

func TestToolResultJSONFlattensToText(t *testing.T) {
	block := &types.ToolResultContentBlockMemberJson{
		Value: document.NewLazyDocument(map[string]any{"status": "ok", "value": uint64(3)}),
	}

	item, err := toolResultContentFromBlock(block)
	require.NoError(t, err)

	text, ok := item.(*agents.Text)
	require.True(t, ok)
	assert.JSONEq(t, `{"status":"ok","value":3}`, text.Text)
}

func TestMessageFromBedrock_UnknownRole(t *testing.T) {
	msg := types.Message{
		Role:    types.ConversationRole("moderator"),
		Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: "hi"}},
	}

	_, err := MessageFromBedrock(msg)

	var featureErr *UnsupportedFeatureError
	require.ErrorAs(t, err, &featureErr)
	assert.Contains(t, featureErr.Feature, "moderator")
}

func TestMessageFromBedrock_FiltersUnsupportedBlocks(t *testing.T) {
	msg := types.Message{
		Role: types.ConversationRoleAssistant,
		Content: []types.ContentBlock{
			&types.ContentBlockMemberGuardContent{},
			&types.ContentBlockMemberText{Value: "kept"},
		},
	}

	got, err := MessageFromBedrock(msg)
	require.NoError(t, err)
	require.Len(t, got.Content, 1)
	assert.Equal(t, "kept", got.GetText())
}

func TestMessageFromBedrock_AllBlocksUnsupported(t *testing.T) {
	msg := types.Message{
		Role:    types.ConversationRoleAssistant,
		Content: []types.ContentBlock{&types.ContentBlockMemberGuardContent{}},
	}

	_, err := MessageFromBedrock(msg)

	var featureErr *UnsupportedFeatureError
	require.ErrorAs(t, err, &featureErr)
}

func TestMessageToBedrock_HistoryReplayIsLenient(t *testing.T) {
	// unsupported items in replayed history are dropped, not fatal
	msg := agents.Message{
		Role: agents.RoleUser,
		Content: []agents.ContentItem{
			agents.NewText("look at this"),
			&agents.Audio{Data: "AAAA"},
		},
	}

	got := MessageToBedrock(msg)
	assert.Equal(t, types.ConversationRoleUser, got.Role)
	require.Len(t, got.Content, 1)

	text, ok := got.Content[0].(*types.ContentBlockMemberText)
	require.True(t, ok)
	assert.Equal(t, "look at this", text.Value)
}

func TestResolveRole_FallsBackToUser(t *testing.T) {
	assert.Equal(t, types.ConversationRoleUser, resolveRole(agents.RoleUser))
	assert.Equal(t, types.ConversationRoleAssistant, resolveRole(agents.RoleAssistant))
	// unrecognized roles deliberately replay as user turns
	assert.Equal(t, types.ConversationRoleUser, resolveRole(agents.MessageRole("system")))
}

func TestToolResultContentRejectsDocument(t *testing.T) {
	_, err := toolResultContentToBlock(agents.NewDocument([]byte("x"), agents.DocumentTXT))

	var featureErr *UnsupportedFeatureError
	require.ErrorAs(t, err, &featureErr)
	assert.Contains(t, featureErr.Feature, "document")
}
