package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentiment struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func TestExtractorBuilder_DefinesSubmitTool(t *testing.T) {
	fake := &fakeCompletionModel{response: &CompletionResponse{
		Choice: ToolCallChoice{
			ToolName:  extractorToolName,
			Arguments: map[string]any{"label": "positive", "score": 0.9},
		},
	}}

	builder, err := NewExtractorBuilder[sentiment](fake)
	require.NoError(t, err)

	_, err = builder.Build().Extract(context.Background(), "great product")
	require.NoError(t, err)

	require.Len(t, fake.request.Tools, 1)
	tool := fake.request.Tools[0]
	assert.Equal(t, extractorToolName, tool.Name)
	assert.NotEmpty(t, fake.request.Preamble)

	schema, ok := tool.Parameters.(map[string]any)
	require.True(t, ok, "the submit schema is reflected from the target struct")
	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "label")
	assert.Contains(t, properties, "score")
}

func TestExtract_DecodesArguments(t *testing.T) {
	fake := &fakeCompletionModel{response: &CompletionResponse{
		Choice: ToolCallChoice{
			ToolName:  extractorToolName,
			CallID:    "call-1",
			Arguments: map[string]any{"label": "negative", "score": 0.2},
		},
	}}

	builder, err := NewExtractorBuilder[sentiment](fake)
	require.NoError(t, err)

	got, err := builder.Build().Extract(context.Background(), "terrible product")
	require.NoError(t, err)

	assert.Equal(t, sentiment{Label: "negative", Score: 0.2}, got)
}

func TestExtract_TextReplyFails(t *testing.T) {
	fake := &fakeCompletionModel{response: &CompletionResponse{
		Choice: MessageChoice{Content: "I would rather chat"},
	}}

	builder, err := NewExtractorBuilder[sentiment](fake)
	require.NoError(t, err)

	_, err = builder.Build().Extract(context.Background(), "some text")

	var agentErr *Error
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, ErrCodeResponse, agentErr.Code)
}

func TestExtract_WrongToolFails(t *testing.T) {
	fake := &fakeCompletionModel{response: &CompletionResponse{
		Choice: ToolCallChoice{ToolName: "lookup", Arguments: map[string]any{}},
	}}

	builder, err := NewExtractorBuilder[sentiment](fake)
	require.NoError(t, err)

	_, err = builder.Build().Extract(context.Background(), "some text")

	var agentErr *Error
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, ErrCodeResponse, agentErr.Code)
	assert.Contains(t, agentErr.Message, "lookup")
}

func TestExtractorBuilder_CustomPreamble(t *testing.T) {
	fake := &fakeCompletionModel{response: &CompletionResponse{
		Choice: ToolCallChoice{
			ToolName:  extractorToolName,
			Arguments: map[string]any{"label": "neutral", "score": 0.5},
		},
	}}

	builder, err := NewExtractorBuilder[sentiment](fake)
	require.NoError(t, err)
	builder.Preamble("Extract the sentiment.").Temperature(0)

	_, err = builder.Build().Extract(context.Background(), "it exists")
	require.NoError(t, err)

	assert.Equal(t, "Extract the sentiment.", fake.request.Preamble)
	require.NotNil(t, fake.request.Temperature)
	assert.Zero(t, *fake.request.Temperature)
}
