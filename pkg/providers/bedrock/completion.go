// Completion adapter over the Bedrock Converse API
package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/google/uuid"

	"github.com/modelfarm/go-agents/pkg/agents"
)

// converseAPI is the slice of the Bedrock runtime client the completion
// adapter needs. Narrowing the dependency keeps the adapter testable.
type converseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// CompletionModel implements agents.CompletionModel against one Bedrock
// model. Stateless between calls and safe for concurrent use.
type CompletionModel struct {
	runtime converseAPI
	modelID string
}

// ModelID returns the Bedrock model identifier this adapter invokes
func (m *CompletionModel) ModelID() string {
	return m.modelID
}

// Completion performs one chat completion transaction
func (m *CompletionModel) Completion(ctx context.Context, req agents.CompletionRequest) (*agents.CompletionResponse, error) {
	input, err := m.buildConverseInput(req)
	if err != nil {
		return nil, err
	}

	output, err := m.runtime.Converse(ctx, input)
	if err != nil {
		return nil, agents.NewProviderError(classifyServiceError(err))
	}

	return responseFromOutput(output)
}

// buildConverseInput assembles the outbound request: replayed history plus a
// new user turn carrying the rendered prompt, then inference configuration,
// extra model parameters, tool specifications and the system preamble.
func (m *CompletionModel) buildConverseInput(req agents.CompletionRequest) (*bedrockruntime.ConverseInput, error) {
	messages := make([]types.Message, 0, len(req.ChatHistory)+1)
	for _, msg := range req.ChatHistory {
		messages = append(messages, MessageToBedrock(msg))
	}
	messages = append(messages, MessageToBedrock(agents.NewUserMessage(req.PromptWithContext())))

	input := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(m.modelID),
		Messages: messages,
	}

	if req.AdditionalParams != nil {
		input.AdditionalModelRequestFields = JSONToDocument(req.AdditionalParams)
	}

	inference := &types.InferenceConfiguration{}
	if req.Temperature != nil {
		inference.Temperature = aws.Float32(float32(*req.Temperature))
	}
	if req.MaxTokens != nil {
		inference.MaxTokens = aws.Int32(int32(*req.MaxTokens))
	}
	input.InferenceConfig = inference

	// the tool configuration block is attached only when tools exist; some
	// models reject an empty-but-present tool list
	if len(req.Tools) > 0 {
		tools := make([]types.Tool, 0, len(req.Tools))
		for _, def := range req.Tools {
			if def.Name == "" {
				return nil, agents.NewRequestError("tool definition is missing a name")
			}
			tools = append(tools, &types.ToolMemberToolSpec{Value: types.ToolSpecification{
				Name:        aws.String(def.Name),
				Description: aws.String(def.Description),
				InputSchema: &types.ToolInputSchemaMemberJson{Value: JSONToDocument(def.Parameters)},
			}})
		}
		input.ToolConfig = &types.ToolConfiguration{Tools: tools}
	}

	if req.Preamble != "" {
		input.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: req.Preamble},
		}
	}

	return input, nil
}

// responseFromOutput interprets the model reply. A tool-use block wins over a
// text block; ties between blocks of the same kind resolve by order.
func responseFromOutput(output *bedrockruntime.ConverseOutput) (*agents.CompletionResponse, error) {
	if output == nil || output.Output == nil {
		return nil, agents.NewProviderError("model did not return any converse output")
	}

	message, ok := output.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, agents.NewProviderError("failed to extract message from converse output")
	}

	for _, block := range message.Value.Content {
		if toolUse, ok := block.(*types.ContentBlockMemberToolUse); ok {
			args, err := DocumentToJSON(toolUse.Value.Input)
			if err != nil {
				return nil, agents.NewResponseError(err.Error())
			}
			return &agents.CompletionResponse{
				ID: responseID(),
				Choice: agents.ToolCallChoice{
					ToolName:  aws.ToString(toolUse.Value.Name),
					CallID:    aws.ToString(toolUse.Value.ToolUseId),
					Arguments: args,
				},
				RawResponse: output,
			}, nil
		}
	}

	for _, block := range message.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			return &agents.CompletionResponse{
				ID:          responseID(),
				Choice:      agents.MessageChoice{Content: text.Value},
				RawResponse: output,
			}, nil
		}
	}

	return nil, agents.NewResponseError("response did not contain a message or tool call")
}

func responseID() string {
	return "bedrock-" + uuid.NewString()
}
