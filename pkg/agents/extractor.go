// Extractor: structured data extraction through a submit tool
package agents

import (
	"context"
	"encoding/json"
	"fmt"
)

const extractorToolName = "submit"

const extractorPreamble = `You are an AI assistant whose purpose is to extract structured data from the provided text.
You will have access to a submit function that defines the structure of the data to extract from the provided text.
Use the submit function to submit the extracted data.
Be sure to fill out every field and ALWAYS CALL THE SUBMIT FUNCTION, event with default values!!!`

// Extractor extracts a value of type T from free text by forcing the model
// through a schema-constrained submit tool
type Extractor[T any] struct {
	agent *Agent
}

// ExtractorBuilder assembles an Extractor for type T
type ExtractorBuilder[T any] struct {
	builder *AgentBuilder
}

// NewExtractorBuilder creates an extractor builder bound to the given model.
// The submit tool's parameter schema is reflected from T.
func NewExtractorBuilder[T any](model CompletionModel) (*ExtractorBuilder[T], error) {
	var target T
	schema, err := SchemaFromStructAsMap(target)
	if err != nil {
		return nil, fmt.Errorf("failed to build extractor schema: %w", err)
	}

	builder := NewAgentBuilder(model).
		Preamble(extractorPreamble).
		Tool(ToolDefinition{
			Name:        extractorToolName,
			Description: "Submit the structured data you extracted from the provided text.",
			Parameters:  schema,
		})

	return &ExtractorBuilder[T]{builder: builder}, nil
}

// Preamble replaces the default extraction preamble
func (b *ExtractorBuilder[T]) Preamble(preamble string) *ExtractorBuilder[T] {
	b.builder.Preamble(preamble)
	return b
}

// Temperature sets the sampling temperature
func (b *ExtractorBuilder[T]) Temperature(temperature float64) *ExtractorBuilder[T] {
	b.builder.Temperature(temperature)
	return b
}

// Build returns the configured extractor
func (b *ExtractorBuilder[T]) Build() *Extractor[T] {
	return &Extractor[T]{agent: b.builder.Build()}
}

// Extract runs the model over the given text and decodes the submit tool's
// arguments into T
func (e *Extractor[T]) Extract(ctx context.Context, text string) (T, error) {
	var result T

	response, err := e.agent.Prompt(ctx, text)
	if err != nil {
		return result, err
	}

	call, ok := response.ToolCall()
	if !ok {
		return result, NewResponseError("model did not call the submit function")
	}
	if call.ToolName != extractorToolName {
		return result, NewResponseError(fmt.Sprintf("model called unexpected tool %q", call.ToolName))
	}

	raw, err := json.Marshal(call.Arguments)
	if err != nil {
		return result, NewJSONError(err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, NewJSONError(err)
	}
	return result, nil
}
