// Package bedrock adapts the agents framework contracts to Amazon Bedrock.
//
// The package is a bidirectional type-mapping layer plus thin builder
// wrappers around the Bedrock SDK clients:
//
//   - a document codec converting generic JSON values to and from the SDK's
//     document representation
//   - a content mapper converting framework message content (text, images,
//     documents, tool calls, tool results) to and from Converse content
//     blocks
//   - a completion adapter over the Converse API
//   - an embedding adapter over the InvokeModel API for Titan-style
//     embedding models
//   - a client factory binding SDK handles to framework builders
//
// Usage:
//
//	client, err := bedrock.NewClientBuilder().
//	    Region("us-east-1").
//	    Build(ctx)
//	if err != nil {
//	    return err
//	}
//	agent := client.Agent(bedrock.ModelNovaLite).
//	    Preamble("You are a concise assistant.").
//	    Build()
//	response, err := agent.Prompt(ctx, "What is the capital of France?")
//
// Authentication follows the AWS SDK's default credential chain, supporting
// environment variables, IAM roles, profiles, and other standard AWS
// authentication methods; make sure the principal has been granted access to
// the foundation models it invokes:
// https://docs.aws.amazon.com/bedrock/latest/userguide/model-access-modify.html
//
// Retries, timeouts and cancellation belong to the SDK transport; this layer
// classifies provider failures into readable messages but never retries.
package bedrock
