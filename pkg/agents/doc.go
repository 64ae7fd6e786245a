// Package agents defines the provider-agnostic contracts consumed by LLM
// provider adapters.
//
// The main components include:
//
//   - Message types: conversation turns with multi-modal content (text,
//     images, documents, tool calls, tool results)
//   - CompletionModel interface: a single chat-completion transaction
//   - EmbeddingModel interface: batch text embedding
//   - Tool system: named, described, schema-constrained functions the model
//     may invoke instead of replying with text
//   - Builders: Agent, Extractor and Embeddings entry points that bind a
//     model to reusable configuration
//   - Error handling: standardized error values
//
// Provider implementations are located in separate packages under
// /pkg/providers/ to maintain clean separation of concerns and avoid import
// cycles.
package agents
