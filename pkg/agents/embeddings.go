// Embedding model contract and batch builder
package agents

import (
	"context"
	"fmt"
)

// Embedding is one embedded document: the source text and its vector
type Embedding struct {
	Document string    `json:"document"`
	Vec      []float64 `json:"vec"`
}

// EmbeddingModel embeds batches of texts. Implementations must preserve
// input order in the returned slice.
type EmbeddingModel interface {
	// MaxDocuments returns the largest batch the model accepts
	MaxDocuments() int
	// Dims returns the dimensionality of produced vectors
	Dims() int
	// EmbedTexts embeds every document or fails as a whole
	EmbedTexts(ctx context.Context, documents []string) ([]Embedding, error)
}

// EmbeddingsBuilder collects documents and embeds them in one batch
type EmbeddingsBuilder struct {
	model     EmbeddingModel
	documents []string
}

// NewEmbeddingsBuilder creates a builder bound to the given model
func NewEmbeddingsBuilder(model EmbeddingModel) *EmbeddingsBuilder {
	return &EmbeddingsBuilder{model: model}
}

// Document adds a single document to the batch
func (b *EmbeddingsBuilder) Document(text string) *EmbeddingsBuilder {
	b.documents = append(b.documents, text)
	return b
}

// Documents adds several documents to the batch
func (b *EmbeddingsBuilder) Documents(texts ...string) *EmbeddingsBuilder {
	b.documents = append(b.documents, texts...)
	return b
}

// Build embeds the collected documents. Exceeding the model's batch cap is a
// caller contract violation and is rejected before any call is made.
func (b *EmbeddingsBuilder) Build(ctx context.Context) ([]Embedding, error) {
	if max := b.model.MaxDocuments(); len(b.documents) > max {
		return nil, NewValidationError(
			fmt.Sprintf("batch of %d documents exceeds the model maximum of %d", len(b.documents), max))
	}
	return b.model.EmbedTexts(ctx, b.documents)
}
