package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbeddingModel echoes each document back with a fixed vector
type fakeEmbeddingModel struct {
	maxDocuments int
	dims         int
	received     []string
}

func (f *fakeEmbeddingModel) MaxDocuments() int { return f.maxDocuments }
func (f *fakeEmbeddingModel) Dims() int         { return f.dims }

func (f *fakeEmbeddingModel) EmbedTexts(_ context.Context, documents []string) ([]Embedding, error) {
	f.received = documents
	embeddings := make([]Embedding, len(documents))
	for i, doc := range documents {
		embeddings[i] = Embedding{Document: doc, Vec: make([]float64, f.dims)}
	}
	return embeddings, nil
}

func TestEmbeddingsBuilder(t *testing.T) {
	fake := &fakeEmbeddingModel{maxDocuments: 10, dims: 4}

	got, err := NewEmbeddingsBuilder(fake).
		Document("first").
		Documents("second", "third").
		Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "third"}, fake.received)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Document)
	assert.Len(t, got[0].Vec, 4)
}

func TestEmbeddingsBuilder_RejectsOversizedBatch(t *testing.T) {
	fake := &fakeEmbeddingModel{maxDocuments: 2, dims: 4}

	builder := NewEmbeddingsBuilder(fake).Documents("a", "b", "c")

	_, err := builder.Build(context.Background())

	var agentErr *Error
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, ErrCodeValidation, agentErr.Code)
	assert.Nil(t, fake.received, "the model must not be called for an oversized batch")
}

func TestEmbeddingsBuilder_EmptyBatch(t *testing.T) {
	fake := &fakeEmbeddingModel{maxDocuments: 2, dims: 4}

	got, err := NewEmbeddingsBuilder(fake).Build(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
