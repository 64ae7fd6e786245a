// Embedding adapter over the Bedrock InvokeModel API
package bedrock

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"golang.org/x/sync/errgroup"

	"github.com/modelfarm/go-agents/pkg/agents"
)

// MaxEmbeddingDocuments caps one logical embedding batch. Exceeding it is a
// caller contract violation, rejected by the embeddings builder.
const MaxEmbeddingDocuments = 1024

// Documents embed independently, so a batch fans out. The limit keeps one
// batch from monopolizing the account's request quota.
const maxConcurrentEmbeddings = 8

// embeddingRequest is the JSON envelope Titan-style embedding models expect
type embeddingRequest struct {
	InputText  string `json:"inputText"`
	Dimensions int    `json:"dimensions"`
	Normalize  bool   `json:"normalize"`
}

type embeddingResponse struct {
	Embedding           []float64 `json:"embedding"`
	InputTextTokenCount int       `json:"inputTextTokenCount"`
}

// invokeAPI is the slice of the Bedrock runtime client the embedding adapter
// needs
type invokeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// EmbeddingModel implements agents.EmbeddingModel against one Bedrock
// embedding model with a fixed output dimensionality.
type EmbeddingModel struct {
	runtime invokeAPI
	modelID string
	dims    int
}

// ModelID returns the Bedrock model identifier this adapter invokes
func (m *EmbeddingModel) ModelID() string {
	return m.modelID
}

// MaxDocuments returns the batch cap
func (m *EmbeddingModel) MaxDocuments() int {
	return MaxEmbeddingDocuments
}

// Dims returns the dimensionality of produced vectors
func (m *EmbeddingModel) Dims() int {
	return m.dims
}

// EmbedTexts embeds every document in the batch. Documents dispatch
// concurrently but results recombine in input order. The batch is
// all-or-nothing: the first failure aborts it and completed vectors are
// discarded.
func (m *EmbeddingModel) EmbedTexts(ctx context.Context, documents []string) ([]agents.Embedding, error) {
	results := make([]agents.Embedding, len(documents))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentEmbeddings)
	for i, doc := range documents {
		group.Go(func() error {
			response, err := m.embedDocument(ctx, doc)
			if err != nil {
				return err
			}
			results[i] = agents.Embedding{Document: doc, Vec: response.Embedding}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, agents.NewResponseError(err.Error())
	}
	return results, nil
}

func (m *EmbeddingModel) embedDocument(ctx context.Context, text string) (*embeddingResponse, error) {
	body, err := json.Marshal(embeddingRequest{
		InputText:  text,
		Dimensions: m.dims,
		Normalize:  true,
	})
	if err != nil {
		return nil, agents.NewJSONError(err)
	}

	output, err := m.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(m.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, agents.NewProviderError(classifyServiceError(err))
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(output.Body, &parsed); err != nil {
		return nil, agents.NewJSONError(err)
	}
	return &parsed, nil
}
