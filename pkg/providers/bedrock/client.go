// Client factory for the Bedrock adapter
package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/modelfarm/go-agents/pkg/agents"
)

// DefaultRegion is used when the builder is given no region. Verify model
// and region compatibility before overriding:
// https://docs.aws.amazon.com/bedrock/latest/userguide/models-regions.html
const DefaultRegion = "us-east-1"

// Completion model identifiers. Any Bedrock model identifier may also be
// passed verbatim; the catalogue only names the commonly used ones:
// https://docs.aws.amazon.com/bedrock/latest/userguide/models-supported.html
const (
	ModelNovaLite            = "amazon.nova-lite-v1:0"
	ModelMixtral8x7BInstruct = "mistral.mixtral-8x7b-instruct-v0:1"
)

// Embedding model identifiers and their native dimensionality
const (
	EmbeddingTitanTextV2     = "amazon.titan-embed-text-v2:0"
	EmbeddingTitanTextV2Dims = 1024
)

// ClientBuilder assembles a Client. Credential loading beyond the optional
// static key pair follows the SDK's default chain (environment, profiles,
// IAM roles).
type ClientBuilder struct {
	region          string
	accessKeyID     string
	secretAccessKey string
	sessionToken    string
	endpoint        string
}

// NewClientBuilder creates a builder with the default region
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{region: DefaultRegion}
}

// Region overrides the AWS region
func (b *ClientBuilder) Region(region string) *ClientBuilder {
	b.region = region
	return b
}

// Credentials sets an explicit static credential pair instead of the SDK's
// default chain. The session token may be empty.
func (b *ClientBuilder) Credentials(accessKeyID, secretAccessKey, sessionToken string) *ClientBuilder {
	b.accessKeyID = accessKeyID
	b.secretAccessKey = secretAccessKey
	b.sessionToken = sessionToken
	return b
}

// Endpoint overrides the Bedrock runtime endpoint, mainly for local stacks
// and tests
func (b *ClientBuilder) Endpoint(endpoint string) *ClientBuilder {
	b.endpoint = endpoint
	return b
}

// Build loads the AWS configuration and constructs the client
func (b *ClientBuilder) Build(ctx context.Context) (*Client, error) {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(b.region),
	}
	if b.accessKeyID != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(b.accessKeyID, b.secretAccessKey, b.sessionToken)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, agents.NewRequestError(fmt.Sprintf("failed to load AWS configuration: %v", err))
	}

	runtime := bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
		if b.endpoint != "" {
			o.BaseEndpoint = aws.String(b.endpoint)
		}
	})
	control := bedrock.NewFromConfig(cfg)

	return &Client{runtime: runtime, control: control, region: b.region}, nil
}

// Client holds the Bedrock SDK handles. It carries no mutable state and is
// safe to share across concurrent callers.
type Client struct {
	runtime *bedrockruntime.Client
	control *bedrock.Client
	region  string
}

// Region returns the region the client was built for
func (c *Client) Region() string {
	return c.region
}

// CompletionModel binds the client to a completion model identifier
func (c *Client) CompletionModel(modelID string) *CompletionModel {
	return &CompletionModel{runtime: c.runtime, modelID: modelID}
}

// EmbeddingModel binds the client to an embedding model identifier and its
// output dimensionality
func (c *Client) EmbeddingModel(modelID string, dims int) *EmbeddingModel {
	return &EmbeddingModel{runtime: c.runtime, modelID: modelID, dims: dims}
}

// Agent returns an agent builder backed by the given completion model
func (c *Client) Agent(modelID string) *agents.AgentBuilder {
	return agents.NewAgentBuilder(c.CompletionModel(modelID))
}

// Embeddings returns an embeddings builder backed by the given embedding
// model
func (c *Client) Embeddings(modelID string, dims int) *agents.EmbeddingsBuilder {
	return agents.NewEmbeddingsBuilder(c.EmbeddingModel(modelID, dims))
}

// Extractor returns an extractor builder for T backed by the given
// completion model. A package function because Go methods cannot take type
// parameters.
func Extractor[T any](c *Client, modelID string) (*agents.ExtractorBuilder[T], error) {
	return agents.NewExtractorBuilder[T](c.CompletionModel(modelID))
}

// Ping verifies the client can reach Bedrock by listing foundation models
// with the control-plane API
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.control.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{}); err != nil {
		return agents.NewProviderError(err.Error())
	}
	return nil
}
