// Agent builder: binds a completion model to reusable configuration
package agents

import "context"

// Agent wraps a CompletionModel with a fixed preamble, sampling parameters,
// tool definitions and static context documents. Agents hold no mutable
// state and are safe for concurrent use.
type Agent struct {
	model       CompletionModel
	preamble    string
	temperature *float64
	maxTokens   *int
	tools       []ToolDefinition
	documents   []ContextDocument
}

// AgentBuilder assembles an Agent
type AgentBuilder struct {
	agent Agent
}

// NewAgentBuilder creates a builder for the given completion model
func NewAgentBuilder(model CompletionModel) *AgentBuilder {
	return &AgentBuilder{agent: Agent{model: model}}
}

// Preamble sets the system preamble sent with every request
func (b *AgentBuilder) Preamble(preamble string) *AgentBuilder {
	b.agent.preamble = preamble
	return b
}

// Temperature sets the sampling temperature
func (b *AgentBuilder) Temperature(temperature float64) *AgentBuilder {
	b.agent.temperature = &temperature
	return b
}

// MaxTokens sets the maximum number of output tokens
func (b *AgentBuilder) MaxTokens(maxTokens int) *AgentBuilder {
	b.agent.maxTokens = &maxTokens
	return b
}

// Tool adds a tool definition available on every request
func (b *AgentBuilder) Tool(tool ToolDefinition) *AgentBuilder {
	b.agent.tools = append(b.agent.tools, tool)
	return b
}

// Context adds a static context document attached to every prompt
func (b *AgentBuilder) Context(id, text string) *AgentBuilder {
	b.agent.documents = append(b.agent.documents, ContextDocument{ID: id, Text: text})
	return b
}

// Build returns the configured agent
func (b *AgentBuilder) Build() *Agent {
	return &b.agent
}

// Prompt sends a one-shot prompt with no prior history
func (a *Agent) Prompt(ctx context.Context, prompt string) (*CompletionResponse, error) {
	return a.Chat(ctx, prompt, nil)
}

// Chat sends a prompt together with prior conversation history
func (a *Agent) Chat(ctx context.Context, prompt string, history []Message) (*CompletionResponse, error) {
	return a.model.Completion(ctx, CompletionRequest{
		Prompt:      prompt,
		Preamble:    a.preamble,
		ChatHistory: history,
		Documents:   a.documents,
		Temperature: a.temperature,
		MaxTokens:   a.maxTokens,
		Tools:       a.tools,
	})
}
