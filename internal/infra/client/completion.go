package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/resilience"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
)

// Generation parameters, matching what the frontend was tuned against.
const (
	completionMaxTokens   = 1000
	completionTemperature = 0.7
)

// CompletionClient calls an Azure OpenAI-compatible chat-completions
// deployment. One call per turn: system instruction + assembled user
// context in, a single text answer out.
type CompletionClient struct {
	api        *openai.Client
	deployment string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	bulkhead   *resilience.Bulkhead
}

// NewCompletionClient builds the client against the given Azure
// endpoint, API key and deployment name. The injected httpClient
// carries the per-attempt timeout.
func NewCompletionClient(httpClient *http.Client, endpoint, apiKey, deployment string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *CompletionClient {
	apiCfg := openai.DefaultAzureConfig(apiKey, endpoint)
	apiCfg.HTTPClient = httpClient
	return &CompletionClient{
		api:        openai.NewClientWithConfig(apiCfg),
		deployment: deployment,
		cb:         cb,
		cfg:        cfg,
		bulkhead:   resilience.NewBulkhead(cfg.MaxConcurrency),
	}
}

// Complete sends the two role-tagged blocks and returns the first
// choice's text plus token usage. Bulkhead caps in-flight calls, the
// breaker shields a dead deployment, retry covers transient failures.
func (c *CompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (*domain.Completion, error) {
	ctx, span := tracer.Start(ctx, "CompletionClient.Complete")
	defer span.End()
	span.SetAttributes(attribute.String("completion.deployment", c.deployment))

	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, &domain.ErrExternalService{Service: "completion", Err: err}
	}
	defer c.bulkhead.Release()

	var out domain.Completion

	_, err := c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model:       c.deployment,
				MaxTokens:   completionMaxTokens,
				Temperature: completionTemperature,
				Messages: []openai.ChatCompletionMessage{
					{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
					{Role: openai.ChatMessageRoleUser, Content: userPrompt},
				},
			})
			if err != nil {
				return fmt.Errorf("chat completion: %w", err)
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("chat completion returned no choices")
			}
			out = domain.Completion{
				Answer:           resp.Choices[0].Message.Content,
				PromptTokens:     resp.Usage.PromptTokens,
				CompletionTokens: resp.Usage.CompletionTokens,
			}
			return nil
		})
		if innerErr != nil {
			return nil, innerErr
		}
		return &out, nil
	})
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "completion", Err: err}
	}

	return &out, nil
}
