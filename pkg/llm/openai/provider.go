package openai

import (
	"context"
	"fmt"
	"time"

	"spi-eshop-be/pkg/llm"

	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.openai.com/v1"

// Provider talks to any OpenAI-compatible chat completions endpoint.
type Provider struct {
	apiKey string
	model  string
	client *resty.Client
}

var _ llm.LLMProvider = &Provider{}

// Request Payload Structure (OpenAI Compatible)
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewProvider(apiKey, baseURL, model string) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Provider{
		apiKey: apiKey,
		model:  model,
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(60*time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("openai: %w", llm.ErrMissingCredential)
	}

	opts := llm.ApplyOptions(llm.Options{Model: p.model, MaxTokens: 500, Temperature: 0.7}, options...)

	var out chatResponse
	resp, err := p.client.R().
		ForceContentType("application/json").
		SetContext(ctx).
		SetAuthToken(p.apiKey).
		SetBody(chatRequest{
			Model:       opts.Model,
			Messages:    history,
			MaxTokens:   opts.MaxTokens,
			Temperature: opts.Temperature,
		}).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("openai request aborted: %w", ctx.Err())
		}
		return "", llm.NetworkError("openai", err)
	}
	if resp.IsError() {
		return "", &llm.StatusError{Provider: "openai", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	if out.Error != nil {
		return "", fmt.Errorf("openai api returned error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", llm.ErrEmptyReply
	}

	return out.Choices[0].Message.Content, nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}
