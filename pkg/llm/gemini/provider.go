package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spi-eshop-be/pkg/llm"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-flash"

	roleModel = "model"
)

type GeminiChatParts struct {
	Text string `json:"text"`
}

type GeminiChatContent struct {
	Parts []*GeminiChatParts `json:"parts"`
	Role  string             `json:"role,omitempty"`
}

type GeminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type GeminiChatRequest struct {
	SystemInstruction *GeminiChatContent      `json:"systemInstruction,omitempty"`
	Contents          []*GeminiChatContent    `json:"contents"`
	GenerationConfig  *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiChatCandidate struct {
	Content *GeminiChatContent `json:"content"`
}

type GeminiChatResponse struct {
	Candidates []*GeminiChatCandidate `json:"candidates"`
}

// Provider calls the Gemini generateContent API.
type Provider struct {
	apiKey string
	model  string
	client *resty.Client
}

var _ llm.LLMProvider = &Provider{}

func NewProvider(apiKey, baseURL, model string) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
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
		return "", fmt.Errorf("gemini: %w", llm.ErrMissingCredential)
	}

	opts := llm.ApplyOptions(llm.Options{Model: p.model, Temperature: 0.7}, options...)

	payload := GeminiChatRequest{
		Contents: make([]*GeminiChatContent, 0, len(history)),
		GenerationConfig: &GeminiGenerationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxTokens,
		},
	}
	for _, msg := range history {
		part := &GeminiChatParts{Text: msg.Content}
		switch msg.Role {
		case llm.RoleSystem:
			if payload.SystemInstruction == nil {
				payload.SystemInstruction = &GeminiChatContent{}
			}
			payload.SystemInstruction.Parts = append(payload.SystemInstruction.Parts, part)
		case llm.RoleAssistant, roleModel:
			payload.Contents = append(payload.Contents, &GeminiChatContent{Role: roleModel, Parts: []*GeminiChatParts{part}})
		default:
			payload.Contents = append(payload.Contents, &GeminiChatContent{Role: llm.RoleUser, Parts: []*GeminiChatParts{part}})
		}
	}

	var out GeminiChatResponse
	resp, err := p.client.R().
		ForceContentType("application/json").
		SetContext(ctx).
		SetHeader("x-goog-api-key", p.apiKey).
		SetPathParam("model", opts.Model).
		SetBody(payload).
		SetResult(&out).
		Post("/models/{model}:generateContent")
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("gemini request aborted: %w", ctx.Err())
		}
		return "", llm.NetworkError("gemini", err)
	}
	if resp.IsError() {
		return "", &llm.StatusError{Provider: "gemini", StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return firstText(&out)
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, options...)
}

func firstText(res *GeminiChatResponse) (string, error) {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", llm.ErrEmptyReply
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", llm.ErrEmptyReply
	}
	return sb.String(), nil
}
