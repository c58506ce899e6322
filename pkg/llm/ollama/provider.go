package ollama

import (
	"context"
	"fmt"
	"time"

	"spi-eshop-be/pkg/llm"

	"github.com/go-resty/resty/v2"
)

type OllamaProvider struct {
	BaseURL   string
	ModelName string
	client    *resty.Client
}

// Ensure OllamaProvider implements LLMProvider
var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		// Ollama can be slow on the first request while the model loads
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(120*time.Second).
			SetHeader("Content-Type", "application/json"),
	}
}

// --- Request/Response structs (Internal to this package) ---

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// --- Interface Implementation ---

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(llm.Options{Temperature: 0.7, Model: o.ModelName}, opts...)

	messages := make([]ollamaMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = llm.RoleAssistant
		}
		messages[i] = ollamaMessage{Role: role, Content: msg.Content}
	}

	payload := ollamaChatRequest{
		Model:    options.Model,
		Messages: messages,
		Stream:   false,
		Options:  &ollamaOptions{Temperature: options.Temperature},
	}
	if options.MaxTokens > 0 {
		payload.Options.NumPredict = options.MaxTokens
	}

	var out ollamaChatResponse
	resp, err := o.client.R().
		ForceContentType("application/json").
		SetContext(ctx).
		SetBody(payload).
		SetResult(&out).
		Post("/api/chat")
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("ollama request aborted: %w", ctx.Err())
		}
		return "", llm.NetworkError("ollama", err)
	}
	if resp.IsError() {
		return "", &llm.StatusError{Provider: "ollama", StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	if out.Message.Content == "" {
		return "", llm.ErrEmptyReply
	}

	return out.Message.Content, nil
}

func (o *OllamaProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	// Reuse Chat for simplicity as most new LLMs are chat-optimized
	return o.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}
