package factory

import (
	"fmt"
	"strings"

	"spi-eshop-be/pkg/llm"
	"spi-eshop-be/pkg/llm/gemini"
	"spi-eshop-be/pkg/llm/ollama"
	"spi-eshop-be/pkg/llm/openai"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

type Settings struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}

func NewLLMProvider(s Settings) (llm.LLMProvider, error) {
	switch strings.ToLower(strings.TrimSpace(s.Provider)) {
	case ProviderGemini, "":
		return gemini.NewProvider(s.APIKey, s.BaseURL, s.Model), nil
	case ProviderOllama:
		baseURL := s.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, s.Model), nil
	case ProviderOpenAI:
		if s.Model == "" {
			return nil, fmt.Errorf("openai provider requires a model name")
		}
		return openai.NewProvider(s.APIKey, s.BaseURL, s.Model), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", s.Provider)
	}
}
