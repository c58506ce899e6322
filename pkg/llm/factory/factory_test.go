package factory

import (
	"testing"

	"spi-eshop-be/pkg/llm/gemini"
	"spi-eshop-be/pkg/llm/ollama"
	"spi-eshop-be/pkg/llm/openai"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		check    func(t *testing.T, p interface{})
		wantErr  bool
	}{
		{
			name:     "default is gemini",
			settings: Settings{APIKey: "k"},
			check: func(t *testing.T, p interface{}) {
				if _, ok := p.(*gemini.Provider); !ok {
					t.Errorf("got %T, want *gemini.Provider", p)
				}
			},
		},
		{
			name:     "ollama",
			settings: Settings{Provider: "Ollama", Model: "llama3"},
			check: func(t *testing.T, p interface{}) {
				o, ok := p.(*ollama.OllamaProvider)
				if !ok {
					t.Fatalf("got %T, want *ollama.OllamaProvider", p)
				}
				if o.BaseURL != "http://localhost:11434" {
					t.Errorf("BaseURL = %q", o.BaseURL)
				}
			},
		},
		{
			name:     "openai",
			settings: Settings{Provider: "openai", Model: "gpt-4o-mini", APIKey: "k"},
			check: func(t *testing.T, p interface{}) {
				if _, ok := p.(*openai.Provider); !ok {
					t.Errorf("got %T, want *openai.Provider", p)
				}
			},
		},
		{name: "openai without model", settings: Settings{Provider: "openai"}, wantErr: true},
		{name: "unknown", settings: Settings{Provider: "huggingface"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewLLMProvider(tt.settings)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, p)
		})
	}
}
