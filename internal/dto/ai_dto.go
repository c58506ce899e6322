package dto

import "spi-eshop-be/pkg/llm"

type AISearchRequest struct {
	Query string `json:"query" validate:"max=500"`
}

type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AIChatRequest struct {
	Message             string             `json:"message" validate:"max=2000"`
	ConversationHistory []ConversationTurn `json:"conversationHistory,omitempty" validate:"max=50"`
	SessionId           string             `json:"sessionId,omitempty" validate:"max=64"`
}

// History converts the request turns into provider messages.
func (r AIChatRequest) History() []llm.Message {
	out := make([]llm.Message, 0, len(r.ConversationHistory))
	for _, t := range r.ConversationHistory {
		out = append(out, llm.Message{Role: t.Role, Content: t.Content})
	}
	return out
}

type AIChatResponse struct {
	Success     bool     `json:"success"`
	Department  *string  `json:"department"`
	SubCategory *string  `json:"subCategory"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

type AISearchResponse struct {
	AIChatResponse
	Products []ProductResponse `json:"products"`
}

type DepartmentResponse struct {
	Code          string   `json:"code"`
	FullName      string   `json:"fullName"`
	SubCategories []string `json:"subCategories"`
}

// PublishChatLogMessage travels over the in-process bus to the chat log consumer.
type PublishChatLogMessage struct {
	Channel     string   `json:"channel"`
	UserMessage string   `json:"user_message"`
	BotResponse string   `json:"bot_response"`
	Department  *string  `json:"department,omitempty"`
	SubCategory *string  `json:"sub_category,omitempty"`
	Suggestions []string `json:"suggestions"`
	Degraded    bool     `json:"degraded"`
	SessionId   *string  `json:"session_id,omitempty"`
}
