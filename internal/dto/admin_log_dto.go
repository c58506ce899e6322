package dto

import "time"

type LogQueryRequest struct {
	Level  string `query:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	Limit  int    `query:"limit" validate:"min=0,max=500"`
	Offset int    `query:"offset" validate:"min=0"`
}

// LogListResponse uses a string Id: log ids are content hashes.
type LogListResponse struct {
	Id        string    `json:"id"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type LogDetailResponse struct {
	LogListResponse
	Details map[string]interface{} `json:"details"`
}

type ChatLogResponse struct {
	Id          string    `json:"id"`
	Channel     string    `json:"channel"`
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Department  *string   `json:"department"`
	SubCategory *string   `json:"subCategory"`
	Suggestions []string  `json:"suggestions"`
	Degraded    bool      `json:"degraded"`
	SessionId   *string   `json:"sessionId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
