package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChannelSearch = "search"
	ChannelChat   = "chat"
)

type ChatLog struct {
	Id          uuid.UUID
	Channel     string
	UserMessage string
	BotResponse string
	Department  *string
	SubCategory *string
	Suggestions []string
	Degraded    bool
	SessionId   *string
	CreatedAt   time.Time
}
