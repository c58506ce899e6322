package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatLog is an audit record of one search or chat exchange.
type ChatLog struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Channel     string                      `gorm:"type:varchar(16);not null;index"`
	UserMessage string                      `gorm:"type:text;not null"`
	BotResponse string                      `gorm:"type:text;not null"`
	Department  *string                     `gorm:"type:varchar(64)"`
	SubCategory *string                     `gorm:"type:varchar(128)"`
	Suggestions datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Degraded    bool                        `gorm:"not null;default:false"`
	SessionId   *string                     `gorm:"type:varchar(128);index"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime;index"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
