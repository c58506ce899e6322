package mapper

import (
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/model"

	"gorm.io/datatypes"
)

type ChatLogMapper struct{}

func NewChatLogMapper() *ChatLogMapper {
	return &ChatLogMapper{}
}

func (m *ChatLogMapper) ToEntity(c *model.ChatLog) *entity.ChatLog {
	if c == nil {
		return nil
	}
	suggestions := []string(c.Suggestions)
	if suggestions == nil {
		suggestions = []string{}
	}
	return &entity.ChatLog{
		Id:          c.Id,
		Channel:     c.Channel,
		UserMessage: c.UserMessage,
		BotResponse: c.BotResponse,
		Department:  c.Department,
		SubCategory: c.SubCategory,
		Suggestions: suggestions,
		Degraded:    c.Degraded,
		SessionId:   c.SessionId,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ChatLogMapper) ToModel(c *entity.ChatLog) *model.ChatLog {
	if c == nil {
		return nil
	}
	return &model.ChatLog{
		Id:          c.Id,
		Channel:     c.Channel,
		UserMessage: c.UserMessage,
		BotResponse: c.BotResponse,
		Department:  c.Department,
		SubCategory: c.SubCategory,
		Suggestions: datatypes.NewJSONSlice(c.Suggestions),
		Degraded:    c.Degraded,
		SessionId:   c.SessionId,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *ChatLogMapper) ToEntities(logs []*model.ChatLog) []*entity.ChatLog {
	entities := make([]*entity.ChatLog, len(logs))
	for i, c := range logs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
