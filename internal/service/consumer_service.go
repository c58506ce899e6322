package service

import (
	"context"
	"encoding/json"
	"strings"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerModule = "CHAT_LOG_CONSUMER"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Consume subscribes and persists chat logs on a background goroutine until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishChatLogMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(consumerModule, "Failed to unmarshal chat log", map[string]interface{}{"error": err.Error()})
		// Ack garbage so it is not redelivered forever.
		msg.Ack()
		return
	}

	channel := payload.Channel
	if channel != entity.ChannelSearch && channel != entity.ChannelChat {
		channel = entity.ChannelChat
	}
	suggestions := payload.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	log := &entity.ChatLog{
		Channel:     channel,
		UserMessage: strings.TrimSpace(payload.UserMessage),
		BotResponse: payload.BotResponse,
		Department:  payload.Department,
		SubCategory: payload.SubCategory,
		Suggestions: suggestions,
		Degraded:    payload.Degraded,
		SessionId:   payload.SessionId,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatLogRepository().Create(ctx, log); err != nil {
		cs.logger.Error(consumerModule, "Failed to persist chat log", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	msg.Ack()
}
