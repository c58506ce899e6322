package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerService_PersistsPublishedChatLogs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	s := &store{}
	consumer := NewConsumerService(pubSub, "chat-logs", fakeFactory{s}, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("chat-logs", pubSub)

	dept := "Civil"
	payload, err := json.Marshal(dto.PublishChatLogMessage{
		Channel:     entity.ChannelSearch,
		UserMessage: " cement ",
		BotResponse: "Here are materials.",
		Department:  &dept,
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	// garbage is acked and dropped
	require.NoError(t, publisher.Publish(ctx, []byte("not json")))

	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.chatLogs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	s.mu.Lock()
	defer s.mu.Unlock()
	got := s.chatLogs[0]
	assert.Equal(t, entity.ChannelSearch, got.Channel)
	assert.Equal(t, "cement", got.UserMessage)
	require.NotNil(t, got.Department)
	assert.Equal(t, "Civil", *got.Department)
	assert.NotNil(t, got.Suggestions)
}
