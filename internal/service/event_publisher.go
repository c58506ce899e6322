package service

import (
	"context"

	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/pkg/events"
	pktNats "spi-eshop-be/pkg/nats"
)

// IEventPublisher emits outward analytics events. Failures are logged, never returned.
type IEventPublisher interface {
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}

type natsEventPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

// NewNatsEventPublisher accepts a nil publisher; events are then dropped.
func NewNatsEventPublisher(publisher *pktNats.Publisher, logger logger.ILogger) IEventPublisher {
	return &natsEventPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *natsEventPublisher) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	if err := p.publisher.Publish(ctx, events.New(eventType, data)); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}
