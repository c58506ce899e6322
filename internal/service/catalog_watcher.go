package service

import (
	"context"

	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/pkg/events"
	pktNats "spi-eshop-be/pkg/nats"

	"github.com/nats-io/nats.go/jetstream"
)

const catalogWatcherModule = "CATALOG_WATCHER"

// Broadcaster pushes a typed frame to every connected chat client.
type Broadcaster interface {
	Broadcast(msgType string, data interface{})
}

// CatalogWatcher tells open chat sessions when an import changed the catalog.
type CatalogWatcher struct {
	subscriber  *pktNats.Subscriber
	broadcaster Broadcaster
	logger      logger.ILogger
	consumer    jetstream.ConsumeContext
}

func NewCatalogWatcher(subscriber *pktNats.Subscriber, broadcaster Broadcaster, logger logger.ILogger) *CatalogWatcher {
	return &CatalogWatcher{
		subscriber:  subscriber,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Start is a no-op without a NATS connection.
func (w *CatalogWatcher) Start(ctx context.Context) error {
	if w.subscriber == nil {
		w.logger.Warn(catalogWatcherModule, "NATS not configured, catalog updates will not be pushed", nil)
		return nil
	}

	cc, err := w.subscriber.Subscribe(ctx, pktNats.Subject(events.ProductsImported), "", w.handle)
	if err != nil {
		return err
	}
	w.consumer = cc
	return nil
}

func (w *CatalogWatcher) Stop() {
	if w.consumer != nil {
		w.consumer.Stop()
	}
}

func (w *CatalogWatcher) handle(_ context.Context, event events.Event) error {
	w.logger.Info(catalogWatcherModule, "Catalog updated", map[string]interface{}{"event": event.EventType()})
	w.broadcaster.Broadcast("catalog_updated", event.Payload())
	return nil
}
