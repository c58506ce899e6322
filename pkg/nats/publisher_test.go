package nats

import (
	"encoding/json"
	"testing"
	"time"

	"spi-eshop-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(envelope{
		Type:       events.AISearchPerformed,
		OccurredAt: at,
		Data:       map[string]interface{}{"query": "laptop", "products": 3},
	})
	require.NoError(t, err)

	evt, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, events.AISearchPerformed, evt.EventType())
	assert.True(t, at.Equal(evt.Timestamp()))
	assert.Equal(t, "laptop", evt.Payload()["query"])
	assert.Equal(t, float64(3), evt.Payload()["products"])
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"data":{}}`))
	assert.Error(t, err)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "store.events.PRODUCTS_IMPORTED", Subject(events.ProductsImported))
}
