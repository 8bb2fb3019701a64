package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-builder/internal/application/service"
	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishPortfolioEvent(t *testing.T) {
	w := &fakeWriter{}
	c := &KafkaProducerClient{PortfolioEventsWriter: w, logger: logger.NewNopLogger()}

	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	err := c.PublishPortfolioEvent(context.Background(), service.PortfolioEvent{
		EventType:   service.EventPortfolioCreated,
		PortfolioID: "p-1",
		OccurredAt:  at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	assert.Equal(t, "p-1", string(w.msgs[0].Key))

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, "portfolio.created", got["event_type"])
	assert.Equal(t, "p-1", got["portfolio_id"])
	assert.Equal(t, "2024-05-01T09:30:00Z", got["occurred_at"])

	c.Close()
	assert.True(t, w.closed)
}

func TestPublishPortfolioEvent_WriterError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	c := &KafkaProducerClient{PortfolioEventsWriter: w, logger: logger.NewNopLogger()}

	err := c.PublishPortfolioEvent(context.Background(), service.PortfolioEvent{EventType: service.EventPortfolioReset})
	assert.ErrorContains(t, err, "broker down")
}

func TestNewKafkaProducerClient_NoBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}
