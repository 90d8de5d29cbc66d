package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sink "marketplace/internal/adapters/out/notification"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/logging"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProducer struct{ mock.Mock }

func (m *MockProducer) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func TestKafkaSink_Send(t *testing.T) {
	n := notification.Notification{
		Kind:       notification.OrderPlaced,
		OrderID:    "order-1",
		StoreName:  "Store A",
		CreatedAt:  time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		TotalPrice: decimal.NewFromInt(20),
	}

	t.Run("publishes envelope keyed by order", func(t *testing.T) {
		producer := new(MockProducer)
		var sent []kafka.Message
		producer.On("WriteMessages", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
			Return(nil).Once()

		err := sink.NewKafkaSink(producer, "order-notifications", logging.Discard()).
			Send(testContext(t), "seller@shop.test", n)

		require.NoError(t, err)
		require.Len(t, sent, 1)
		assert.Equal(t, "order-notifications", sent[0].Topic)
		assert.Equal(t, []byte("order-1"), sent[0].Key)
		assert.Equal(t, "notification_kind", sent[0].Headers[0].Key)
		assert.Equal(t, []byte("order_placed"), sent[0].Headers[0].Value)

		var envelope sink.Envelope
		require.NoError(t, json.Unmarshal(sent[0].Value, &envelope))
		assert.Equal(t, "seller@shop.test", envelope.To)
		assert.Equal(t, "Store A", envelope.Notification.StoreName)
		assert.True(t, decimal.NewFromInt(20).Equal(envelope.Notification.TotalPrice))
	})

	t.Run("digest without order is keyed by destination", func(t *testing.T) {
		producer := new(MockProducer)
		producer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			return len(msgs) == 1 && bytes.Equal(msgs[0].Key, []byte("admin@shop.test"))
		})).Return(nil).Once()

		digest := notification.NewPendingDigest(time.Now(), nil)
		err := sink.NewKafkaSink(producer, "t", logging.Discard()).Send(testContext(t), "admin@shop.test", digest)

		require.NoError(t, err)
		producer.AssertExpectations(t)
	})

	t.Run("producer error is returned", func(t *testing.T) {
		producer := new(MockProducer)
		producer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

		err := sink.NewKafkaSink(producer, "t", logging.Discard()).Send(testContext(t), "x@y.z", n)

		require.EqualError(t, err, "leader not available")
	})
}

func TestLogSink_Send(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewLogSink(logging.NewWithWriter(&buf, "info"))

	require.NoError(t, s.Send(testContext(t), "c1@example.com", notification.Notification{
		Kind:    notification.OrderDeclined,
		OrderID: "order-9",
	}))

	assert.Contains(t, buf.String(), `"kind":"order_declined"`)
	assert.Contains(t, buf.String(), `"to":"c1@example.com"`)
}
