// Package notification delivers order notifications to the mailer. The core only
// hands over a payload and an address; rendering, email delivery and retries
// belong to the consumer of the topic.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/notification"

	"github.com/segmentio/kafka-go"
)

// Producer is the part of *kafka.Writer the sink uses.
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Envelope is the message value published for the mailer.
type Envelope struct {
	To           string                    `json:"to"`
	Notification notification.Notification `json:"notification"`
}

// KafkaSink publishes one message per notification, keyed by order id so every
// notification of an order lands on the same partition.
type KafkaSink struct {
	producer Producer
	topic    string
	logger   *slog.Logger
}

func NewKafkaSink(producer Producer, topic string, logger *slog.Logger) *KafkaSink {
	return &KafkaSink{producer: producer, topic: topic, logger: logger.With("component", "kafka_sink")}
}

// NewWriter builds the producer for brokersCSV ("host:9092,host2:9092").
func NewWriter(brokersCSV string) *kafka.Writer {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
}

func (s *KafkaSink) Send(ctx context.Context, destination string, n notification.Notification) error {
	value, err := json.Marshal(Envelope{To: destination, Notification: n})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	key := n.OrderID
	if key == "" {
		key = destination
	}

	msg := kafka.Message{
		Topic: s.topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "notification_kind", Value: []byte(n.Kind)},
		},
		Time: time.Now().UTC(),
	}
	if err = s.producer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	s.logger.Debug("notification published", "kind", string(n.Kind), "orderId", n.OrderID)
	return nil
}
