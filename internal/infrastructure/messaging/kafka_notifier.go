// Package messaging publishes domain notifications to Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

const DefaultContactTopic = "portfolio.contact"

// ContactEvent is the payload published for every stored contact message.
type ContactEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// KafkaNotifier publishes contact messages so an out-of-process consumer can
// forward them to the site owner.
type KafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier builds an asynchronous writer for topic. Delivery failures
// are reported through log since Async writers do not return them to the caller.
func NewKafkaNotifier(brokers []string, topic string, log zerolog.Logger) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	if topic == "" {
		topic = DefaultContactTopic
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("count", len(messages)).Str("topic", topic).Msg("contact notification delivery failed")
			}
		},
	}
	return &KafkaNotifier{writer: w}, nil
}

func (n *KafkaNotifier) NotifyContact(ctx context.Context, m *domain.ContactMessage) error {
	msg, err := contactMessage(m)
	if err != nil {
		return err
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish contact notification: %w", err)
	}
	return nil
}

// Close flushes pending messages.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func contactMessage(m *domain.ContactMessage) (kafka.Message, error) {
	value, err := json.Marshal(ContactEvent{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Subject:    m.Subject,
		Message:    m.Message,
		ReceivedAt: m.CreatedAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode contact notification: %w", err)
	}
	return kafka.Message{
		Key:   []byte(m.ID),
		Value: value,
		Time:  m.CreatedAt,
	}, nil
}
