package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

const (
	TopicContactMessages = "contact.messages"

	ContactEventTypeSubmitted = "contact.submitted"
)

type ContactMessagePayload struct {
	EventType string    `json:"event_type"`
	MessageID uuid.UUID `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToMessage rebuilds the contact.Message carried by the payload.
func (p ContactMessagePayload) ToMessage() *contact.Message {
	return &contact.Message{
		ID:        p.MessageID,
		Name:      p.Name,
		Email:     p.Email,
		Subject:   p.Subject,
		Message:   p.Message,
		CreatedAt: p.CreatedAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ContactWriter messageWriter
	logger        logger.Logger
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'contact.messages'
	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactMessages,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.")

	return &KafkaProducerClient{ContactWriter: contactWriter, logger: log}, nil
}

func (c *KafkaProducerClient) PublishContactMessage(ctx context.Context, m *contact.Message) error {
	payload := ContactMessagePayload{
		EventType: ContactEventTypeSubmitted,
		MessageID: m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(m.ID.String()),
		Value: value,
	}
	if err := c.ContactWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish contact event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContactWriter != nil {
		if err := c.ContactWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}
