package event

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/internal/domain/contact"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type ContactHandlerFunc func(ctx context.Context, m *contact.Message) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const defaultFetchRetryDelay = time.Second

type ContactConsumer struct {
	reader     messageReader
	logger     logger.Logger
	retryDelay time.Duration
}

func NewContactConsumer(cfg config.Config, log logger.Logger) *ContactConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicContactMessages,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &ContactConsumer{reader: reader, logger: log, retryDelay: defaultFetchRetryDelay}
}

// Run reads until ctx is cancelled or the reader is closed. Every message is
// committed once it has been seen, including ones that fail to decode or to
// handle, so a failed notification is logged and not delivered again.
func (c *ContactConsumer) Run(ctx context.Context, handle ContactHandlerFunc) error {
	c.logger.Info("Worker listening on topic", zap.String("topic", TopicContactMessages))
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.EOF) {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			if !c.pause(ctx) {
				return nil
			}
			continue
		}

		c.logger.Debug("Received message", zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		var payload ContactMessagePayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			c.logger.Error("Failed to unmarshal event. Skipping.", err)
		} else if err := handle(ctx, payload.ToMessage()); err != nil {
			c.logger.Error("Failed to process contact event. Skipping.", err, zap.String("message_id", payload.MessageID.String()))
		}
		c.commit(ctx, msg)
	}
}

// pause waits retryDelay before the next fetch. It reports false when ctx ends first.
func (c *ContactConsumer) pause(ctx context.Context) bool {
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *ContactConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err)
	}
}

func (c *ContactConsumer) Close() error {
	return c.reader.Close()
}
