package kafkabus

import (
	"context"
	"time"

	infraconfig "quotation-service/internal/infrastructure/config"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the consuming half of *kafka.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageWriter is the producing half of *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers    []string
	GroupID    string
	Topic      string
	ReplyTopic string
}

// NewReader joins GroupID on Topic. Offsets are committed explicitly once a
// request has been answered.
func NewReader(cfg Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       infraconfig.DefaultKafkaMinBytes,
		MaxBytes:       infraconfig.DefaultKafkaMaxBytes,
		MaxWait:        infraconfig.DefaultKafkaMaxWait,
		StartOffset:    kafka.FirstOffset,
		CommitInterval: 0,
		SessionTimeout: 30 * time.Second,
	})
}

func NewWriter(cfg Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.ReplyTopic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           infraconfig.DefaultReplyTimeout,
	}
}
