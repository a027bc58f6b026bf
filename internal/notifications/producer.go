package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"standplanner/pkg/logger"

	"github.com/IBM/sarama"
)

// Publisher announces saved plans and new stand assignments.
type Publisher interface {
	PublishPlanSaved(ctx context.Context, eventID string, stands, zones int) error
	PublishStandAssigned(ctx context.Context, eventID string, assignment StandAssignment) error
	Close() error
}

// KafkaProducerConfig contains configuration for the plan-events producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "plan-events",
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000,
	}
}

// KafkaPublisher writes plan events to Kafka, keyed by event id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(config *KafkaProducerConfig) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash on the event id so a plan's events stay ordered.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.GetDefault().Info("Kafka plan-events producer created", slog.String("topic", config.Topic))
	return NewKafkaPublisherWithProducer(producer, config.Topic), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (kp *KafkaPublisher) PublishPlanSaved(ctx context.Context, eventID string, stands, zones int) error {
	return kp.publish(ctx, NewPlanSavedEvent(eventID, stands, zones))
}

func (kp *KafkaPublisher) PublishStandAssigned(ctx context.Context, eventID string, assignment StandAssignment) error {
	return kp.publish(ctx, NewStandAssignedEvent(eventID, assignment))
}

func (kp *KafkaPublisher) publish(ctx context.Context, event *PlanEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal plan event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   createHeaders(event),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send plan event to Kafka: %w", err)
	}

	logger.GetDefault().DebugContext(ctx, "Plan event published",
		slog.String("topic", kp.topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		slog.String("type", string(event.Type)),
		slog.String("event_id", event.EventID),
	)
	return nil
}

func createHeaders(event *PlanEvent) []sarama.RecordHeader {
	headers := []sarama.RecordHeader{
		{Key: []byte("message_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("event_id"), Value: []byte(event.EventID)},
		{Key: []byte("producer"), Value: []byte("standplanner")},
		{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
	}
	if event.StandID != "" {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte("stand_id"),
			Value: []byte(event.StandID),
		})
	}
	return headers
}

func (kp *KafkaPublisher) Close() error {
	if kp.producer == nil {
		return nil
	}
	if err := kp.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	logger.GetDefault().Info("Kafka plan-events producer closed")
	return nil
}

// NoopPublisher drops events. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishPlanSaved(ctx context.Context, eventID string, stands, zones int) error {
	logger.GetDefault().DebugContext(ctx, "Plan events disabled, dropping PLAN_SAVED", slog.String("event_id", eventID))
	return nil
}

func (NoopPublisher) PublishStandAssigned(ctx context.Context, eventID string, assignment StandAssignment) error {
	logger.GetDefault().DebugContext(ctx, "Plan events disabled, dropping STAND_ASSIGNED",
		slog.String("event_id", eventID), slog.String("stand_id", assignment.StandID))
	return nil
}

func (NoopPublisher) Close() error { return nil }
