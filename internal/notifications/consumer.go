package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"standplanner/pkg/logger"

	"github.com/IBM/sarama"
)

type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topics               []string
	SessionTimeout       time.Duration
	Heartbeat            time.Duration
	MaxProcessingTime    time.Duration
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
	FromName             string
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              []string{"localhost:9092"},
		GroupID:              "standplanner-notification-workers",
		Topics:               []string{"plan-events"},
		SessionTimeout:       30 * time.Second,
		Heartbeat:            3 * time.Second,
		MaxProcessingTime:    5 * time.Minute,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
		FromName:             "Standplanner",
	}
}

// Worker consumes plan events and mails exhibitors about their stands.
type Worker struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	mailer        Mailer
	wg            sync.WaitGroup
}

func NewWorker(config *ConsumerConfig, mailer Mailer) (*Worker, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.Heartbeat
	saramaConfig.Consumer.MaxProcessingTime = config.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Worker{consumerGroup: consumerGroup, config: config, mailer: mailer}, nil
}

// Start runs numWorkers consume loops until ctx is cancelled.
func (w *Worker) Start(ctx context.Context, numWorkers int) {
	logger.GetDefault().Info("Starting plan-event workers",
		slog.Int("workers", numWorkers), slog.Any("topics", w.config.Topics))

	go w.handleErrors()

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go func(workerID int) {
			defer w.wg.Done()
			w.run(ctx, workerID)
		}(i)
	}
}

func (w *Worker) run(ctx context.Context, workerID int) {
	handler := &ConsumerGroupHandler{
		workerID: workerID,
		mailer:   w.mailer,
		config:   w.config,
	}

	for {
		if err := w.consumerGroup.Consume(ctx, w.config.Topics, handler); err != nil {
			logger.GetDefault().Warn("Error consuming plan events",
				slog.Int("worker", workerID), slog.Any("error", err))
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (w *Worker) handleErrors() {
	for err := range w.consumerGroup.Errors() {
		logger.GetDefault().Warn("Consumer group error", slog.Any("error", err))
	}
}

// Stop waits for the consume loops (their context must already be
// cancelled) and closes the group.
func (w *Worker) Stop() error {
	w.wg.Wait()
	if err := w.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	logger.GetDefault().Info("Plan-event workers stopped")
	return nil
}

type ConsumerGroupHandler struct {
	workerID int
	mailer   Mailer
	config   *ConsumerConfig
}

func (h *ConsumerGroupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *ConsumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *ConsumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.processMessage(session.Context(), message); err != nil {
				logger.GetDefault().Warn("Error processing plan event",
					slog.Int("worker", h.workerID),
					slog.Int64("offset", message.Offset),
					slog.Any("error", err))
				continue
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *ConsumerGroupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event PlanEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal plan event: %w", err)
	}

	switch event.Type {
	case EventTypePlanSaved:
		logger.GetDefault().InfoContext(ctx, "Plan saved",
			slog.String("event_id", event.EventID),
			slog.Int("stands", event.StandCount),
			slog.Int("zones", event.ZoneCount))
		return nil
	case EventTypeStandAssigned:
		notification := BuildStandAssignedEmail(&event, h.config.FromName)
		if notification == nil {
			logger.GetDefault().InfoContext(ctx, "No email on file, skipping stand notification",
				slog.String("event_id", event.EventID), slog.String("exhibitor_id", event.ExhibitorID))
			return nil
		}
		notification.Status = NotificationStatusSending
		if err := h.executeWithRetry(ctx, notification); err != nil {
			notification.MarkFailed(err)
			return err
		}
		notification.MarkSent()
		return nil
	default:
		logger.GetDefault().Debug("Ignoring unknown plan event", slog.String("type", string(event.Type)))
		return nil
	}
}

func (h *ConsumerGroupHandler) executeWithRetry(ctx context.Context, notification *EmailNotification) error {
	maxRetries := h.config.MaxRetries
	backoff := h.config.RetryBackoffDuration

	for attempt := 0; ; attempt++ {
		err := h.mailer.Send(ctx, notification)
		if err == nil {
			return nil
		}
		if attempt == maxRetries {
			return fmt.Errorf("giving up after %d attempts: %w", attempt+1, err)
		}

		notification.RetryCount++
		delay := backoff * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
