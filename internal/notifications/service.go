package notifications

import (
	"context"
	"errors"
	"log/slog"

	"standplanner/internal/shared/config"
	"standplanner/pkg/logger"
)

// Service owns the publisher the plans service writes to and, when Kafka is
// enabled, the worker that mails exhibitors.
type Service struct {
	publisher Publisher
	worker    *Worker
	workers   int
	cancel    context.CancelFunc
}

func NewService(cfg *config.Config) (*Service, error) {
	if !cfg.Kafka.Enabled {
		logger.GetDefault().Info("Kafka disabled, plan events will not be published")
		return &Service{publisher: NoopPublisher{}}, nil
	}

	producerConfig := DefaultKafkaProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.Topic = cfg.Kafka.PlanEventsTopic

	publisher, err := NewKafkaPublisher(producerConfig)
	if err != nil {
		return nil, err
	}

	mailer, err := newMailer(cfg)
	if err != nil {
		_ = publisher.Close()
		return nil, err
	}

	consumerConfig := DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.Topics = []string{cfg.Kafka.PlanEventsTopic}
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroupID
	consumerConfig.FromName = cfg.Email.FromName

	worker, err := NewWorker(consumerConfig, mailer)
	if err != nil {
		_ = publisher.Close()
		return nil, err
	}

	return &Service{publisher: publisher, worker: worker, workers: cfg.Kafka.NumWorkers}, nil
}

func newMailer(cfg *config.Config) (Mailer, error) {
	if !cfg.MailerEnabled() {
		logger.GetDefault().Warn("SMTP not configured, using mock mailer")
		return NewMockMailer(), nil
	}
	mailer, err := NewSMTPMailer(NewSMTPConfig(cfg.Email))
	if err != nil {
		return nil, err
	}
	logger.GetDefault().Info("SMTP mailer configured",
		slog.String("host", cfg.Email.SMTPHost), slog.Int("port", cfg.Email.SMTPPort))
	return mailer, nil
}

func (s *Service) Publisher() Publisher {
	return s.publisher
}

// Start launches the workers, if any.
func (s *Service) Start(ctx context.Context) {
	if s.worker == nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.worker.Start(ctx, s.workers)
}

func (s *Service) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	var errs []error
	if s.worker != nil {
		if err := s.worker.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.publisher.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
