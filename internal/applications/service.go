package applications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"standplanner/internal/layout"
	"standplanner/internal/shared/constants"
	"standplanner/pkg/cache"
	"standplanner/pkg/logger"

	"github.com/google/uuid"
)

var ErrApplicationNotFound = errors.New("application not found")

type Service interface {
	CreateApplication(ctx context.Context, eventID string, req CreateApplicationRequest) (*Application, error)
	ListApplications(ctx context.Context, eventID string, filters ApplicationFilters) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Application, error)

	// ListExhibitors feeds the floor-plan roster with every application of
	// the event, whatever its status.
	ListExhibitors(ctx context.Context, eventID string) ([]layout.Exhibitor, error)
}

type service struct {
	repo  Repository
	cache cache.Service
	ttl   time.Duration
	now   func() time.Time
}

type Option func(*service)

// WithCacheTTL sets how long an event's exhibitor list stays cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewService(repo Repository, cacheService cache.Service, opts ...Option) Service {
	if cacheService == nil {
		cacheService = cache.NewService(nil)
	}
	s := &service{
		repo:  repo,
		cache: cacheService,
		ttl:   constants.TTL_APPLICATIONS,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateApplication(ctx context.Context, eventID string, req CreateApplicationRequest) (*Application, error) {
	if err := layout.ValidateEventID(eventID); err != nil {
		return nil, err
	}
	size, err := layout.ParseSpotSize(req.RequestedSize)
	if err != nil {
		return nil, err
	}
	category := layout.ZoneCategory("")
	if req.ZoneCategory != "" {
		if category, err = layout.ParseZoneCategory(req.ZoneCategory); err != nil {
			return nil, err
		}
	}

	app := &Application{
		ID:            "app-" + uuid.NewString(),
		EventID:       eventID,
		BrandName:     strings.TrimSpace(req.BrandName),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Phone:         req.Phone,
		Email:         req.Email,
		Description:   req.Description,
		RequestedSize: size,
		ZoneCategory:  category,
		Status:        layout.AppStatusPending,
		SubmittedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.invalidate(ctx, eventID)
	return app, nil
}

func (s *service) ListApplications(ctx context.Context, eventID string, filters ApplicationFilters) ([]Application, error) {
	if err := layout.ValidateEventID(eventID); err != nil {
		return nil, err
	}
	apps, err := s.repo.ListByEvent(ctx, eventID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// UpdateStatus is the hook curation and billing use to make an application
// placeable (APPROVED, PAID) or withdraw it.
func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Application, error) {
	status, err := layout.ParseAppStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, string(status)); err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, app.EventID)
	return app, nil
}

func (s *service) ListExhibitors(ctx context.Context, eventID string) ([]layout.Exhibitor, error) {
	if err := layout.ValidateEventID(eventID); err != nil {
		return nil, err
	}

	cacheKey := constants.BuildApplicationsKey(eventID)
	var cached []layout.Exhibitor
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.GetDefault().Warn("Application cache read failed", slog.String("key", cacheKey), slog.Any("error", err))
	}

	apps, err := s.repo.ListByEvent(ctx, eventID, ApplicationFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load exhibitors: %w", err)
	}
	exhibitors := make([]layout.Exhibitor, 0, len(apps))
	for _, app := range apps {
		exhibitors = append(exhibitors, app.ToExhibitor())
	}

	if err := s.cache.Set(ctx, cacheKey, exhibitors, s.ttl); err != nil {
		logger.GetDefault().Warn("Failed to cache exhibitors", slog.String("key", cacheKey), slog.Any("error", err))
	}
	return exhibitors, nil
}

func (s *service) invalidate(ctx context.Context, eventID string) {
	if err := s.cache.Delete(ctx, constants.BuildApplicationsKey(eventID)); err != nil {
		logger.GetDefault().Warn("Failed to invalidate application cache",
			slog.String("event_id", eventID), slog.Any("error", err))
	}
}
