package plans

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"standplanner/internal/layout"
	"standplanner/internal/notifications"
	"standplanner/internal/shared/config"
	"standplanner/internal/shared/constants"
	"standplanner/pkg/cache"
	"standplanner/pkg/logger"
)

var ErrInvalidPlan = errors.New("invalid plan")

// ExhibitorLookup resolves contact details for stand-assigned events.
type ExhibitorLookup interface {
	ListExhibitors(ctx context.Context, eventID string) ([]layout.Exhibitor, error)
}

type Service interface {
	// LoadPlan returns the stored plan, or a fresh default plan when the
	// event has none yet.
	LoadPlan(ctx context.Context, eventID string) (*layout.EventPlan, error)

	// SavePlan overwrites the stored plan with plan.
	SavePlan(ctx context.Context, plan *layout.EventPlan) (*SaveResult, error)
}

// Defaults shape plans synthesized for events without a stored plan.
type Defaults struct {
	GridWidth         int
	GridHeight        int
	ApplySpotDefaults bool

	// CacheTTL overrides how long loaded plans stay in redis.
	CacheTTL time.Duration
}

func DefaultsFromConfig(cfg config.LayoutConfig) Defaults {
	return Defaults{
		GridWidth:         cfg.DefaultGridWidth,
		GridHeight:        cfg.DefaultGridHeight,
		ApplySpotDefaults: cfg.ApplySpotDefaults,
	}
}

type service struct {
	store      Store
	cache      cache.Service
	publisher  notifications.Publisher
	exhibitors ExhibitorLookup
	defaults   Defaults
	ttl        time.Duration
	now        func() time.Time
}

// NewService wires the plan service. cacheService, publisher and exhibitors
// may be nil.
func NewService(store Store, cacheService cache.Service, publisher notifications.Publisher, exhibitors ExhibitorLookup, defaults Defaults) Service {
	if cacheService == nil {
		cacheService = cache.NewService(nil)
	}
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	ttl := constants.TTL_PLAN
	if defaults.CacheTTL > 0 {
		ttl = defaults.CacheTTL
	}
	return &service{
		store:      store,
		cache:      cacheService,
		publisher:  publisher,
		exhibitors: exhibitors,
		defaults:   defaults,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *service) LoadPlan(ctx context.Context, eventID string) (*layout.EventPlan, error) {
	if err := layout.ValidateEventID(eventID); err != nil {
		return nil, err
	}
	log := logger.GetDefault()

	cacheKey := constants.BuildPlanKey(eventID)
	var cached layout.EventPlan
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		cached.Normalize()
		log.LogPlanLoaded(ctx, eventID, "cache", len(cached.Stands), len(cached.Zones))
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		log.Warn("Plan cache read failed", slog.String("key", cacheKey), slog.Any("error", err))
	}

	plan, err := s.store.Find(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		plan = s.defaultPlan(eventID)
		log.LogPlanLoaded(ctx, eventID, "default", 0, 0)
		return plan, nil
	}
	plan.Normalize()

	log.LogPlanLoaded(ctx, eventID, "store", len(plan.Stands), len(plan.Zones))
	log.LogPlanWarnings(ctx, eventID, issueStrings(layout.Check(plan)))

	if err := s.cache.Set(ctx, cacheKey, plan, s.ttl); err != nil {
		log.Warn("Failed to cache plan", slog.String("key", cacheKey), slog.Any("error", err))
	}
	return plan, nil
}

func (s *service) defaultPlan(eventID string) *layout.EventPlan {
	plan := layout.NewEventPlan(eventID)
	if s.defaults.GridWidth > 0 && s.defaults.GridHeight > 0 {
		plan = layout.NewEventPlanWithGrid(eventID, s.defaults.GridWidth, s.defaults.GridHeight)
	}
	if s.defaults.ApplySpotDefaults {
		plan.ApplySpotDefaults()
	}
	return plan
}

func (s *service) SavePlan(ctx context.Context, plan *layout.EventPlan) (*SaveResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("%w: plan is nil", ErrInvalidPlan)
	}
	if err := layout.ValidateEventID(plan.EventID); err != nil {
		return nil, err
	}
	plan.Normalize()
	log := logger.GetDefault()

	issues := layout.Check(plan)
	for _, issue := range issues {
		if blocksSave(issue.Kind) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPlan, issue)
		}
	}

	previous, err := s.store.Find(ctx, plan.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to read previous plan: %w", err)
	}

	if err := s.store.Upsert(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	if err := s.cache.Delete(ctx, constants.BuildPlanKey(plan.EventID)); err != nil {
		log.Warn("Failed to invalidate plan cache", slog.String("event_id", plan.EventID), slog.Any("error", err))
	}

	assigned := newlyAssigned(previous, plan)
	warnings := issueStrings(issues)
	log.LogPlanSaved(ctx, plan.EventID, len(plan.Stands), len(plan.Zones), len(assigned))
	log.LogPlanWarnings(ctx, plan.EventID, warnings)

	s.publish(ctx, plan, assigned)

	return &SaveResult{
		EventID:       plan.EventID,
		StandCount:    len(plan.Stands),
		ZoneCount:     len(plan.Zones),
		NewlyAssigned: len(assigned),
		Warnings:      warnings,
		SavedAt:       s.now().UTC(),
	}, nil
}

// publish announces the save. The plan is already stored, so failures are
// logged and not returned.
func (s *service) publish(ctx context.Context, plan *layout.EventPlan, assigned []layout.Stand) {
	log := logger.GetDefault()

	if err := s.publisher.PublishPlanSaved(ctx, plan.EventID, len(plan.Stands), len(plan.Zones)); err != nil {
		log.Warn("Failed to publish plan saved event", slog.String("event_id", plan.EventID), slog.Any("error", err))
	}
	if len(assigned) == 0 {
		return
	}

	var exhibitors []layout.Exhibitor
	if s.exhibitors != nil {
		list, err := s.exhibitors.ListExhibitors(ctx, plan.EventID)
		if err != nil {
			log.Warn("Failed to resolve exhibitors for stand events", slog.String("event_id", plan.EventID), slog.Any("error", err))
		}
		exhibitors = list
	}

	for _, stand := range assigned {
		assignment := notifications.StandAssignment{
			StandID:     stand.ID,
			StandSize:   string(stand.Size),
			X:           stand.X,
			Y:           stand.Y,
			ExhibitorID: stand.Occupant(),
		}
		if zone, ok := plan.Zone(stand.ZoneID); ok {
			assignment.ZoneName = zone.Name
		}
		if ex, ok := layout.Occupant(stand, exhibitors); ok {
			assignment.BrandName = ex.BrandName
			assignment.ContactPerson = ex.ContactPerson
			assignment.Email = ex.Email
		}

		log.LogStandAssigned(ctx, plan.EventID, stand.ID, assignment.ExhibitorID)
		if err := s.publisher.PublishStandAssigned(ctx, plan.EventID, assignment); err != nil {
			log.Warn("Failed to publish stand assigned event",
				slog.String("event_id", plan.EventID), slog.String("stand_id", stand.ID), slog.Any("error", err))
		}
	}
}

// newlyAssigned returns the occupied stands of next whose (stand, occupant)
// pair did not exist in previous.
func newlyAssigned(previous, next *layout.EventPlan) []layout.Stand {
	before := make(map[[2]string]bool)
	if previous != nil {
		for _, st := range previous.Stands {
			if st.IsOccupied() {
				before[[2]string{st.ID, *st.OccupantID}] = true
			}
		}
	}

	var out []layout.Stand
	for _, st := range next.Stands {
		if st.IsOccupied() && !before[[2]string{st.ID, *st.OccupantID}] {
			out = append(out, st)
		}
	}
	return out
}

// Duplicated ids or cells would make the stored plan ambiguous.
func blocksSave(kind layout.IssueKind) bool {
	switch kind {
	case layout.IssueDuplicateCell, layout.IssueDuplicateStandID, layout.IssueDuplicateZoneID:
		return true
	}
	return false
}

func issueStrings(issues []layout.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.String())
	}
	return out
}
