package plans

import (
	"context"
	"errors"

	"standplanner/internal/layout"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists whole plans keyed by event id.
type Store interface {
	// Find returns nil, nil when the event has no stored plan.
	Find(ctx context.Context, eventID string) (*layout.EventPlan, error)
	Upsert(ctx context.Context, plan *layout.EventPlan) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Store {
	return &repository{db: db}
}

func (r *repository) Find(ctx context.Context, eventID string) (*layout.EventPlan, error) {
	var record PlanRecord
	err := r.db.WithContext(ctx).First(&record, "event_id = ?", eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Plan()
}

// Upsert overwrites the stored document. Concurrent saves resolve to the
// last writer.
func (r *repository) Upsert(ctx context.Context, plan *layout.EventPlan) error {
	record, err := NewPlanRecord(plan)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "stand_count", "zone_count", "updated_at"}),
	}).Create(record).Error
}
