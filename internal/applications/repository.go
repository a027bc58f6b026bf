package applications

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	ListByEvent(ctx context.Context, eventID string, filters ApplicationFilters) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, app *Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Application, error) {
	var app Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByEvent returns the event's applications in submission order.
func (r *repository) ListByEvent(ctx context.Context, eventID string, filters ApplicationFilters) ([]Application, error) {
	query := r.db.WithContext(ctx).Model(&Application{}).Where("event_id = ?", eventID)

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("brand_name ILIKE ? OR zone_category ILIKE ?", pattern, pattern)
	}

	var apps []Application
	if err := query.Order("submitted_at ASC, id ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).Model(&Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
