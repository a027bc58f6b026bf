package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the indexes the planner queries rely on
func MigrateConstraints(db *gorm.DB) error {
	// Roster lookups filter applications by event and status
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_applications_event_status
		ON applications (event_id, status);
	`).Error
	if err != nil {
		return err
	}

	// One application per brand per event
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_event_brand
		ON applications (event_id, lower(brand_name));
	`).Error
	if err != nil {
		return err
	}

	return nil
}
