package database

import (
	"standplanner/internal/applications"
	"standplanner/internal/plans"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&applications.Application{},
		&plans.PlanRecord{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
