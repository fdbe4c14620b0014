package repository

import (
	"agent-ops-dashboard/internal/entity"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the relational tables. Used for sqlite; postgres goes through cmd/migrate.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Task{}, &entity.TokenUsage{}, &entity.CronTask{})
}
