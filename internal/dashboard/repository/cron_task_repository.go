package repository

import (
	"context"
	"time"

	"agent-ops-dashboard/internal/entity"

	"gorm.io/gorm"
)

// CronTaskRepository defines the interface for cron task data operations.
type CronTaskRepository interface {
	Create(ctx context.Context, cronTask *entity.CronTask) error
	FindByID(ctx context.Context, id uint) (*entity.CronTask, error)
	FindAll(ctx context.Context) ([]entity.CronTask, error)
	Update(ctx context.Context, cronTask *entity.CronTask) error
	FindDue(ctx context.Context, now time.Time) ([]entity.CronTask, error)
}

// NewCronTaskRepository creates a new GORM-based cron task repository.
func NewCronTaskRepository(db *gorm.DB) CronTaskRepository {
	return &cronTaskRepository{db: db}
}

type cronTaskRepository struct {
	db *gorm.DB
}

// Create creates a new cron task.
func (r *cronTaskRepository) Create(ctx context.Context, cronTask *entity.CronTask) error {
	return r.db.WithContext(ctx).Create(cronTask).Error
}

// FindByID retrieves a cron task by its ID.
func (r *cronTaskRepository) FindByID(ctx context.Context, id uint) (*entity.CronTask, error) {
	var cronTask entity.CronTask
	if err := r.db.WithContext(ctx).First(&cronTask, id).Error; err != nil {
		return nil, err
	}
	return &cronTask, nil
}

// FindAll retrieves all cron tasks ordered by name.
func (r *cronTaskRepository) FindAll(ctx context.Context) ([]entity.CronTask, error) {
	var cronTasks []entity.CronTask
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&cronTasks).Error; err != nil {
		return nil, err
	}
	return cronTasks, nil
}

// Update saves every column of the cron task.
func (r *cronTaskRepository) Update(ctx context.Context, cronTask *entity.CronTask) error {
	return r.db.WithContext(ctx).Save(cronTask).Error
}

// FindDue finds active cron tasks whose next execution is unset or already past.
func (r *cronTaskRepository) FindDue(ctx context.Context, now time.Time) ([]entity.CronTask, error) {
	var cronTasks []entity.CronTask
	err := r.db.WithContext(ctx).
		Where("active = ? AND (next_execution IS NULL OR next_execution <= ?)", true, now).
		Order("id ASC").
		Find(&cronTasks).Error
	if err != nil {
		return nil, err
	}
	return cronTasks, nil
}
