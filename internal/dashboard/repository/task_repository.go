package repository

import (
	"context"
	"errors"
	"time"

	"agent-ops-dashboard/internal/entity"

	"gorm.io/gorm"
)

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	FindOpenByFingerprint(ctx context.Context, fingerprint string) (*entity.Task, error)
	FindByTaskID(ctx context.Context, taskID string) (*entity.Task, error)
	UpdateStatus(ctx context.Context, taskID string, status entity.TaskStatus, ts time.Time) (bool, error)
	FindRecent(ctx context.Context, limit int) ([]entity.Task, error)
	CountByStatus(ctx context.Context) ([]entity.TaskStatusCount, error)
}

// NewTaskRepository creates a new GORM-based task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

type taskRepository struct {
	db *gorm.DB
}

// Create inserts a new task.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindOpenByFingerprint returns the pending or running task carrying fingerprint, or nil.
func (r *taskRepository) FindOpenByFingerprint(ctx context.Context, fingerprint string) (*entity.Task, error) {
	var task entity.Task
	err := r.db.WithContext(ctx).
		Where("fingerprint = ? AND status IN ?", fingerprint, []string{string(entity.TaskStatusPending), string(entity.TaskStatusRunning)}).
		Order("id ASC").
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByTaskID retrieves a task by its public id.
func (r *taskRepository) FindByTaskID(ctx context.Context, taskID string) (*entity.Task, error) {
	var task entity.Task
	if err := r.db.WithContext(ctx).Where("task_id = ?", taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus sets status and updated_at. It reports whether a row was touched.
func (r *taskRepository) UpdateStatus(ctx context.Context, taskID string, status entity.TaskStatus, ts time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("task_id = ?", taskID).
		Updates(map[string]interface{}{"status": status, "updated_at": ts})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindRecent returns up to limit tasks, most recently updated first.
func (r *taskRepository) FindRecent(ctx context.Context, limit int) ([]entity.Task, error) {
	var tasks []entity.Task
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Order("id DESC").Limit(limit).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByStatus groups tasks by status, largest group first.
func (r *taskRepository) CountByStatus(ctx context.Context) ([]entity.TaskStatusCount, error) {
	var rows []entity.TaskStatusCount
	err := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
