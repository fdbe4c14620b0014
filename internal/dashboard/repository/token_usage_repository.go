package repository

import (
	"context"

	"agent-ops-dashboard/internal/entity"

	"gorm.io/gorm"
)

// TokenUsageRepository defines the interface for token accounting.
type TokenUsageRepository interface {
	Create(ctx context.Context, usage *entity.TokenUsage) error
	SummaryByModel(ctx context.Context) ([]entity.TokenUsageByModel, error)
}

// NewTokenUsageRepository creates a new GORM-based token usage repository.
func NewTokenUsageRepository(db *gorm.DB) TokenUsageRepository {
	return &tokenUsageRepository{db: db}
}

type tokenUsageRepository struct {
	db *gorm.DB
}

func (r *tokenUsageRepository) Create(ctx context.Context, usage *entity.TokenUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

// SummaryByModel sums usage per model, heaviest model first.
func (r *tokenUsageRepository) SummaryByModel(ctx context.Context) ([]entity.TokenUsageByModel, error) {
	var rows []entity.TokenUsageByModel
	err := r.db.WithContext(ctx).
		Model(&entity.TokenUsage{}).
		Select("model, CAST(SUM(tokens_in) AS BIGINT) AS tin, CAST(SUM(tokens_out) AS BIGINT) AS tout, CAST(SUM(tokens_in + tokens_out) AS BIGINT) AS total").
		Group("model").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
