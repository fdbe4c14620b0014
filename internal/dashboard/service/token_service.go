package service

import (
	"context"
	"strings"

	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/utils"
)

// TokenService records and aggregates model token consumption.
type TokenService interface {
	Record(ctx context.Context, model string, tokensIn, tokensOut int64) (*entity.TokenUsage, error)
	SummaryByModel(ctx context.Context) ([]entity.TokenUsageByModel, error)
}

// NewTokenService creates a new token service.
func NewTokenService(tokenRepo repository.TokenUsageRepository, log *logger.Logger) TokenService {
	return &tokenService{tokenRepo: tokenRepo, logger: log}
}

type tokenService struct {
	tokenRepo repository.TokenUsageRepository
	logger    *logger.Logger
}

// Record stores one usage row. Negative counts are clamped to zero and a blank model is stored as "unknown".
func (s *tokenService) Record(ctx context.Context, model string, tokensIn, tokensOut int64) (*entity.TokenUsage, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		model = "unknown"
	}
	usage := &entity.TokenUsage{
		Model:     model,
		TokensIn:  max(tokensIn, 0),
		TokensOut: max(tokensOut, 0),
		CreatedAt: utils.TimeNow(),
	}
	if err := s.tokenRepo.Create(ctx, usage); err != nil {
		s.logger.Error("Failed to record token usage", logger.ErrorField(err), logger.StringField("model", model))
		return nil, err
	}
	return usage, nil
}

func (s *tokenService) SummaryByModel(ctx context.Context) ([]entity.TokenUsageByModel, error) {
	rows, err := s.tokenRepo.SummaryByModel(ctx)
	if err != nil {
		s.logger.Error("Failed to summarise token usage", logger.ErrorField(err))
		return nil, err
	}
	return rows, nil
}
