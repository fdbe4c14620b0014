package service

import (
	"context"
	"testing"

	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceSummaryByModel(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(repository.NewTokenUsageRepository(newTestDB(t).DB), logger.NewNop())

	for _, u := range []struct {
		model   string
		in, out int64
	}{
		{"gpt-small", 100, 50},
		{"gpt-large", 1000, 400},
		{"gpt-small", 20, 30},
		{"gpt-large", -10, 100},
	} {
		_, err := svc.Record(ctx, u.model, u.in, u.out)
		require.NoError(t, err)
	}

	rows, err := svc.SummaryByModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.TokenUsageByModel{
		{Model: "gpt-large", Tin: 1000, Tout: 500, Total: 1500},
		{Model: "gpt-small", Tin: 120, Tout: 80, Total: 200},
	}, rows)
}

func TestTokenServiceClampsNegativeCounts(t *testing.T) {
	svc := NewTokenService(repository.NewTokenUsageRepository(newTestDB(t).DB), logger.NewNop())

	usage, err := svc.Record(context.Background(), " ", -5, -1)
	require.NoError(t, err)
	assert.Equal(t, "unknown", usage.Model)
	assert.Zero(t, usage.TokensIn)
	assert.Zero(t, usage.TokensOut)
}
