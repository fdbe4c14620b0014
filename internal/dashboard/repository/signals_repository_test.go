package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalsRepositoryMissingOrMalformed(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewNop()

	missing := NewSignalsRepository(filepath.Join(dir, "none.json"), time.Minute, log).Load(context.Background())
	assert.Nil(t, missing.GeneratedAt)
	assert.NotNil(t, missing.TopOpportunities)
	assert.Empty(t, missing.TopOpportunities)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"generated_at": `), 0o644))
	malformed := NewSignalsRepository(bad, time.Minute, log).Load(context.Background())
	assert.Nil(t, malformed.GeneratedAt)
	assert.Empty(t, malformed.Market)
}

func TestSignalsRepositoryReloadsChangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals_latest.json")
	repo := NewSignalsRepository(path, time.Minute, logger.NewNop())

	require.NoError(t, os.WriteFile(path, []byte(`{"generated_at": "2026-03-02T14:00:00Z", "top_opportunities": [{"ticker": "A", "score": 61}]}`), 0o644))
	first := repo.Load(context.Background())
	require.Len(t, first.TopOpportunities, 1)
	assert.Equal(t, 61.0, float64(first.TopOpportunities[0].Score))
	assert.NotNil(t, first.Market)

	require.NoError(t, os.WriteFile(path, []byte(`{"generated_at": "2026-03-02T14:20:00Z", "top_opportunities": [{"ticker": "A", "score": 61}, {"ticker": "B", "score": "72.5"}]}`), 0o644))
	second := repo.Load(context.Background())
	require.Len(t, second.TopOpportunities, 2)
	assert.Equal(t, 72.5, float64(second.TopOpportunities[1].Score))
	assert.Equal(t, "2026-03-02T14:20:00Z", *second.GeneratedAt)
}
