package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestIsStale(t *testing.T) {
	assert.True(t, IsStale(intPtr(25), 20))
	assert.False(t, IsStale(intPtr(10), 20))
	assert.False(t, IsStale(intPtr(20), 20))
	assert.True(t, IsStale(nil, 20))
}

func TestFreshnessMinutes(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		generatedAt *string
		want        *int
	}{
		{name: "rfc3339", generatedAt: strPtr("2026-03-02T14:35:00Z"), want: intPtr(25)},
		{name: "floors partial minutes", generatedAt: strPtr("2026-03-02T14:49:31+00:00"), want: intPtr(10)},
		{name: "naive timestamp is utc", generatedAt: strPtr("2026-03-02T14:50:00.123456"), want: intPtr(9)},
		{name: "offset timestamp", generatedAt: strPtr("2026-03-02T16:45:00+02:00"), want: intPtr(15)},
		{name: "missing", generatedAt: nil, want: nil},
		{name: "unparsable", generatedAt: strPtr("yesterday"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreshnessMinutes(entity.SignalsSnapshot{GeneratedAt: tt.generatedAt}, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignalsServiceLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals_latest.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"generated_at": "2026-03-02T14:45:00Z",
		"top_opportunities": [{"ticker": "XYZ", "score": 65, "state": "READY", "regularMarketPrice": 50}],
		"market": []
	}`), 0o644))

	svc := NewSignalsService(repository.NewSignalsRepository(path, time.Minute, logger.NewNop()), 20).(*signalsService)
	svc.now = fixedClock(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC))

	view := svc.Latest(context.Background())
	assert.Equal(t, intPtr(15), view.FreshnessMin)
	assert.False(t, view.Stale)
	require.Len(t, view.Snapshot.TopOpportunities, 1)
}

func TestSignalsServiceMissingSnapshotIsStale(t *testing.T) {
	svc := NewSignalsService(repository.NewSignalsRepository(filepath.Join(t.TempDir(), "none.json"), time.Minute, logger.NewNop()), 20)

	view := svc.Latest(context.Background())
	assert.Nil(t, view.FreshnessMin)
	assert.True(t, view.Stale)
	assert.Empty(t, view.Snapshot.TopOpportunities)
}

func strPtr(s string) *string {
	return &s
}
