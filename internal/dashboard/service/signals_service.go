package service

import (
	"context"
	"math"
	"time"

	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/utils"
)

// SnapshotView is a snapshot together with its computed staleness.
type SnapshotView struct {
	Snapshot     entity.SignalsSnapshot
	FreshnessMin *int
	Stale        bool
}

// SignalsService exposes the latest signals snapshot.
type SignalsService interface {
	Latest(ctx context.Context) SnapshotView
}

// NewSignalsService creates a signals service; staleAfter is the freshness window in minutes.
func NewSignalsService(signalsRepo repository.SignalsRepository, staleAfter int) SignalsService {
	return &signalsService{
		signalsRepo: signalsRepo,
		staleAfter:  staleAfter,
		now:         utils.TimeNow,
	}
}

type signalsService struct {
	signalsRepo repository.SignalsRepository
	staleAfter  int
	now         func() time.Time
}

func (s *signalsService) Latest(ctx context.Context) SnapshotView {
	snapshot := s.signalsRepo.Load(ctx)
	freshness := FreshnessMinutes(snapshot, s.now())
	return SnapshotView{
		Snapshot:     snapshot,
		FreshnessMin: freshness,
		Stale:        IsStale(freshness, s.staleAfter),
	}
}

// FreshnessMinutes is the whole number of minutes elapsed since generated_at, floored.
// It is nil when the timestamp is absent or unparsable.
func FreshnessMinutes(snapshot entity.SignalsSnapshot, now time.Time) *int {
	generated, ok := snapshot.GeneratedTime()
	if !ok {
		return nil
	}
	minutes := int(math.Floor(now.Sub(generated).Minutes()))
	return &minutes
}

// IsStale reports whether a snapshot of the given freshness is too old to act on.
func IsStale(freshnessMin *int, staleAfter int) bool {
	return freshnessMin == nil || *freshnessMin > staleAfter
}
