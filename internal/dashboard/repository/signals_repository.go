package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"

	"github.com/patrickmn/go-cache"
)

// SignalsRepository reads the latest signals snapshot produced by the external refresh job.
type SignalsRepository interface {
	Load(ctx context.Context) entity.SignalsSnapshot
}

type signalsRepository struct {
	path  string
	cache *cache.Cache
	log   *logger.Logger
}

// NewSignalsRepository creates a snapshot reader. Parsed snapshots are cached for ttl and
// invalidated as soon as the file's size or modification time changes.
func NewSignalsRepository(path string, ttl time.Duration, log *logger.Logger) SignalsRepository {
	return &signalsRepository{
		path:  path,
		cache: cache.New(ttl, 2*ttl),
		log:   log,
	}
}

// Load never fails: a missing or malformed snapshot yields entity.EmptySnapshot.
func (r *signalsRepository) Load(ctx context.Context) entity.SignalsSnapshot {
	info, err := os.Stat(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.log.Warn("Failed to stat signals snapshot", logger.ErrorField(err), logger.StringField("path", r.path))
		}
		return entity.EmptySnapshot()
	}

	key := fmt.Sprintf("%s:%d:%d", r.path, info.ModTime().UnixNano(), info.Size())
	if cached, ok := r.cache.Get(key); ok {
		return cached.(entity.SignalsSnapshot)
	}

	snapshot := entity.EmptySnapshot()
	if err := readJSON(r.path, &snapshot); err != nil {
		r.log.Warn("Malformed signals snapshot, using empty default", logger.ErrorField(err), logger.StringField("path", r.path))
		return entity.EmptySnapshot()
	}
	if snapshot.TopOpportunities == nil {
		snapshot.TopOpportunities = []entity.Opportunity{}
	}
	if snapshot.Market == nil {
		snapshot.Market = []entity.MarketQuote{}
	}

	r.cache.Flush()
	r.cache.SetDefault(key, snapshot)
	return snapshot
}
