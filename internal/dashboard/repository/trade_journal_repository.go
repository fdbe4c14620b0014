package repository

import (
	"context"

	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
)

// TradeJournalRepository is the append-only record of order closures.
type TradeJournalRepository interface {
	Append(ctx context.Context, entry entity.JournalEntry) error
	LoadAll(ctx context.Context) []entity.JournalEntry
}

type tradeJournalRepository struct {
	entries *cappedLog[entity.JournalEntry]
}

// NewTradeJournalRepository creates a journal that keeps the newest maxEntries entries.
func NewTradeJournalRepository(path string, maxEntries int, log *logger.Logger) TradeJournalRepository {
	return &tradeJournalRepository{entries: newCappedLog[entity.JournalEntry](path, maxEntries, log)}
}

// Append adds entry at the end and then drops the oldest entries beyond the cap.
func (r *tradeJournalRepository) Append(ctx context.Context, entry entity.JournalEntry) error {
	return r.entries.append(entry)
}

// LoadAll returns the journal oldest first.
func (r *tradeJournalRepository) LoadAll(ctx context.Context) []entity.JournalEntry {
	return r.entries.loadAll()
}
