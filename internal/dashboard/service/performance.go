package service

import (
	"context"

	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"

	"github.com/shopspring/decimal"
)

// ComputePerformance derives win rate, expectancy and max drawdown.
// Win/loss/neutral counts come from completed orders; R statistics come from the journal in insertion order.
func ComputePerformance(completed []entity.Order, journal []entity.JournalEntry) entity.Performance {
	perf := entity.Performance{
		TotalClosed:    len(completed),
		JournalEntries: len(journal),
	}

	for _, o := range completed {
		if o.Result == nil {
			perf.Neutral++
			continue
		}
		switch *o.Result {
		case entity.ResultWon:
			perf.Wins++
		case entity.ResultLost:
			perf.Losses++
		default:
			perf.Neutral++
		}
	}

	if perf.TotalClosed > 0 {
		perf.WinRate = decimal.NewFromInt(int64(perf.Wins)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(perf.TotalClosed))).
			Round(1).InexactFloat64()
	}

	if len(journal) == 0 {
		return perf
	}

	var (
		sum         = decimal.Zero
		peak        = decimal.Zero
		maxDrawdown = decimal.Zero
	)
	// The curve starts at 0R, so losses from the first trade count as drawdown.
	for _, e := range journal {
		sum = sum.Add(decimal.NewFromFloat(e.RMultiple))
		if sum.GreaterThan(peak) {
			peak = sum
		}
		if dd := peak.Sub(sum); dd.GreaterThan(maxDrawdown) {
			maxDrawdown = dd
		}
	}

	perf.ExpectancyR = sum.Div(decimal.NewFromInt(int64(len(journal)))).Round(3).InexactFloat64()
	perf.MaxDrawdownR = maxDrawdown.Round(3).InexactFloat64()
	return perf
}

// PerformanceService reads the order book and journal to report performance.
type PerformanceService interface {
	Performance(ctx context.Context) entity.Performance
	Journal(ctx context.Context, limit int) []entity.JournalEntry
}

// NewPerformanceService creates a new performance service.
func NewPerformanceService(orderService OrderService, journalRepo repository.TradeJournalRepository) PerformanceService {
	return &performanceService{
		orderService: orderService,
		journalRepo:  journalRepo,
	}
}

type performanceService struct {
	orderService OrderService
	journalRepo  repository.TradeJournalRepository
}

func (s *performanceService) Performance(ctx context.Context) entity.Performance {
	book := s.orderService.Book(ctx)
	return ComputePerformance(book.Completed, s.journalRepo.LoadAll(ctx))
}

// Journal returns the newest limit entries, oldest first. A non-positive limit returns everything.
func (s *performanceService) Journal(ctx context.Context, limit int) []entity.JournalEntry {
	entries := s.journalRepo.LoadAll(ctx)
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}
