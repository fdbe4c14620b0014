package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"agent-ops-dashboard/internal/dashboard/repository"
	"agent-ops-dashboard/internal/entity"
	"agent-ops-dashboard/pkg/logger"
	"agent-ops-dashboard/pkg/telegram"
	"agent-ops-dashboard/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when no pending order carries the requested id.
var ErrOrderNotFound = errors.New("order not found")

var (
	targetMultiplier = decimal.RequireFromString("1.06")
	stopMultiplier   = decimal.RequireFromString("0.97")
)

const pricePlaces = 4

// OrderService owns the simulated order book.
type OrderService interface {
	OpenPending(ctx context.Context, ticker string, score float64, state string, entryPrice *float64) (bool, error)
	AutoCloseFromMarket(ctx context.Context, snapshot entity.SignalsSnapshot) (int, error)
	CompleteManually(ctx context.Context, orderID string, result string) (*entity.Order, error)
	Book(ctx context.Context) entity.OrderBook
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderBookRepository,
	journalRepo repository.TradeJournalRepository,
	eventRepo repository.EventRepository,
	notifier telegram.Notifier,
	log *logger.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		journalRepo: journalRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		logger:      log,
		now:         utils.TimeNow,
	}
}

type orderService struct {
	// mu serialises load-mutate-save cycles within this process. Other processes writing
	// the same file can still race; the last writer wins.
	mu          sync.Mutex
	orderRepo   repository.OrderBookRepository
	journalRepo repository.TradeJournalRepository
	eventRepo   repository.EventRepository
	notifier    telegram.Notifier
	logger      *logger.Logger
	now         func() time.Time
}

// TargetAndStop returns entry*1.06 and entry*0.97 rounded to four decimals, or nils when entry is unusable.
func TargetAndStop(entryPrice *float64) (*float64, *float64) {
	if entryPrice == nil || !usablePrice(*entryPrice) {
		return nil, nil
	}
	entry := decimal.NewFromFloat(*entryPrice)
	target, _ := entry.Mul(targetMultiplier).Round(pricePlaces).Float64()
	stop, _ := entry.Mul(stopMultiplier).Round(pricePlaces).Float64()
	return &target, &stop
}

func usablePrice(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// OpenPending opens a pending order for ticker unless one is already pending.
func (s *orderService) OpenPending(ctx context.Context, ticker string, score float64, state string, entryPrice *float64) (bool, error) {
	ticker = normalizeTicker(ticker)
	if ticker == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.orderRepo.Load(ctx)
	for _, o := range book.Pending {
		if o.Ticker == ticker {
			s.logger.Debug("Order already pending", logger.StringField("ticker", ticker), logger.StringField("order_id", o.ID))
			return false, nil
		}
	}

	var entry *float64
	if entryPrice != nil && usablePrice(*entryPrice) {
		entry = utils.ToPointer(*entryPrice)
	}
	target, stop := TargetAndStop(entry)

	order := entity.Order{
		ID:          uuid.NewString(),
		Ticker:      ticker,
		Status:      entity.OrderStatusPending,
		State:       state,
		Score:       score,
		EntryPrice:  entry,
		TargetPrice: target,
		StopPrice:   stop,
		CreatedAt:   s.now(),
	}
	book.Pending = append(book.Pending, order)

	if err := s.orderRepo.Save(ctx, book); err != nil {
		s.logger.Error("Failed to save order book", logger.ErrorField(err), logger.StringField("ticker", ticker))
		return false, err
	}

	s.logger.Info("Pending order opened",
		logger.StringField("order_id", order.ID),
		logger.StringField("ticker", ticker),
		logger.Field("entry_price", order.EntryPrice),
		logger.Field("target_price", order.TargetPrice),
		logger.Field("stop_price", order.StopPrice))
	return true, nil
}

// AutoCloseFromMarket closes every pending order whose market price crossed its target or stop.
// The target check runs first.
func (s *orderService) AutoCloseFromMarket(ctx context.Context, snapshot entity.SignalsSnapshot) (int, error) {
	prices := marketPrices(snapshot)
	if len(prices) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.orderRepo.Load(ctx)
	now := s.now()

	var (
		stillPending = make([]entity.Order, 0, len(book.Pending))
		closed       []entity.Order
	)
	for _, o := range book.Pending {
		price, ok := prices[o.Ticker]
		if !ok || o.TargetPrice == nil || o.StopPrice == nil {
			stillPending = append(stillPending, o)
			continue
		}

		var result entity.OrderResult
		switch {
		case price >= *o.TargetPrice:
			result = entity.ResultWon
		case price <= *o.StopPrice:
			result = entity.ResultLost
		default:
			stillPending = append(stillPending, o)
			continue
		}

		closed = append(closed, closeOrder(o, result, now, utils.ToPointer(price)))
	}

	if len(closed) == 0 {
		return 0, nil
	}

	book.Pending = stillPending
	book.Completed = append(book.Completed, closed...)
	if err := s.orderRepo.Save(ctx, book); err != nil {
		s.logger.Error("Failed to save order book", logger.ErrorField(err))
		return 0, err
	}

	var journalErr error
	for _, o := range closed {
		if err := s.recordClosure(ctx, o); err != nil {
			journalErr = err
		}
	}

	s.logger.Info("Orders closed from market", logger.IntField("closed", len(closed)))
	return len(closed), journalErr
}

// CompleteManually closes the pending order orderID with the given result label.
func (s *orderService) CompleteManually(ctx context.Context, orderID string, result string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.orderRepo.Load(ctx)
	idx := -1
	for i, o := range book.Pending {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrOrderNotFound
	}

	order := closeOrder(book.Pending[idx], entity.NormalizeResult(strings.ToLower(strings.TrimSpace(result))), s.now(), nil)
	book.Pending = append(book.Pending[:idx:idx], book.Pending[idx+1:]...)
	book.Completed = append(book.Completed, order)

	if err := s.orderRepo.Save(ctx, book); err != nil {
		s.logger.Error("Failed to save order book", logger.ErrorField(err), logger.StringField("order_id", orderID))
		return nil, err
	}
	if err := s.recordClosure(ctx, order); err != nil {
		return &order, err
	}

	s.logger.Info("Order completed manually", logger.StringField("order_id", orderID), logger.StringField("result", string(*order.Result)))
	return &order, nil
}

// Book returns the current order book.
func (s *orderService) Book(ctx context.Context) entity.OrderBook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderRepo.Load(ctx)
}

// recordClosure writes the journal entry and fans the closure out. Only the journal write can fail the call.
func (s *orderService) recordClosure(ctx context.Context, o entity.Order) error {
	entry := entity.JournalEntry{
		Ts:        *o.ClosedAt,
		OrderID:   o.ID,
		Ticker:    o.Ticker,
		State:     o.State,
		Score:     o.Score,
		Result:    *o.Result,
		RMultiple: o.Result.RMultiple(),
	}
	if err := s.journalRepo.Append(ctx, entry); err != nil {
		s.logger.Error("Failed to append trade journal", logger.ErrorField(err), logger.StringField("order_id", o.ID))
		return fmt.Errorf("failed to append trade journal: %w", err)
	}

	if err := s.eventRepo.PublishOrderClosed(ctx, o); err != nil {
		s.logger.Warn("Failed to publish order closed event", logger.ErrorField(err), logger.StringField("order_id", o.ID))
	}
	if err := s.notifier.SendMessage(telegram.FormatOrderClosedForTelegram(o)); err != nil {
		s.logger.Warn("Failed to send order closed notification", logger.ErrorField(err), logger.StringField("order_id", o.ID))
	}
	return nil
}

func closeOrder(o entity.Order, result entity.OrderResult, closedAt time.Time, closePrice *float64) entity.Order {
	o.Status = entity.OrderStatusCompleted
	o.ClosedAt = &closedAt
	o.ClosePrice = closePrice
	o.Result = &result
	return o
}

// marketPrices maps ticker to price from the snapshot's market section; rows without a usable price are skipped.
func marketPrices(snapshot entity.SignalsSnapshot) map[string]float64 {
	prices := make(map[string]float64, len(snapshot.Market))
	for _, q := range snapshot.Market {
		ticker := normalizeTicker(q.Ticker)
		if ticker == "" {
			continue
		}
		if price, ok := q.Price(); ok {
			prices[ticker] = price
		}
	}
	return prices
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
