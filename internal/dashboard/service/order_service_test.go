package service

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"agent-ops-dashboard/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketSnapshot(prices map[string]string) entity.SignalsSnapshot {
	snapshot := entity.EmptySnapshot()
	for ticker, price := range prices {
		snapshot.Market = append(snapshot.Market, entity.MarketQuote{
			Ticker: ticker,
			Quote:  entity.Quote{RegularMarketPrice: json.RawMessage(price)},
		})
	}
	return snapshot
}

func TestTargetAndStop(t *testing.T) {
	target, stop := TargetAndStop(ptr(100))
	require.NotNil(t, target)
	require.NotNil(t, stop)
	assert.Equal(t, 106.0, *target)
	assert.Equal(t, 97.0, *stop)

	target, stop = TargetAndStop(ptr(50))
	assert.Equal(t, 53.0, *target)
	assert.Equal(t, 48.5, *stop)

	target, stop = TargetAndStop(ptr(12.3457))
	assert.Equal(t, 13.0864, *target)
	assert.Equal(t, 11.9753, *stop)
}

func TestTargetAndStopMissingEntry(t *testing.T) {
	for _, entry := range []*float64{nil, ptr(0), ptr(-5), ptr(math.Inf(1)), ptr(math.NaN())} {
		target, stop := TargetAndStop(entry)
		assert.Nil(t, target)
		assert.Nil(t, stop)
	}
}

func TestOpenPendingIgnoresNonFiniteEntry(t *testing.T) {
	f := newOrderFixture(t)

	var created bool
	require.NotPanics(t, func() {
		var err error
		created, err = f.service.OpenPending(context.Background(), "inf", 90, "READY", ptr(math.Inf(1)))
		require.NoError(t, err)
	})
	assert.True(t, created)

	pending := f.service.Book(context.Background()).Pending
	require.Len(t, pending, 1)
	assert.Nil(t, pending[0].EntryPrice)
	assert.Nil(t, pending[0].TargetPrice)
	assert.Nil(t, pending[0].StopPrice)
}

func TestOpenPendingRejectsSecondOrderForTicker(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	created, err := f.service.OpenPending(ctx, "AAPL", 70, "READY", ptr(150))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = f.service.OpenPending(ctx, "aapl ", 80, "TRIGGERED", ptr(151))
	require.NoError(t, err)
	assert.False(t, created)

	book := f.service.Book(ctx)
	require.Len(t, book.Pending, 1)
	order := book.Pending[0]
	assert.Equal(t, "AAPL", order.Ticker)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 159.0, *order.TargetPrice)
	assert.Equal(t, 145.5, *order.StopPrice)
	assert.NotEmpty(t, order.ID)
}

func TestOpenPendingWithoutEntryNeverAutoCloses(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	created, err := f.service.OpenPending(ctx, "MSFT", 65, "READY", nil)
	require.NoError(t, err)
	require.True(t, created)

	closed, err := f.service.AutoCloseFromMarket(ctx, marketSnapshot(map[string]string{"MSFT": "1000"}))
	require.NoError(t, err)
	assert.Equal(t, 0, closed)

	book := f.service.Book(ctx)
	require.Len(t, book.Pending, 1)
	assert.Nil(t, book.Pending[0].TargetPrice)
	assert.Nil(t, book.Pending[0].StopPrice)
}

func TestAutoCloseFromMarket(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		wantClosed int
		wantResult entity.OrderResult
	}{
		{name: "target reached", price: "106", wantClosed: 1, wantResult: entity.ResultWon},
		{name: "stop reached", price: "96", wantClosed: 1, wantResult: entity.ResultLost},
		{name: "inside range", price: "100", wantClosed: 0},
		{name: "unparsable price", price: `"n/a"`, wantClosed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newOrderFixture(t)
			_, err := f.service.OpenPending(ctx, "AAPL", 70, "READY", ptr(100))
			require.NoError(t, err)

			closed, err := f.service.AutoCloseFromMarket(ctx, marketSnapshot(map[string]string{"AAPL": tt.price}))
			require.NoError(t, err)
			assert.Equal(t, tt.wantClosed, closed)

			book := f.service.Book(ctx)
			journal := f.journal.LoadAll(ctx)
			if tt.wantClosed == 0 {
				assert.Len(t, book.Pending, 1)
				assert.Empty(t, book.Completed)
				assert.Empty(t, journal)
				return
			}

			assert.Empty(t, book.Pending)
			require.Len(t, book.Completed, 1)
			order := book.Completed[0]
			assert.Equal(t, entity.OrderStatusCompleted, order.Status)
			assert.Equal(t, tt.wantResult, *order.Result)
			require.NotNil(t, order.ClosedAt)
			require.NotNil(t, order.ClosePrice)

			require.Len(t, journal, 1)
			assert.Equal(t, order.ID, journal[0].OrderID)
			assert.Equal(t, tt.wantResult.RMultiple(), journal[0].RMultiple)
			assert.Len(t, f.events.closed, 1)
			assert.Len(t, f.notifier.messages, 1)
		})
	}
}

func TestAutoCloseUsesLastCloseFallback(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	_, err := f.service.OpenPending(ctx, "AAPL", 70, "READY", ptr(100))
	require.NoError(t, err)

	snapshot := entity.EmptySnapshot()
	snapshot.Market = []entity.MarketQuote{{
		Ticker: "aapl",
		Quote:  entity.Quote{LastCloseSeries: json.RawMessage(`[101, 104, "107.5", null]`)},
	}}

	closed, err := f.service.AutoCloseFromMarket(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)
	assert.Equal(t, 107.5, *f.service.Book(ctx).Completed[0].ClosePrice)
}

func TestCompleteManually(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	_, err := f.service.OpenPending(ctx, "NVDA", 75, "TRIGGERED", ptr(80))
	require.NoError(t, err)
	orderID := f.service.Book(ctx).Pending[0].ID

	order, err := f.service.CompleteManually(ctx, orderID, "perdida")
	require.NoError(t, err)
	assert.Equal(t, entity.ResultLost, *order.Result)
	assert.Equal(t, f.service.now(), *order.ClosedAt)
	assert.Nil(t, order.ClosePrice)

	journal := f.journal.LoadAll(ctx)
	require.Len(t, journal, 1)
	assert.Equal(t, -1.0, journal[0].RMultiple)

	_, err = f.service.CompleteManually(ctx, orderID, "ganada")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Len(t, f.journal.LoadAll(ctx), 1)
}

func TestCompleteManuallyUnknownResultIsSimulated(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	_, err := f.service.OpenPending(ctx, "TSLA", 61, "READY", ptr(200))
	require.NoError(t, err)

	order, err := f.service.CompleteManually(ctx, f.service.Book(ctx).Pending[0].ID, "whatever")
	require.NoError(t, err)
	assert.Equal(t, entity.ResultSimulated, *order.Result)
	assert.Equal(t, 0.0, f.journal.LoadAll(ctx)[0].RMultiple)
}

func TestCompleteManuallyUnknownOrder(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CompleteManually(context.Background(), "nope", "ganada")
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
