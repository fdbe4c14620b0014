package entity

import "time"

// OrderStatus is pending until the order is closed; completed is terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderResult is the outcome label stamped on a completed order.
type OrderResult string

const (
	ResultWon       OrderResult = "ganada"
	ResultLost      OrderResult = "perdida"
	ResultNeutral   OrderResult = "neutral"
	ResultSimulated OrderResult = "simulada"
)

// NormalizeResult maps unknown labels to simulada.
func NormalizeResult(r string) OrderResult {
	switch OrderResult(r) {
	case ResultWon, ResultLost, ResultNeutral, ResultSimulated:
		return OrderResult(r)
	}
	return ResultSimulated
}

// RMultiple is +1 for a win, -1 for a loss and 0 otherwise.
func (r OrderResult) RMultiple() float64 {
	switch r {
	case ResultWon:
		return 1
	case ResultLost:
		return -1
	}
	return 0
}

// Order is a simulated position opened from a signal.
type Order struct {
	ID          string       `json:"id"`
	Ticker      string       `json:"ticker"`
	Status      OrderStatus  `json:"status"`
	State       string       `json:"state"`
	Score       float64      `json:"score"`
	EntryPrice  *float64     `json:"entry_price"`
	TargetPrice *float64     `json:"target_price"`
	StopPrice   *float64     `json:"stop_price"`
	CreatedAt   time.Time    `json:"created_at"`
	ClosedAt    *time.Time   `json:"closed_at,omitempty"`
	ClosePrice  *float64     `json:"close_price,omitempty"`
	Result      *OrderResult `json:"result,omitempty"`
}

// OrderBook is the whole persisted order document.
type OrderBook struct {
	Pending   []Order `json:"pending"`
	Completed []Order `json:"completed"`
}
