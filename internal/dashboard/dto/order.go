package dto

// OpenOrderRequest is the DTO for manually opening a simulated order.
type OpenOrderRequest struct {
	Ticker     string   `json:"ticker"`
	Score      float64  `json:"score"`
	State      string   `json:"state"`
	EntryPrice *float64 `json:"entry_price"`
}

// OpenOrderResponse reports whether the order was opened.
type OpenOrderResponse struct {
	Created bool `json:"created"`
}

// CompleteOrderRequest is the DTO for manually closing an order.
type CompleteOrderRequest struct {
	Result string `json:"result"`
}

// AutoCloseResponse reports how many orders the market pass closed.
type AutoCloseResponse struct {
	Closed int `json:"closed"`
}
