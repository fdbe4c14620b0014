package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// SignalsSnapshot is the externally produced document of scored opportunities and market quotes.
type SignalsSnapshot struct {
	GeneratedAt      *string         `json:"generated_at"`
	TopOpportunities []Opportunity   `json:"top_opportunities"`
	Market           []MarketQuote   `json:"market"`
	Macro            json.RawMessage `json:"macro,omitempty"`
	News             json.RawMessage `json:"news,omitempty"`
}

// EmptySnapshot is what readers return when no usable snapshot exists.
func EmptySnapshot() SignalsSnapshot {
	return SignalsSnapshot{
		TopOpportunities: []Opportunity{},
		Market:           []MarketQuote{},
	}
}

// Quote carries the two price sources a snapshot row may provide.
type Quote struct {
	RegularMarketPrice json.RawMessage `json:"regularMarketPrice,omitempty"`
	LastCloseSeries    json.RawMessage `json:"lastCloseSeries,omitempty"`
}

// Price prefers the live quote and falls back to the most recent parsable close.
// Non-positive values are treated as missing.
func (q Quote) Price() (float64, bool) {
	if v, ok := parseNumber(q.RegularMarketPrice); ok {
		return v, true
	}

	raw := bytes.TrimSpace(q.LastCloseSeries)
	if len(raw) == 0 {
		return 0, false
	}
	if raw[0] != '[' {
		return parseNumber(raw)
	}

	var series []json.RawMessage
	if err := json.Unmarshal(raw, &series); err != nil {
		return 0, false
	}
	for i := len(series) - 1; i >= 0; i-- {
		if v, ok := parseNumber(series[i]); ok {
			return v, true
		}
	}
	return 0, false
}

// Opportunity is one scored trade candidate.
type Opportunity struct {
	Ticker string    `json:"ticker"`
	Score  FlexFloat `json:"score"`
	State  string    `json:"state"`
	Quote
	Reasons []string `json:"reasons"`
}

// MarketQuote is one row of the market section.
type MarketQuote struct {
	Ticker string `json:"ticker"`
	Quote
}

// FlexFloat decodes either a JSON number or a numeric string. Negative values are kept;
// anything non-numeric or non-finite decodes to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	v, _ := parseFinite(b)
	*f = FlexFloat(v)
	return nil
}

// parseNumber reads a price. Only finite positive values count.
func parseNumber(raw json.RawMessage) (float64, bool) {
	v, ok := parseFinite(raw)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

func parseFinite(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
	} else {
		s = string(raw)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

var generatedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// GeneratedTime parses generated_at. Timestamps without a zone are read as UTC.
func (s SignalsSnapshot) GeneratedTime() (time.Time, bool) {
	if s.GeneratedAt == nil {
		return time.Time{}, false
	}
	value := strings.TrimSpace(*s.GeneratedAt)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range generatedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
