package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotePrice(t *testing.T) {
	tests := []struct {
		name  string
		quote string
		want  float64
		ok    bool
	}{
		{name: "live quote", quote: `{"regularMarketPrice": 101.25, "lastCloseSeries": [99, 100]}`, want: 101.25, ok: true},
		{name: "live quote as string", quote: `{"regularMarketPrice": "42.5"}`, want: 42.5, ok: true},
		{name: "falls back to last close", quote: `{"regularMarketPrice": null, "lastCloseSeries": [99, 100]}`, want: 100, ok: true},
		{name: "skips unparsable tail", quote: `{"lastCloseSeries": [99, "n/a", null]}`, want: 99, ok: true},
		{name: "scalar last close", quote: `{"lastCloseSeries": "77"}`, want: 77, ok: true},
		{name: "non positive live quote", quote: `{"regularMarketPrice": 0, "lastCloseSeries": [12]}`, want: 12, ok: true},
		{name: "infinite live quote", quote: `{"regularMarketPrice": "Infinity", "lastCloseSeries": [12]}`, want: 12, ok: true},
		{name: "overflowing number", quote: `{"regularMarketPrice": 1e999}`, ok: false},
		{name: "nan close", quote: `{"lastCloseSeries": ["NaN"]}`, ok: false},
		{name: "nothing usable", quote: `{"regularMarketPrice": "abc", "lastCloseSeries": []}`, ok: false},
		{name: "absent", quote: `{}`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q MarketQuote
			require.NoError(t, json.Unmarshal([]byte(tt.quote), &q))

			got, ok := q.Price()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpportunityDecodesLenientScore(t *testing.T) {
	var opps []Opportunity
	require.NoError(t, json.Unmarshal([]byte(`[
		{"ticker": "A", "score": 65, "state": "READY", "regularMarketPrice": 50, "reasons": ["x"]},
		{"ticker": "B", "score": "70.5"},
		{"ticker": "C", "score": "high"}
	]`), &opps))

	require.Len(t, opps, 3)
	assert.Equal(t, FlexFloat(65), opps[0].Score)
	assert.Equal(t, []string{"x"}, opps[0].Reasons)
	price, ok := opps[0].Price()
	assert.True(t, ok)
	assert.Equal(t, 50.0, price)
	assert.Equal(t, FlexFloat(70.5), opps[1].Score)
	assert.Equal(t, FlexFloat(0), opps[2].Score)
}

func TestOpportunityScoreKeepsSignAndDropsNonFinite(t *testing.T) {
	var opps []Opportunity
	require.NoError(t, json.Unmarshal([]byte(`[
		{"ticker": "NEG", "score": -5},
		{"ticker": "NEGS", "score": "-12.5"},
		{"ticker": "NAN", "score": "NaN"},
		{"ticker": "INF", "score": "+Inf"}
	]`), &opps))

	require.Len(t, opps, 4)
	assert.Equal(t, FlexFloat(-5), opps[0].Score)
	assert.Equal(t, FlexFloat(-12.5), opps[1].Score)
	assert.Equal(t, FlexFloat(0), opps[2].Score)
	assert.Equal(t, FlexFloat(0), opps[3].Score)
}

func TestGeneratedTime(t *testing.T) {
	s := func(v string) SignalsSnapshot { return SignalsSnapshot{GeneratedAt: &v} }

	ts, ok := s("2026-03-02 14:30:00").GeneratedTime()
	require.True(t, ok)
	assert.Equal(t, "2026-03-02T14:30:00Z", ts.Format("2006-01-02T15:04:05Z07:00"))

	_, ok = s("").GeneratedTime()
	assert.False(t, ok)
	_, ok = SignalsSnapshot{}.GeneratedTime()
	assert.False(t, ok)
}
