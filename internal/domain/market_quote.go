package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketQuote is the live mid-price snapshot of a pair as streamed by a
// provider. Buy and Sell are quote-major-units per one base-major-unit.
type MarketQuote struct {
	Base         string    `json:"base"`
	Quote        string    `json:"quote"`
	ProviderName string    `json:"provider_name"`
	Buy          float64   `json:"buy"`
	Sell         float64   `json:"sell"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Mid is the midpoint of Buy and Sell. In the common case Buy == Sell and
// Mid returns that value unchanged.
func (q MarketQuote) Mid() decimal.Decimal {
	buy := decimal.NewFromFloat(q.Buy)
	sell := decimal.NewFromFloat(q.Sell)
	if buy.Equal(sell) {
		return buy
	}
	return buy.Add(sell).Div(decimal.NewFromInt(2))
}
