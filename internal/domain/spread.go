package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const offMarketClockLayout = "15:04"

// SpreadRule is a business-configured markup (buy) / markdown (sell) for a
// pair. UserID is nil for rules that apply to every user. Several rules may
// apply to one request; they compound.
type SpreadRule struct {
	ID     string  `json:"id"`
	UserID *string `json:"user_id,omitempty"`
	Base   string  `json:"base"`
	Quote  string  `json:"quote"`

	BuyBps           decimal.NullDecimal `json:"buy"`
	SellBps          decimal.NullDecimal `json:"sell"`
	OffMarketBuyBps  decimal.NullDecimal `json:"off_market_buy"`
	OffMarketSellBps decimal.NullDecimal `json:"off_market_sell"`

	// Wall-clock "HH:MM" bounds of the off-market window, [start, end).
	// The window wraps midnight when end is before start.
	OffMarketTimeStart string `json:"off_market_time_start,omitempty"`
	OffMarketTimeEnd   string `json:"off_market_time_end,omitempty"`
}

// IsInOffMarketWindow evaluates the configured window against the wall clock
// of now. Rules without a (parsable) window are never off-market.
func (r SpreadRule) IsInOffMarketWindow(now time.Time) bool {
	if r.OffMarketTimeStart == "" || r.OffMarketTimeEnd == "" {
		return false
	}
	start, err := time.Parse(offMarketClockLayout, r.OffMarketTimeStart)
	if err != nil {
		return false
	}
	end, err := time.Parse(offMarketClockLayout, r.OffMarketTimeEnd)
	if err != nil {
		return false
	}
	from := start.Hour()*60 + start.Minute()
	to := end.Hour()*60 + end.Minute()
	cur := now.Hour()*60 + now.Minute()
	switch {
	case from == to:
		return false
	case from < to:
		return cur >= from && cur < to
	default:
		return cur >= from || cur < to
	}
}

// Effective returns the buy and sell bps to apply. The off-market value for a
// side is used only when useOffMarket is set and that side defines one;
// otherwise the standard value (zero when unset) applies.
func (r SpreadRule) Effective(useOffMarket bool) (buy, sell decimal.Decimal) {
	return pick(r.BuyBps, r.OffMarketBuyBps, useOffMarket), pick(r.SellBps, r.OffMarketSellBps, useOffMarket)
}

func pick(standard, offMarket decimal.NullDecimal, useOffMarket bool) decimal.Decimal {
	if useOffMarket && offMarket.Valid {
		return offMarket.Decimal
	}
	if standard.Valid {
		return standard.Decimal
	}
	return decimal.Zero
}

// Bps is a convenience constructor for a set basis-point value.
func Bps(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}
