package application

import (
	"context"
	"fmt"
	"time"

	"quotation-service/internal/domain"

	"github.com/shopspring/decimal"
)

// ResolvedSpread is the compounded spread for one request.
type ResolvedSpread struct {
	Rules    []domain.SpreadRule
	Holiday  bool
	BuyFrac  decimal.Decimal
	SellFrac decimal.Decimal
}

func (s ResolvedSpread) BuyBps() int64  { return domain.FractionToBps(s.BuyFrac) }
func (s ResolvedSpread) SellBps() int64 { return domain.FractionToBps(s.SellFrac) }

type SpreadResolver struct {
	spreads  SpreadLookup
	holidays HolidayLookup
}

// NewSpreadResolver accepts a nil holidays lookup, meaning no holidays.
func NewSpreadResolver(spreads SpreadLookup, holidays HolidayLookup) *SpreadResolver {
	return &SpreadResolver{spreads: spreads, holidays: holidays}
}

// Resolve selects standard or off-market bps per rule and compounds them.
// now must already be in the calendar timezone: its date decides the holiday
// and its wall clock the off-market windows.
func (r *SpreadResolver) Resolve(ctx context.Context, userID, base, quote string, now time.Time) (ResolvedSpread, error) {
	rules, err := r.spreads.ByUserAndCurrencies(ctx, userID, base, quote)
	if err != nil {
		return ResolvedSpread{}, fmt.Errorf("spreads: %w", err)
	}
	if len(rules) == 0 {
		return ResolvedSpread{}, domain.ErrSpreadNotFound
	}

	holiday := false
	if r.holidays != nil {
		holiday, err = r.holidays.IsHoliday(ctx, now)
		if err != nil {
			return ResolvedSpread{}, fmt.Errorf("holiday: %w", err)
		}
	}

	buys := make([]decimal.Decimal, 0, len(rules))
	sells := make([]decimal.Decimal, 0, len(rules))
	for _, rule := range rules {
		buy, sell := rule.Effective(holiday || rule.IsInOffMarketWindow(now))
		buys = append(buys, buy)
		sells = append(sells, sell)
	}
	return ResolvedSpread{
		Rules:    rules,
		Holiday:  holiday,
		BuyFrac:  domain.Compound(buys),
		SellFrac: domain.Compound(sells),
	}, nil
}
