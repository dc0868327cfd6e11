package application

import (
	"context"
	"time"

	"quotation-service/internal/domain"
)

type TradablePairLookup interface {
	ActivePairs(ctx context.Context) ([]domain.TradablePair, error)
}

// MarketQuoteLookup returns domain.ErrNotFound when no live quote exists.
type MarketQuoteLookup interface {
	ByPair(ctx context.Context, base, quote, provider string) (domain.MarketQuote, error)
}

// SpreadLookup returns user-scoped and global rules for the pair together.
type SpreadLookup interface {
	ByUserAndCurrencies(ctx context.Context, userID, base, quote string) ([]domain.SpreadRule, error)
}

// TaxLookup returns domain.ErrNotFound when the named tax is absent.
type TaxLookup interface {
	ByName(ctx context.Context, name string) (domain.TaxRule, error)
}

type HolidayLookup interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

type QuotationStore interface {
	Save(ctx context.Context, q domain.Quotation) error
}

type MarketQuoteStore interface {
	Save(ctx context.Context, q domain.MarketQuote) error
}

type RateProvider interface {
	Name() string
	Get(ctx context.Context, base, quote string) (domain.MarketQuote, error)
}

// Observer receives one observation per GetQuotation call.
type Observer interface {
	ObserveQuotation(result string, elapsed time.Duration)
}
