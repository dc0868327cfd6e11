package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"quotation-service/internal/domain"

	"github.com/shopspring/decimal"
)

var ErrRepo = errors.New("repo error")

var (
	btc = domain.Currency{Symbol: "BTC", Decimal: 8, State: domain.CurrencyStateActive}
	brl = domain.Currency{Symbol: "BRL", Decimal: 2, State: domain.CurrencyStateActive}
)

type fakePairs struct {
	pairs []domain.TradablePair
	err   error
}

func (f *fakePairs) ActivePairs(context.Context) ([]domain.TradablePair, error) {
	return f.pairs, f.err
}

type fakeQuotes struct {
	quotes map[string]domain.MarketQuote
	err    error
}

func quoteKey(base, quote, provider string) string {
	return fmt.Sprintf("%s/%s@%s", base, quote, provider)
}

func (f *fakeQuotes) ByPair(_ context.Context, base, quote, provider string) (domain.MarketQuote, error) {
	if f.err != nil {
		return domain.MarketQuote{}, f.err
	}
	q, ok := f.quotes[quoteKey(base, quote, provider)]
	if !ok {
		return domain.MarketQuote{}, domain.ErrNotFound
	}
	return q, nil
}

type fakeSpreads struct {
	rules []domain.SpreadRule
	err   error
}

func (f *fakeSpreads) ByUserAndCurrencies(context.Context, string, string, string) ([]domain.SpreadRule, error) {
	return f.rules, f.err
}

type fakeTaxes struct {
	taxes map[string]domain.TaxRule
	err   error
}

func (f *fakeTaxes) ByName(_ context.Context, name string) (domain.TaxRule, error) {
	if f.err != nil {
		return domain.TaxRule{}, f.err
	}
	t, ok := f.taxes[name]
	if !ok {
		return domain.TaxRule{}, domain.ErrNotFound
	}
	return t, nil
}

type fakeHolidays struct {
	dates map[string]bool
	err   error
}

func (f *fakeHolidays) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	return f.dates[date.Format(time.DateOnly)], f.err
}

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type seqIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGen) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("quotation-%d", g.n)
}

type fakeStore struct {
	saved []domain.Quotation
	err   error
}

func (f *fakeStore) Save(_ context.Context, q domain.Quotation) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, q)
	return nil
}

type fakeObserver struct{ results []string }

func (f *fakeObserver) ObserveQuotation(result string, _ time.Duration) {
	f.results = append(f.results, result)
}

func spread(id string, buy, sell int64) domain.SpreadRule {
	return domain.SpreadRule{ID: id, Base: "BTC", Quote: "BRL", BuyBps: domain.Bps(buy), SellBps: domain.Bps(sell)}
}

func iof(bps int64) domain.TaxRule {
	return domain.TaxRule{Name: "iof", ValueBps: decimal.NewFromInt(bps)}
}

// btcBrlLookups is the reference market: BTC/BRL at 100200.15, one 100 bps
// spread and a 38 bps IOF.
func btcBrlLookups() Lookups {
	return Lookups{
		Pairs: &fakePairs{pairs: []domain.TradablePair{
			{Base: btc, Quote: brl, ProviderName: "binance", Active: true},
		}},
		Quotes: &fakeQuotes{quotes: map[string]domain.MarketQuote{
			quoteKey("BTC", "BRL", "binance"): {Base: "BTC", Quote: "BRL", ProviderName: "binance", Buy: 100200.15, Sell: 100200.15},
		}},
		Spreads:  &fakeSpreads{rules: []domain.SpreadRule{spread("s1", 100, 100)}},
		Taxes:    &fakeTaxes{taxes: map[string]domain.TaxRule{"iof": iof(38)}},
		Holidays: &fakeHolidays{},
	}
}
