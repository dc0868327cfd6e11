package provider

import (
	"context"
	"time"

	"quotation-service/internal/application"
	"quotation-service/internal/domain"
)

const FakeName = "fake"

var _ application.RateProvider = (*Fake)(nil)

// Fake quotes every pair at a fixed price unless overridden per pair.
type Fake struct {
	price  float64
	prices map[string]float64
}

func NewFake(price float64) *Fake { return &Fake{price: price, prices: map[string]float64{}} }

// WithPrice overrides the price of base/quote.
func (f *Fake) WithPrice(base, quote string, price float64) *Fake {
	f.prices[base+"/"+quote] = price
	return f
}

func (f *Fake) Name() string { return FakeName }

func (f *Fake) Get(_ context.Context, base, quote string) (domain.MarketQuote, error) {
	price, ok := f.prices[base+"/"+quote]
	if !ok {
		price = f.price
	}
	return domain.MarketQuote{
		Base:         base,
		Quote:        quote,
		ProviderName: FakeName,
		Buy:          price,
		Sell:         price,
		UpdatedAt:    time.Now().UTC(),
	}, nil
}
