package domain

import "time"

// Quotation is a two-sided quote built fresh per request and never mutated
// afterwards. All amounts and prices are integers in minor units: prices and
// quote amounts in the quote currency, base amounts in the base currency.
type Quotation struct {
	ID           string
	Side         Side
	ProviderName string

	Price     int64
	PriceBuy  int64
	PriceSell int64

	PartialBuy  int64
	PartialSell int64

	Spreads          []SpreadRule
	SpreadBuy        int64
	SpreadSell       int64
	SpreadAmountBuy  int64
	SpreadAmountSell int64

	IOF       TaxRule
	IOFAmount int64

	QuoteCurrency   Currency
	QuoteAmountBuy  int64
	QuoteAmountSell int64

	BaseCurrency   Currency
	BaseAmountBuy  int64
	BaseAmountSell int64

	CreatedAt time.Time
}
