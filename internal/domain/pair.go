package domain

// TradablePair identifies a market currently streamed by a provider.
type TradablePair struct {
	Base         Currency
	Quote        Currency
	ProviderName string
	Active       bool
}

func (p TradablePair) Matches(base, quote string) bool {
	return p.Base.Symbol == base && p.Quote.Symbol == quote
}

// Tradable reports whether the pair and both of its currencies are active.
func (p TradablePair) Tradable() bool {
	return p.Active && p.Base.IsActive() && p.Quote.IsActive()
}

func (p TradablePair) String() string { return p.Base.Symbol + "/" + p.Quote.Symbol }
