package application

import (
	"context"
	"errors"
	"fmt"

	"quotation-service/internal/domain"

	"github.com/shopspring/decimal"
)

// MarketPrice is the resolved live market for a request.
type MarketPrice struct {
	Pair  domain.TradablePair
	Quote domain.MarketQuote
	Mid   decimal.Decimal
}

// MarketPriceResolver finds the first active pair for the requested
// currencies that has a live, positive quote. Composed (multi-hop) quotes are
// the MarketQuoteLookup's concern; the resolver uses whatever mid it returns.
type MarketPriceResolver struct {
	pairs  TradablePairLookup
	quotes MarketQuoteLookup
}

func NewMarketPriceResolver(pairs TradablePairLookup, quotes MarketQuoteLookup) *MarketPriceResolver {
	return &MarketPriceResolver{pairs: pairs, quotes: quotes}
}

func (r *MarketPriceResolver) Resolve(ctx context.Context, base, quote string) (MarketPrice, error) {
	pairs, err := r.pairs.ActivePairs(ctx)
	if err != nil {
		return MarketPrice{}, fmt.Errorf("active pairs: %w", err)
	}
	for _, p := range pairs {
		if !p.Tradable() || !p.Matches(base, quote) {
			continue
		}
		mq, err := r.quotes.ByPair(ctx, base, quote, p.ProviderName)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return MarketPrice{}, fmt.Errorf("market quote %s %s: %w", p, p.ProviderName, err)
		}
		mid := mq.Mid()
		if !mid.IsPositive() {
			continue
		}
		return MarketPrice{Pair: p, Quote: mq, Mid: mid}, nil
	}
	return MarketPrice{}, domain.ErrStreamQuotationNotFound
}
