package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quotation-service/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuotationRequest is the input of GetQuotation. Amount is in minor units of
// AmountCurrency, which must be the base currency or the operation currency.
type QuotationRequest struct {
	UserID         string
	Amount         int64
	AmountCurrency string
	BaseCurrency   string
	Side           domain.Side
}

// Lookups groups the read-only collaborators of the engine.
type Lookups struct {
	Pairs    TradablePairLookup
	Quotes   MarketQuoteLookup
	Spreads  SpreadLookup
	Taxes    TaxLookup
	Holidays HolidayLookup
}

type Settings struct {
	// OperationCurrencySymbol is the quote currency of every pair priced here.
	OperationCurrencySymbol string
	TaxName                 string
}

type QuotationService struct {
	market  *MarketPriceResolver
	spreads *SpreadResolver
	taxes   *TaxResolver

	settings Settings
	clock    Clock
	idgen    IDGen
	location *time.Location
	parallel bool
	store    QuotationStore
	observer Observer
	log      *zap.Logger
}

type Option func(*QuotationService)

func WithClock(c Clock) Option           { return func(s *QuotationService) { s.clock = c } }
func WithIDGen(g IDGen) Option           { return func(s *QuotationService) { s.idgen = g } }
func WithLogger(l *zap.Logger) Option    { return func(s *QuotationService) { s.log = l } }
func WithObserver(o Observer) Option     { return func(s *QuotationService) { s.observer = o } }
func WithStore(st QuotationStore) Option { return func(s *QuotationService) { s.store = st } }

// WithLocation sets the calendar timezone used for holidays and off-market windows.
func WithLocation(loc *time.Location) Option { return func(s *QuotationService) { s.location = loc } }

// WithParallelLookups resolves spreads and tax concurrently once the market
// price is known.
func WithParallelLookups(on bool) Option { return func(s *QuotationService) { s.parallel = on } }

func NewQuotationService(l Lookups, settings Settings, opts ...Option) *QuotationService {
	s := &QuotationService{
		market:   NewMarketPriceResolver(l.Pairs, l.Quotes),
		spreads:  NewSpreadResolver(l.Spreads, l.Holidays),
		taxes:    NewTaxResolver(l.Taxes),
		settings: settings,
	}
	s.settings.OperationCurrencySymbol = strings.ToUpper(s.settings.OperationCurrencySymbol)
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.idgen == nil {
		s.idgen = defaultIDGen{}
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// GetQuotation prices req against the live market. Resolver failures are
// returned as-is (see domain errors); no partial Quotation is ever returned.
func (s *QuotationService) GetQuotation(ctx context.Context, req QuotationRequest) (domain.Quotation, error) {
	start := time.Now()
	q, err := s.getQuotation(ctx, req)
	if s.observer != nil {
		s.observer.ObserveQuotation(ErrorCode(err), time.Since(start))
	}
	if err != nil {
		s.log.Info("quotation.rejected",
			zap.String("user_id", req.UserID),
			zap.String("base", req.BaseCurrency),
			zap.String("amount_currency", req.AmountCurrency),
			zap.Int64("amount", req.Amount),
			zap.String("code", ErrorCode(err)),
			zap.Error(err),
		)
		return domain.Quotation{}, err
	}
	s.log.Info("quotation.built",
		zap.String("id", q.ID),
		zap.String("pair", q.BaseCurrency.Symbol+"/"+q.QuoteCurrency.Symbol),
		zap.String("provider", q.ProviderName),
		zap.Int64("price", q.Price),
		zap.Int64("price_buy", q.PriceBuy),
		zap.Int64("price_sell", q.PriceSell),
	)
	return q, nil
}

func (s *QuotationService) getQuotation(ctx context.Context, req QuotationRequest) (domain.Quotation, error) {
	if err := validate(req); err != nil {
		return domain.Quotation{}, err
	}
	base := strings.ToUpper(req.BaseCurrency)
	quote := s.settings.OperationCurrencySymbol
	given, err := givenAmount(req, base, quote)
	if err != nil {
		return domain.Quotation{}, err
	}
	now := s.clock.Now().In(s.location)

	market, err := s.market.Resolve(ctx, base, quote)
	if err != nil {
		return domain.Quotation{}, err
	}
	spread, tax, err := s.resolveSpreadAndTax(ctx, req.UserID, base, quote, now)
	if err != nil {
		return domain.Quotation{}, err
	}

	c, err := domain.Compose(domain.ComposeInput{
		MidPrice:      market.Mid,
		BaseDecimals:  market.Pair.Base.Decimal,
		QuoteDecimals: market.Pair.Quote.Decimal,
		Given:         given,
		BuyFrac:       spread.BuyFrac,
		SellFrac:      spread.SellFrac,
		TaxFrac:       tax.Fraction(),
	})
	if err != nil {
		return domain.Quotation{}, err
	}

	q := domain.Quotation{
		ID:               s.idgen.NewID(),
		Side:             req.Side,
		ProviderName:     market.Pair.ProviderName,
		Price:            c.Price,
		PriceBuy:         c.PriceBuy,
		PriceSell:        c.PriceSell,
		PartialBuy:       c.PartialBuy,
		PartialSell:      c.PartialSell,
		Spreads:          append([]domain.SpreadRule(nil), spread.Rules...),
		SpreadBuy:        spread.BuyBps(),
		SpreadSell:       spread.SellBps(),
		SpreadAmountBuy:  c.SpreadAmountBuy,
		SpreadAmountSell: c.SpreadAmountSell,
		IOF:              tax,
		IOFAmount:        c.TaxAmount,
		QuoteCurrency:    market.Pair.Quote,
		QuoteAmountBuy:   c.QuoteAmountBuy,
		QuoteAmountSell:  c.QuoteAmountSell,
		BaseCurrency:     market.Pair.Base,
		BaseAmountBuy:    c.BaseAmountBuy,
		BaseAmountSell:   c.BaseAmountSell,
		CreatedAt:        now,
	}
	if s.store != nil {
		if err := s.store.Save(ctx, q); err != nil {
			return domain.Quotation{}, fmt.Errorf("save quotation: %w", err)
		}
	}
	return q, nil
}

func (s *QuotationService) resolveSpreadAndTax(ctx context.Context, userID, base, quote string, now time.Time) (ResolvedSpread, domain.TaxRule, error) {
	if !s.parallel {
		spread, err := s.spreads.Resolve(ctx, userID, base, quote, now)
		if err != nil {
			return ResolvedSpread{}, domain.TaxRule{}, err
		}
		tax, err := s.taxes.Resolve(ctx, s.settings.TaxName)
		if err != nil {
			return ResolvedSpread{}, domain.TaxRule{}, err
		}
		return spread, tax, nil
	}

	var (
		g                 errgroup.Group
		spread            ResolvedSpread
		tax               domain.TaxRule
		spreadErr, taxErr error
	)
	g.Go(func() error {
		spread, spreadErr = s.spreads.Resolve(ctx, userID, base, quote, now)
		return nil
	})
	g.Go(func() error {
		tax, taxErr = s.taxes.Resolve(ctx, s.settings.TaxName)
		return nil
	})
	_ = g.Wait()
	// spread errors win over tax errors regardless of completion order
	if spreadErr != nil {
		return ResolvedSpread{}, domain.TaxRule{}, spreadErr
	}
	if taxErr != nil {
		return ResolvedSpread{}, domain.TaxRule{}, taxErr
	}
	return spread, tax, nil
}

func validate(req QuotationRequest) error {
	var missing []string
	if strings.TrimSpace(req.UserID) == "" {
		missing = append(missing, "user")
	}
	if req.Amount == 0 {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(req.AmountCurrency) == "" {
		missing = append(missing, "amount_currency")
	}
	if strings.TrimSpace(req.BaseCurrency) == "" {
		missing = append(missing, "base_currency")
	}
	if !req.Side.Valid() {
		missing = append(missing, "side")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingData, strings.Join(missing, ", "))
	}
	return nil
}

func givenAmount(req QuotationRequest, base, quote string) (domain.GivenAmount, error) {
	switch strings.ToUpper(req.AmountCurrency) {
	case quote:
		return domain.QuoteGiven(req.Amount), nil
	case base:
		return domain.BaseGiven(req.Amount), nil
	default:
		return domain.GivenAmount{}, fmt.Errorf("%w: %s not in %s/%s", domain.ErrInvalidAmountCurrency, req.AmountCurrency, base, quote)
	}
}
