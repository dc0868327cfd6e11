package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Leg tags which currency of the pair the caller fixed the amount in.
type Leg int

const (
	LegQuote Leg = iota + 1
	LegBase
)

func (l Leg) String() string {
	switch l {
	case LegQuote:
		return "quote"
	case LegBase:
		return "base"
	default:
		return fmt.Sprintf("leg(%d)", int(l))
	}
}

// GivenAmount is the caller amount, in minor units of the currency named by Leg.
type GivenAmount struct {
	Leg    Leg
	Amount int64
}

func QuoteGiven(amount int64) GivenAmount { return GivenAmount{Leg: LegQuote, Amount: amount} }
func BaseGiven(amount int64) GivenAmount  { return GivenAmount{Leg: LegBase, Amount: amount} }

// ComposeInput carries everything the pricing arithmetic needs. Fractions are
// plain fractions (0.01 for 100 bps), already compounded.
type ComposeInput struct {
	MidPrice      decimal.Decimal
	BaseDecimals  int32
	QuoteDecimals int32
	Given         GivenAmount
	BuyFrac       decimal.Decimal
	SellFrac      decimal.Decimal
	TaxFrac       decimal.Decimal
}

// Composition is the integer outcome of Compose. Spread and tax amounts are
// always quote-currency minor units; partials are in the given currency.
type Composition struct {
	Price     int64
	PriceBuy  int64
	PriceSell int64

	PartialBuy  int64
	PartialSell int64

	SpreadAmountBuy  int64
	SpreadAmountSell int64
	TaxAmount        int64

	QuoteAmountBuy  int64
	QuoteAmountSell int64
	BaseAmountBuy   int64
	BaseAmountSell  int64
}

// Compose turns a mid price, compounded spreads and a tax into both legs of a
// quote. Every intermediate value is rounded half away from zero to whole
// minor units, in this order: price, raw quote amount, spread/tax amounts,
// partial notional, derived leg. With a quote amount, effective prices are
// implied from the given amount and the partial notional. With a base amount
// they are the rate actually paid: the rounded quote leg over the base leg.
//
// Buy always costs the counter-party more and sell pays it less, whichever
// leg is fixed. ErrQuotationAmountUnderMinAmount is returned when any leg
// would not be strictly positive.
func Compose(in ComposeInput) (Composition, error) {
	price := in.MidPrice.Shift(in.QuoteDecimals).Round(0)
	if !price.IsPositive() {
		return Composition{}, ErrQuotationAmountUnderMinAmount
	}
	if in.Given.Amount <= 0 {
		return Composition{}, ErrQuotationAmountUnderMinAmount
	}

	var (
		c   composition
		err error
	)
	switch in.Given.Leg {
	case LegQuote:
		c, err = composeQuoteGiven(in, price)
	case LegBase:
		c, err = composeBaseGiven(in, price)
	default:
		return Composition{}, fmt.Errorf("compose: unknown %s", in.Given.Leg)
	}
	if err != nil {
		return Composition{}, err
	}
	for _, v := range []decimal.Decimal{c.baseAmountBuy, c.baseAmountSell, c.quoteAmountBuy, c.quoteAmountSell} {
		if !v.IsPositive() {
			return Composition{}, ErrQuotationAmountUnderMinAmount
		}
	}
	return c.toMinor()
}

type composition struct {
	price, priceBuy, priceSell                                     decimal.Decimal
	partialBuy, partialSell                                        decimal.Decimal
	spreadAmountBuy, spreadAmountSell, taxAmount                   decimal.Decimal
	quoteAmountBuy, quoteAmountSell, baseAmountBuy, baseAmountSell decimal.Decimal
}

func composeQuoteGiven(in ComposeInput, price decimal.Decimal) (composition, error) {
	a := decimal.NewFromInt(in.Given.Amount)
	c := composition{price: price}
	c.spreadAmountBuy = a.Mul(in.BuyFrac).Round(0)
	c.spreadAmountSell = a.Mul(in.SellFrac).Round(0)
	c.taxAmount = a.Mul(in.TaxFrac).Round(0)

	c.partialBuy = a.Sub(c.spreadAmountBuy).Sub(c.taxAmount)
	c.partialSell = a.Add(c.spreadAmountSell).Add(c.taxAmount)
	if !c.partialBuy.IsPositive() || !c.partialSell.IsPositive() {
		return composition{}, ErrQuotationAmountUnderMinAmount
	}

	c.quoteAmountBuy, c.quoteAmountSell = a, a
	c.baseAmountBuy = c.partialBuy.Shift(in.BaseDecimals).DivRound(price, 0)
	c.baseAmountSell = c.partialSell.Shift(in.BaseDecimals).DivRound(price, 0)

	c.priceBuy = price.Mul(a).DivRound(c.partialBuy, 0)
	c.priceSell = price.Mul(a).DivRound(c.partialSell, 0)
	return c, nil
}

func composeBaseGiven(in ComposeInput, price decimal.Decimal) (composition, error) {
	a := decimal.NewFromInt(in.Given.Amount)
	c := composition{price: price}
	raw := a.Mul(price).Shift(-in.BaseDecimals).Round(0)
	c.spreadAmountBuy = raw.Mul(in.BuyFrac).Round(0)
	c.spreadAmountSell = raw.Mul(in.SellFrac).Round(0)
	c.taxAmount = raw.Mul(in.TaxFrac).Round(0)

	c.partialBuy = a.Mul(one.Add(in.BuyFrac).Add(in.TaxFrac)).Round(0)
	c.partialSell = a.Mul(one.Sub(in.SellFrac).Sub(in.TaxFrac)).Round(0)
	if !c.partialBuy.IsPositive() || !c.partialSell.IsPositive() {
		return composition{}, ErrQuotationAmountUnderMinAmount
	}

	c.baseAmountBuy, c.baseAmountSell = a, a
	c.quoteAmountBuy = c.partialBuy.Mul(price).Shift(-in.BaseDecimals).Round(0)
	c.quoteAmountSell = c.partialSell.Mul(price).Shift(-in.BaseDecimals).Round(0)

	c.priceBuy = c.quoteAmountBuy.Shift(in.BaseDecimals).DivRound(c.baseAmountBuy, 0)
	c.priceSell = c.quoteAmountSell.Shift(in.BaseDecimals).DivRound(c.baseAmountSell, 0)
	return c, nil
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

func (c composition) toMinor() (Composition, error) {
	var out Composition
	fields := []struct {
		dst *int64
		src decimal.Decimal
	}{
		{&out.Price, c.price},
		{&out.PriceBuy, c.priceBuy},
		{&out.PriceSell, c.priceSell},
		{&out.PartialBuy, c.partialBuy},
		{&out.PartialSell, c.partialSell},
		{&out.SpreadAmountBuy, c.spreadAmountBuy},
		{&out.SpreadAmountSell, c.spreadAmountSell},
		{&out.TaxAmount, c.taxAmount},
		{&out.QuoteAmountBuy, c.quoteAmountBuy},
		{&out.QuoteAmountSell, c.quoteAmountSell},
		{&out.BaseAmountBuy, c.baseAmountBuy},
		{&out.BaseAmountSell, c.baseAmountSell},
	}
	for _, f := range fields {
		if f.src.GreaterThan(maxMinor) || f.src.LessThan(minMinor) {
			return Composition{}, fmt.Errorf("%w: %s", ErrAmountOutOfRange, f.src.String())
		}
		*f.dst = f.src.IntPart()
	}
	return out, nil
}
