package application

import (
	"time"

	"quotation-service/internal/domain"

	"github.com/shopspring/decimal"
)

// QuotationRequestDTO is the wire shape of a GetQuotation request, shared by
// the HTTP and Kafka transports.
type QuotationRequestDTO struct {
	RequestID      string `json:"request_id,omitempty"`
	UserID         string `json:"user_id"`
	Amount         int64  `json:"amount"`
	AmountCurrency string `json:"amount_currency"`
	BaseCurrency   string `json:"base_currency"`
	Side           string `json:"side"`
}

func (d QuotationRequestDTO) ToRequest() QuotationRequest {
	return QuotationRequest{
		UserID:         d.UserID,
		Amount:         d.Amount,
		AmountCurrency: d.AmountCurrency,
		BaseCurrency:   d.BaseCurrency,
		Side:           domain.ParseSide(d.Side),
	}
}

type CurrencyDTO struct {
	Symbol  string `json:"symbol"`
	Decimal int32  `json:"decimal"`
}

type TaxDTO struct {
	Name     string `json:"name"`
	ValueBps string `json:"value_bps"`
}

type SpreadDTO struct {
	ID                 string  `json:"id"`
	UserID             *string `json:"user_id,omitempty"`
	Buy                *string `json:"buy"`
	Sell               *string `json:"sell"`
	OffMarketBuy       *string `json:"off_market_buy"`
	OffMarketSell      *string `json:"off_market_sell"`
	OffMarketTimeStart string  `json:"off_market_time_start,omitempty"`
	OffMarketTimeEnd   string  `json:"off_market_time_end,omitempty"`
}

type QuotationDTO struct {
	ID               string      `json:"id"`
	Side             string      `json:"side"`
	ProviderName     string      `json:"provider_name"`
	Price            int64       `json:"price"`
	PriceBuy         int64       `json:"price_buy"`
	PriceSell        int64       `json:"price_sell"`
	PartialBuy       int64       `json:"partial_buy"`
	PartialSell      int64       `json:"partial_sell"`
	Spreads          []SpreadDTO `json:"spreads"`
	SpreadBuy        int64       `json:"spread_buy"`
	SpreadSell       int64       `json:"spread_sell"`
	SpreadAmountBuy  int64       `json:"spread_amount_buy"`
	SpreadAmountSell int64       `json:"spread_amount_sell"`
	IOF              TaxDTO      `json:"iof"`
	IOFAmount        int64       `json:"iof_amount"`
	QuoteCurrency    CurrencyDTO `json:"quote_currency"`
	QuoteAmountBuy   int64       `json:"quote_amount_buy"`
	QuoteAmountSell  int64       `json:"quote_amount_sell"`
	BaseCurrency     CurrencyDTO `json:"base_currency"`
	BaseAmountBuy    int64       `json:"base_amount_buy"`
	BaseAmountSell   int64       `json:"base_amount_sell"`
	CreatedAt        time.Time   `json:"created_at"`
}

func ToQuotationDTO(q domain.Quotation) QuotationDTO {
	spreads := make([]SpreadDTO, 0, len(q.Spreads))
	for _, s := range q.Spreads {
		spreads = append(spreads, SpreadDTO{
			ID:                 s.ID,
			UserID:             s.UserID,
			Buy:                bpsString(s.BuyBps),
			Sell:               bpsString(s.SellBps),
			OffMarketBuy:       bpsString(s.OffMarketBuyBps),
			OffMarketSell:      bpsString(s.OffMarketSellBps),
			OffMarketTimeStart: s.OffMarketTimeStart,
			OffMarketTimeEnd:   s.OffMarketTimeEnd,
		})
	}
	return QuotationDTO{
		ID:               q.ID,
		Side:             string(q.Side),
		ProviderName:     q.ProviderName,
		Price:            q.Price,
		PriceBuy:         q.PriceBuy,
		PriceSell:        q.PriceSell,
		PartialBuy:       q.PartialBuy,
		PartialSell:      q.PartialSell,
		Spreads:          spreads,
		SpreadBuy:        q.SpreadBuy,
		SpreadSell:       q.SpreadSell,
		SpreadAmountBuy:  q.SpreadAmountBuy,
		SpreadAmountSell: q.SpreadAmountSell,
		IOF:              TaxDTO{Name: q.IOF.Name, ValueBps: q.IOF.ValueBps.String()},
		IOFAmount:        q.IOFAmount,
		QuoteCurrency:    CurrencyDTO{Symbol: q.QuoteCurrency.Symbol, Decimal: q.QuoteCurrency.Decimal},
		QuoteAmountBuy:   q.QuoteAmountBuy,
		QuoteAmountSell:  q.QuoteAmountSell,
		BaseCurrency:     CurrencyDTO{Symbol: q.BaseCurrency.Symbol, Decimal: q.BaseCurrency.Decimal},
		BaseAmountBuy:    q.BaseAmountBuy,
		BaseAmountSell:   q.BaseAmountSell,
		CreatedAt:        q.CreatedAt,
	}
}

func bpsString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
