package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"quotation-service/internal/application"
	"quotation-service/internal/domain"
	"quotation-service/internal/infrastructure/httpx"
)

const (
	exchangeRatesLatestPath = "/v1/latest"
	ExchangeRatesAPIName    = "exchangeratesapi"
)

// ExchangeRatesAPIProvider quotes a pair from a single "latest" snapshot.
// The API publishes one rate per symbol, so Buy and Sell are equal.
type ExchangeRatesAPIProvider struct {
	BaseURL string
	APIKey  string
	Client  *httpx.Client
}

var _ application.RateProvider = (*ExchangeRatesAPIProvider)(nil)

type xrLatestResp struct {
	Success   bool               `json:"success"`
	Timestamp int64              `json:"timestamp"`
	Base      string             `json:"base"`
	Date      string             `json:"date"`
	Rates     map[string]float64 `json:"rates"`
	Error     *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

func (p *ExchangeRatesAPIProvider) Name() string { return ExchangeRatesAPIName }

func (p *ExchangeRatesAPIProvider) Get(ctx context.Context, base, quote string) (domain.MarketQuote, error) {
	if p.BaseURL == "" || p.APIKey == "" {
		return domain.MarketQuote{}, errors.New("exchangeratesapi: missing configuration")
	}
	if !domain.ValidateSymbol(base) || !domain.ValidateSymbol(quote) {
		return domain.MarketQuote{}, fmt.Errorf("exchangeratesapi: invalid pair %s/%s", base, quote)
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.MarketQuote{}, fmt.Errorf("exchangeratesapi: invalid base url: %w", err)
	}
	u.Path = exchangeRatesLatestPath
	q := u.Query()
	q.Set("access_key", p.APIKey)
	q.Set("symbols", base+","+quote)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.MarketQuote{}, fmt.Errorf("exchangeratesapi: create request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var body xrLatestResp
	if err := client.DoJSON(ctx, req, &body); err != nil {
		return domain.MarketQuote{}, fmt.Errorf("exchangeratesapi: %w", err)
	}
	if !body.Success {
		if body.Error != nil {
			return domain.MarketQuote{}, fmt.Errorf("exchangeratesapi: %d %s", body.Error.Code, body.Error.Info)
		}
		return domain.MarketQuote{}, errors.New("exchangeratesapi: unsuccessful response")
	}

	// rates are relative to body.Base
	rate := func(c string) (float64, error) {
		if c == body.Base {
			return 1.0, nil
		}
		v, ok := body.Rates[c]
		if !ok {
			return 0, fmt.Errorf("exchangeratesapi: missing rate for %s", c)
		}
		if v <= 0 {
			return 0, fmt.Errorf("exchangeratesapi: non-positive rate for %s", c)
		}
		return v, nil
	}
	toBase, err := rate(base)
	if err != nil {
		return domain.MarketQuote{}, err
	}
	toQuote, err := rate(quote)
	if err != nil {
		return domain.MarketQuote{}, err
	}
	price := toQuote / toBase

	updatedAt := time.Now().UTC()
	if body.Timestamp > 0 {
		updatedAt = time.Unix(body.Timestamp, 0).UTC()
	}
	return domain.MarketQuote{
		Base:         base,
		Quote:        quote,
		ProviderName: ExchangeRatesAPIName,
		Buy:          price,
		Sell:         price,
		UpdatedAt:    updatedAt,
	}, nil
}
