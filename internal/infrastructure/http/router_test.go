package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quotation-service/internal/application"
	"quotation-service/internal/domain"

	"github.com/stretchr/testify/require"
)

type stubQuoter struct {
	got application.QuotationRequest
	q   domain.Quotation
	err error
}

func (s *stubQuoter) GetQuotation(_ context.Context, req application.QuotationRequest) (domain.Quotation, error) {
	s.got = req
	return s.q, s.err
}

func setup(q Quoter) (*Server, http.Handler) {
	srv := NewServer(q)
	return srv, NewRouter(srv)
}

func postQuotation(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/quotations", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	_, h := setup(&stubQuoter{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestReadyz(t *testing.T) {
	srv, _ := setup(&stubQuoter{})
	srv.SetReadyCheck(func(context.Context) error { return errors.New("db down") })
	h := NewRouter(srv)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"code":503,"reason":"NOT_READY","message":"db not ready"}`, rec.Body.String())

	srv.SetReadyCheck(func(context.Context) error { return nil })
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetQuotation_OK(t *testing.T) {
	stub := &stubQuoter{q: domain.Quotation{
		ID: "q-1", Side: domain.SideBuy, Price: 10020015, PriceBuy: 10160226,
		BaseCurrency:  domain.Currency{Symbol: "BTC", Decimal: 8},
		QuoteCurrency: domain.Currency{Symbol: "BRL", Decimal: 2},
	}}
	_, h := setup(stub)

	rec := postQuotation(t, h, map[string]any{
		"user_id": "user-1", "amount": 100000, "amount_currency": "BRL", "base_currency": "BTC", "side": "buy",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.SideBuy, stub.got.Side)
	require.Equal(t, int64(100000), stub.got.Amount)

	var out application.QuotationDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "q-1", out.ID)
	require.Equal(t, int64(10160226), out.PriceBuy)
	require.Equal(t, "BTC", out.BaseCurrency.Symbol)
}

func TestGetQuotation_ErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		reason string
	}{
		{domain.ErrMissingData, http.StatusBadRequest, application.CodeMissingData},
		{domain.ErrInvalidAmountCurrency, http.StatusBadRequest, application.CodeInvalidAmountCurrency},
		{domain.ErrStreamQuotationNotFound, http.StatusNotFound, application.CodeStreamQuotationNotFound},
		{domain.ErrSpreadNotFound, http.StatusNotFound, application.CodeSpreadNotFound},
		{domain.ErrTaxNotFound, http.StatusNotFound, application.CodeTaxNotFound},
		{domain.ErrQuotationAmountUnderMinAmount, http.StatusUnprocessableEntity, application.CodeQuotationAmountUnderMinAmount},
		{errors.New("connection reset"), http.StatusInternalServerError, application.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.reason, func(t *testing.T) {
			_, h := setup(&stubQuoter{err: tc.err})
			rec := postQuotation(t, h, map[string]any{"user_id": "u"})
			require.Equal(t, tc.status, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.status, body.Code)
			require.Equal(t, tc.reason, body.Reason)
			require.NotContains(t, body.Message, "connection reset")
		})
	}
}

func TestGetQuotation_BadJSON(t *testing.T) {
	stub := &stubQuoter{}
	_, h := setup(stub)
	req := httptest.NewRequest(http.MethodPost, "/quotations", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, stub.got.UserID)
}

func TestMetricsRoute(t *testing.T) {
	srv, _ := setup(&stubQuoter{})
	srv.SetMetricsHandler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	}))
	h := NewRouter(srv)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, "metrics", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	_, h := setup(&stubQuoter{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes/last", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
