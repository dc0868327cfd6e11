package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"quotation-service/internal/application"
	"quotation-service/internal/domain"
	"quotation-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

// Quoter prices one request.
type Quoter interface {
	GetQuotation(ctx context.Context, req application.QuotationRequest) (domain.Quotation, error)
}

type Server struct {
	svc     Quoter
	ping    func(ctx context.Context) error
	metrics http.Handler
}

func NewServer(svc Quoter) *Server { return &Server{svc: svc} }

// SetReadyCheck installs the /readyz probe, usually a database ping.
func (s *Server) SetReadyCheck(fn func(ctx context.Context) error) { s.ping = fn }

// SetMetricsHandler exposes h on /metrics.
func (s *Server) SetMetricsHandler(h http.Handler) { s.metrics = h }

func (s *Server) GetQuotation(w http.ResponseWriter, r *http.Request) {
	var body application.QuotationRequestDTO
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, application.CodeMissingData, "invalid JSON body")
		return
	}
	q, err := s.svc.GetQuotation(r.Context(), body.ToRequest())
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logx.WithFields(r.Context()).Error("quotation.failed", zap.Error(err))
			writeError(w, status, application.CodeInternal, http.StatusText(status))
			return
		}
		writeError(w, status, application.ErrorCode(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, application.ToQuotationDTO(q))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingData), errors.Is(err, domain.ErrInvalidAmountCurrency):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStreamQuotationNotFound),
		errors.Is(err, domain.ErrSpreadNotFound),
		errors.Is(err, domain.ErrTaxNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrQuotationAmountUnderMinAmount):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, reason, msg string) {
	writeJSON(w, status, errorBody{Code: status, Reason: reason, Message: msg})
}
