package application

import (
	"errors"

	"quotation-service/internal/domain"
)

const (
	CodeOK                            = "OK"
	CodeMissingData                   = "MISSING_DATA"
	CodeInvalidAmountCurrency         = "INVALID_AMOUNT_CURRENCY"
	CodeStreamQuotationNotFound       = "STREAM_QUOTATION_NOT_FOUND"
	CodeSpreadNotFound                = "SPREAD_NOT_FOUND"
	CodeTaxNotFound                   = "TAX_NOT_FOUND"
	CodeQuotationAmountUnderMinAmount = "QUOTATION_AMOUNT_UNDER_MIN_AMOUNT"
	CodeInternal                      = "INTERNAL"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrMissingData, CodeMissingData},
	{domain.ErrInvalidAmountCurrency, CodeInvalidAmountCurrency},
	{domain.ErrStreamQuotationNotFound, CodeStreamQuotationNotFound},
	{domain.ErrSpreadNotFound, CodeSpreadNotFound},
	{domain.ErrTaxNotFound, CodeTaxNotFound},
	{domain.ErrQuotationAmountUnderMinAmount, CodeQuotationAmountUnderMinAmount},
}

// ErrorCode maps an error returned by GetQuotation to a stable code shared by
// every transport. Nil maps to CodeOK, unknown errors to CodeInternal.
func ErrorCode(err error) string {
	if err == nil {
		return CodeOK
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}
