package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	ErrMissingData                   = errors.New("missing data")
	ErrInvalidAmountCurrency         = errors.New("amount currency is neither base nor quote currency")
	ErrStreamQuotationNotFound       = errors.New("stream quotation not found")
	ErrSpreadNotFound                = errors.New("spread not found")
	ErrTaxNotFound                   = errors.New("tax not found")
	ErrQuotationAmountUnderMinAmount = errors.New("quotation amount under min amount")
	ErrAmountOutOfRange              = errors.New("amount out of range")
)
