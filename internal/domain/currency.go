package domain

import "regexp"

type CurrencyState string

const (
	CurrencyStateActive   CurrencyState = "active"
	CurrencyStateInactive CurrencyState = "inactive"
)

// Currency is immutable reference data. Decimal is the minor-unit exponent
// (2 for fiat, 8 for BTC).
type Currency struct {
	Symbol  string
	Decimal int32
	State   CurrencyState
}

func (c Currency) IsActive() bool { return c.State == CurrencyStateActive }

var symbolRe = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// ValidateSymbol reports whether s looks like an upper-case currency symbol.
func ValidateSymbol(s string) bool {
	return symbolRe.MatchString(s)
}
