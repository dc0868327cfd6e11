package domain

import "github.com/shopspring/decimal"

// TaxRule is a named transaction tax, e.g. "iof".
type TaxRule struct {
	Name     string          `json:"name"`
	ValueBps decimal.Decimal `json:"value_bps"`
}

func (t TaxRule) Fraction() decimal.Decimal { return BpsToFraction(t.ValueBps) }
