package application

import (
	"context"
	"errors"
	"fmt"

	"quotation-service/internal/domain"
)

type TaxResolver struct {
	taxes TaxLookup
}

func NewTaxResolver(taxes TaxLookup) *TaxResolver { return &TaxResolver{taxes: taxes} }

func (r *TaxResolver) Resolve(ctx context.Context, name string) (domain.TaxRule, error) {
	tax, err := r.taxes.ByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.TaxRule{}, fmt.Errorf("%w: %s", domain.ErrTaxNotFound, name)
	}
	if err != nil {
		return domain.TaxRule{}, fmt.Errorf("tax %s: %w", name, err)
	}
	return tax, nil
}
