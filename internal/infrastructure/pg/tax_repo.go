package pg

import (
	"context"
	"errors"

	"quotation-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type TaxRepo struct{ db *DB }

func NewTaxRepo(db *DB) *TaxRepo { return &TaxRepo{db: db} }

func (r *TaxRepo) ByName(ctx context.Context, name string) (domain.TaxRule, error) {
	const q = `SELECT name, value_bps::text FROM taxes WHERE name=$1`
	var (
		out domain.TaxRule
		raw string
	)
	err := r.db.Pool.QueryRow(ctx, q, name).Scan(&out.Name, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TaxRule{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.TaxRule{}, err
	}
	if out.ValueBps, err = decimal.NewFromString(raw); err != nil {
		return domain.TaxRule{}, err
	}
	return out, nil
}

func (r *TaxRepo) Upsert(ctx context.Context, t domain.TaxRule) error {
	const up = `
        INSERT INTO taxes(name, value_bps) VALUES ($1, $2::text::numeric)
        ON CONFLICT (name) DO UPDATE SET value_bps=EXCLUDED.value_bps`
	_, err := r.db.Pool.Exec(ctx, up, t.Name, t.ValueBps.String())
	return err
}
