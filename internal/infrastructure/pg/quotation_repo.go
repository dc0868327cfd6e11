package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quotation-service/internal/application"
	"quotation-service/internal/domain"
	"quotation-service/internal/infrastructure/logx"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// QuotationRepo journals every quotation handed out.
type QuotationRepo struct{ db *DB }

func NewQuotationRepo(db *DB) *QuotationRepo { return &QuotationRepo{db: db} }

func (r *QuotationRepo) Save(ctx context.Context, q domain.Quotation) error {
	spreads, err := json.Marshal(application.ToQuotationDTO(q).Spreads)
	if err != nil {
		return fmt.Errorf("marshal spreads: %w", err)
	}
	const ins = `
        INSERT INTO quotations(
            id, side, provider_name, base, quote,
            price, price_buy, price_sell, partial_buy, partial_sell,
            spread_buy, spread_sell, spread_amount_buy, spread_amount_sell,
            iof_name, iof_bps, iof_amount,
            quote_amount_buy, quote_amount_sell, base_amount_buy, base_amount_sell,
            spreads, created_at)
        VALUES ($1, $2, $3, $4, $5,
                $6, $7, $8, $9, $10,
                $11, $12, $13, $14,
                $15, $16::text::numeric, $17,
                $18, $19, $20, $21,
                $22::text::jsonb, $23)`
	log := logx.WithFields(ctx).With(
		zap.String("repo", "quotation"),
		zap.String("operation", "Save"),
		zap.String("id", q.ID),
	)
	log.Debug("sql.exec_start")
	tag, err := r.db.Pool.Exec(ctx, ins,
		q.ID, string(q.Side), q.ProviderName, q.BaseCurrency.Symbol, q.QuoteCurrency.Symbol,
		q.Price, q.PriceBuy, q.PriceSell, q.PartialBuy, q.PartialSell,
		q.SpreadBuy, q.SpreadSell, q.SpreadAmountBuy, q.SpreadAmountSell,
		q.IOF.Name, q.IOF.ValueBps.String(), q.IOFAmount,
		q.QuoteAmountBuy, q.QuoteAmountSell, q.BaseAmountBuy, q.BaseAmountSell,
		string(spreads), q.CreatedAt,
	)
	if err != nil {
		log.Error("sql.exec_failed", zap.Error(err))
		return err
	}
	log.Debug("sql.exec_success", zap.Int64("rows_affected", tag.RowsAffected()))
	return nil
}

// QuotationRow is the journaled view of a quotation.
type QuotationRow struct {
	ID           string
	Side         domain.Side
	ProviderName string
	Base, Quote  string
	Price        int64
	PriceBuy     int64
	PriceSell    int64
	IOFAmount    int64
}

func (r *QuotationRepo) GetByID(ctx context.Context, id string) (QuotationRow, error) {
	const q = `
        SELECT id::text, side, provider_name, base, quote, price, price_buy, price_sell, iof_amount
        FROM quotations WHERE id=$1`
	var (
		out  QuotationRow
		side string
	)
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(&out.ID, &side, &out.ProviderName, &out.Base, &out.Quote,
		&out.Price, &out.PriceBuy, &out.PriceSell, &out.IOFAmount)
	if errors.Is(err, pgx.ErrNoRows) {
		return QuotationRow{}, domain.ErrNotFound
	}
	if err != nil {
		return QuotationRow{}, err
	}
	out.Side = domain.Side(side)
	return out, nil
}
