package pg

import (
	"context"
	"fmt"

	"quotation-service/internal/domain"
	"quotation-service/internal/infrastructure/logx"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SpreadRepo struct{ db *DB }

func NewSpreadRepo(db *DB) *SpreadRepo { return &SpreadRepo{db: db} }

// ByUserAndCurrencies returns the global rules of the pair followed by the
// user's own rules.
func (r *SpreadRepo) ByUserAndCurrencies(ctx context.Context, userID, base, quote string) ([]domain.SpreadRule, error) {
	const q = `
        SELECT id::text, user_id, base, quote,
               buy::text, sell::text, off_market_buy::text, off_market_sell::text,
               COALESCE(off_market_time_start, ''), COALESCE(off_market_time_end, '')
        FROM spreads
        WHERE base=$2 AND quote=$3 AND (user_id IS NULL OR user_id=$1)
        ORDER BY user_id NULLS FIRST, created_at, id`
	log := logx.L().With(
		zap.String("repo", "spread"),
		zap.String("operation", "ByUserAndCurrencies"),
		zap.String("user_id", userID),
		zap.String("pair", base+"/"+quote),
	)
	rows, err := r.db.Pool.Query(ctx, q, userID, base, quote)
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.SpreadRule
	for rows.Next() {
		var s domain.SpreadRule
		var buy, sell, omBuy, omSell *string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Base, &s.Quote,
			&buy, &sell, &omBuy, &omSell,
			&s.OffMarketTimeStart, &s.OffMarketTimeEnd,
		); err != nil {
			return nil, err
		}
		for _, f := range []struct {
			dst *decimal.NullDecimal
			src *string
		}{{&s.BuyBps, buy}, {&s.SellBps, sell}, {&s.OffMarketBuyBps, omBuy}, {&s.OffMarketSellBps, omSell}} {
			if *f.dst, err = parseNullDecimal(f.src); err != nil {
				return nil, fmt.Errorf("spread %s: %w", s.ID, err)
			}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	log.Debug("sql.query_success", zap.Int("rows", len(out)))
	return out, nil
}

// Insert stores s, assigning an ID when it has none.
func (r *SpreadRepo) Insert(ctx context.Context, s domain.SpreadRule) (string, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	const ins = `
        INSERT INTO spreads(id, user_id, base, quote, buy, sell, off_market_buy, off_market_sell,
                            off_market_time_start, off_market_time_end)
        VALUES ($1, $2, $3, $4, $5::text::numeric, $6::text::numeric, $7::text::numeric, $8::text::numeric, NULLIF($9, ''), NULLIF($10, ''))`
	_, err := r.db.Pool.Exec(ctx, ins, s.ID, s.UserID, s.Base, s.Quote,
		nullDecimalText(s.BuyBps), nullDecimalText(s.SellBps),
		nullDecimalText(s.OffMarketBuyBps), nullDecimalText(s.OffMarketSellBps),
		s.OffMarketTimeStart, s.OffMarketTimeEnd,
	)
	if err != nil {
		return "", err
	}
	return s.ID, nil
}

func parseNullDecimal(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func nullDecimalText(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}
