package pg

import (
	"context"

	"quotation-service/internal/domain"
	"quotation-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

type PairRepo struct{ db *DB }

func NewPairRepo(db *DB) *PairRepo { return &PairRepo{db: db} }

// ActivePairs lists enabled pairs with both currencies resolved, highest
// priority first. Pairs whose currencies are inactive are still returned;
// callers decide tradability.
func (r *PairRepo) ActivePairs(ctx context.Context) ([]domain.TradablePair, error) {
	const q = `
        SELECT p.provider_name, p.active,
               b.symbol, b.decimal, b.state,
               c.symbol, c.decimal, c.state
        FROM tradable_pairs p
        JOIN currencies b ON b.symbol = p.base
        JOIN currencies c ON c.symbol = p.quote
        WHERE p.active
        ORDER BY p.priority DESC, p.id`
	log := logx.L().With(zap.String("repo", "pair"), zap.String("operation", "ActivePairs"))
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.TradablePair
	for rows.Next() {
		var p domain.TradablePair
		var baseState, quoteState string
		if err := rows.Scan(&p.ProviderName, &p.Active,
			&p.Base.Symbol, &p.Base.Decimal, &baseState,
			&p.Quote.Symbol, &p.Quote.Decimal, &quoteState,
		); err != nil {
			return nil, err
		}
		p.Base.State = domain.CurrencyState(baseState)
		p.Quote.State = domain.CurrencyState(quoteState)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return nil, err
	}
	log.Debug("sql.query_success", zap.Int("rows", len(out)))
	return out, nil
}

func (r *PairRepo) UpsertCurrency(ctx context.Context, c domain.Currency) error {
	const up = `
        INSERT INTO currencies(symbol, decimal, state)
        VALUES ($1, $2, $3)
        ON CONFLICT (symbol) DO UPDATE
          SET decimal=EXCLUDED.decimal, state=EXCLUDED.state`
	_, err := r.db.Pool.Exec(ctx, up, c.Symbol, c.Decimal, string(c.State))
	return err
}

func (r *PairRepo) UpsertPair(ctx context.Context, p domain.TradablePair, priority int) error {
	const up = `
        INSERT INTO tradable_pairs(base, quote, provider_name, active, priority)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (base, quote, provider_name) DO UPDATE
          SET active=EXCLUDED.active, priority=EXCLUDED.priority`
	_, err := r.db.Pool.Exec(ctx, up, p.Base.Symbol, p.Quote.Symbol, p.ProviderName, p.Active, priority)
	return err
}
