package pg

import (
	"context"
	"time"

	"quotation-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

type HolidayRepo struct{ db *DB }

func NewHolidayRepo(db *DB) *HolidayRepo { return &HolidayRepo{db: db} }

// IsHoliday checks the calendar date of t in t's own location.
func (r *HolidayRepo) IsHoliday(ctx context.Context, t time.Time) (bool, error) {
	day := t.Format(time.DateOnly)
	log := logx.L().With(
		zap.String("repo", "holiday"),
		zap.String("operation", "IsHoliday"),
		zap.String("day", day),
	)
	var ok bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM holidays WHERE day=$1::text::date)`,
		day,
	).Scan(&ok)
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (r *HolidayRepo) Add(ctx context.Context, day time.Time, description string) error {
	d := day.Format(time.DateOnly)
	log := logx.L().With(
		zap.String("repo", "holiday"),
		zap.String("operation", "Add"),
		zap.String("day", d),
	)
	_, err := r.db.Pool.Exec(ctx, `
        INSERT INTO holidays(day, description) VALUES ($1::text::date, $2)
        ON CONFLICT (day) DO UPDATE SET description=EXCLUDED.description
    `, d, description)
	if err != nil {
		log.Error("sql.query_failed", zap.Error(err))
		return err
	}
	return nil
}
