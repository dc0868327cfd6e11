package bootstrap

import (
	"context"
	"net/http"

	httpserver "quotation-service/internal/infrastructure/http"
	"quotation-service/internal/infrastructure/pg"
)

// InitAPI builds the HTTP handler serving quotations, probes and metrics.
func InitAPI(ctx context.Context) (http.Handler, func(), error) {
	cfg := ProvideConfig()
	log := ProvideLogger()

	db, closeDB, err := ProvideDB(ctx, log, cfg)
	if err != nil {
		return nil, nil, err
	}
	rdb, closeRedis := ProvideRedisClient(cfg)
	cleanup := func() {
		closeRedis()
		closeDB()
	}

	rec := ProvideMetrics()
	svc := ProvideQuotationService(
		ProvideLookups(db, ProvideStreamStore(rdb, cfg)),
		pg.NewQuotationRepo(db),
		rec,
		log,
		cfg,
	)
	srv := httpserver.NewServer(svc)
	srv.SetReadyCheck(db.Ping)
	srv.SetMetricsHandler(rec.Handler())
	return httpserver.NewRouter(srv), cleanup, nil
}
