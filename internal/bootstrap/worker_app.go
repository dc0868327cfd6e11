package bootstrap

import (
	"context"
	"fmt"

	"quotation-service/internal/application"
	"quotation-service/internal/infrastructure/pg"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type WorkerApp func(ctx context.Context) error

// InitWorkerApp selects the background workers by WORKER_TYPE: "stream"
// feeds live quotes, "kafka" answers quotation requests, "all" runs both.
func InitWorkerApp(ctx context.Context) (WorkerApp, func(), error) {
	cfg := ProvideConfig()
	log := ProvideLogger()

	runStream, runKafka, err := workerSelection(cfg.WorkerType)
	if err != nil {
		return nil, nil, err
	}

	db, closeDB, err := ProvideDB(ctx, log, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init db: %w", err)
	}
	rdb, closeRedis := ProvideRedisClient(cfg)
	cleanups := []func(){closeRedis, closeDB}
	stream := ProvideStreamStore(rdb, cfg)

	var workers []application.Worker
	if runStream {
		rp := ProvideRateProvider(cfg, log)
		workers = append(workers, ProvideStreamWorker(pg.NewPairRepo(db), rp, stream, log, cfg))
	}
	if runKafka {
		svc := ProvideQuotationService(ProvideLookups(db, stream), pg.NewQuotationRepo(db), nil, log, cfg)
		ctrl, closeKafka := ProvideKafkaController(svc, ProvideIdempotency(rdb, cfg), log, cfg)
		cleanups = append([]func(){closeKafka}, cleanups...)
		workers = append(workers, ctrl)
	}

	cleanup := func() {
		for _, c := range cleanups {
			c()
		}
	}
	run := func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				w.Start(gctx)
				return nil
			})
		}
		log.Info("workers_started", zap.String("worker_type", cfg.WorkerType), zap.Int("count", len(workers)))
		return g.Wait()
	}
	return run, cleanup, nil
}

func workerSelection(workerType string) (stream, kafka bool, err error) {
	switch workerType {
	case "stream":
		return true, false, nil
	case "kafka":
		return false, true, nil
	case "", "all":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("unsupported WORKER_TYPE=%q", workerType)
	}
}
