package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"quotation-service/internal/application"
	"quotation-service/internal/config"
	"quotation-service/internal/infrastructure/httpx"
	kafkabus "quotation-service/internal/infrastructure/kafka"
	"quotation-service/internal/infrastructure/logx"
	"quotation-service/internal/infrastructure/metrics"
	"quotation-service/internal/infrastructure/pg"
	"quotation-service/internal/infrastructure/provider"
	redisstore "quotation-service/internal/infrastructure/redis"
	"quotation-service/internal/infrastructure/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrMissingDBURL = errors.New("DATABASE_URL is required")

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	cleanup := func() {
		log.Info("closing pg")
		db.Close()
	}
	return db, cleanup, nil
}

func ProvideRedisClient(cfg config.Config) (*redis.Client, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return client, func() { _ = client.Close() }
}

func ProvideIdempotency(client *redis.Client, cfg config.Config) application.IdempotencyStore {
	if client == nil {
		return application.NoopIdempotency{}
	}
	return redisstore.New(client, cfg.RedisTTL)
}

func ProvideStreamStore(client *redis.Client, cfg config.Config) *redisstore.StreamQuotationStore {
	return redisstore.NewStreamQuotationStore(client, cfg.StreamTTL)
}

// ProvideLookups wires the reference data repositories and the live quote
// store into the engine's collaborators.
func ProvideLookups(db *pg.DB, quotes application.MarketQuoteLookup) application.Lookups {
	return application.Lookups{
		Pairs:    pg.NewPairRepo(db),
		Quotes:   quotes,
		Spreads:  pg.NewSpreadRepo(db),
		Taxes:    pg.NewTaxRepo(db),
		Holidays: pg.NewHolidayRepo(db),
	}
}

func ProvideQuotationService(l application.Lookups, store application.QuotationStore, obs application.Observer, log *zap.Logger, cfg config.Config) *application.QuotationService {
	opts := []application.Option{
		application.WithLogger(log),
		application.WithLocation(cfg.Location()),
		application.WithParallelLookups(cfg.ParallelLookups),
	}
	if store != nil {
		opts = append(opts, application.WithStore(store))
	}
	if obs != nil {
		opts = append(opts, application.WithObserver(obs))
	}
	return application.NewQuotationService(l, application.Settings{
		OperationCurrencySymbol: cfg.OperationCurrencySymbol,
		TaxName:                 cfg.TaxName,
	}, opts...)
}

func ProvideMetrics() *metrics.Recorder { return metrics.New() }

func ProvideRateProvider(cfg config.Config, log *zap.Logger) application.RateProvider {
	switch cfg.Provider {
	case provider.ExchangeRatesAPIName:
		return &provider.ExchangeRatesAPIProvider{
			BaseURL: cfg.ExchangeAPIBase,
			APIKey:  cfg.ExchangeAPIKey,
			Client: &httpx.Client{
				HTTP: &http.Client{Timeout: 4 * time.Second},
				Log:  log,
			},
		}
	default:
		return provider.NewFake(cfg.FakeProviderPrice)
	}
}

func ProvideStreamWorker(pairs application.TradablePairLookup, rp application.RateProvider, quotes application.MarketQuoteStore, log *zap.Logger, cfg config.Config) *worker.StreamWorker {
	return &worker.StreamWorker{
		Pairs:        pairs,
		Provider:     rp,
		Quotes:       quotes,
		PollEvery:    cfg.StreamPoll,
		FetchTimeout: cfg.RequestTimeout,
		Log:          log,
	}
}

func ProvideKafkaController(q kafkabus.Quoter, idem application.IdempotencyStore, log *zap.Logger, cfg config.Config) (*kafkabus.QuotationController, func()) {
	kcfg := kafkabus.Config{
		Brokers:    cfg.KafkaBrokers,
		GroupID:    cfg.KafkaGroupID,
		Topic:      cfg.KafkaTopic,
		ReplyTopic: cfg.KafkaReplies,
	}
	reader := kafkabus.NewReader(kcfg)
	writer := kafkabus.NewWriter(kcfg)
	cleanup := func() {
		_ = reader.Close()
		_ = writer.Close()
	}
	return &kafkabus.QuotationController{
		Reader:  reader,
		Writer:  writer,
		Quoter:  q,
		Idem:    idem,
		Timeout: cfg.RequestTimeout,
		Log:     log,
	}, cleanup
}
