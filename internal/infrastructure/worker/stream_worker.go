package worker

import (
	"context"
	"strings"
	"time"

	"quotation-service/internal/application"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ application.Worker = (*StreamWorker)(nil)

// StreamWorker keeps the stream quotation store fed: on every tick it asks the
// provider for each active pair it serves and stores the result.
type StreamWorker struct {
	Pairs    application.TradablePairLookup
	Provider application.RateProvider
	Quotes   application.MarketQuoteStore

	PollEvery    time.Duration
	FetchTimeout time.Duration
	Concurrency  int
	Log          *zap.Logger
}

func (w *StreamWorker) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("worker", "stream"), zap.String("provider", w.Provider.Name()))
	every := w.pollEvery()
	t := time.NewTicker(every)
	defer t.Stop()

	log.Info("stream_worker_started", zap.Duration("poll_every", every))
	w.Tick(ctx, log)
	for {
		select {
		case <-ctx.Done():
			log.Info("stream_worker_stopped")
			return
		case <-t.C:
			w.Tick(ctx, log)
		}
	}
}

// Tick refreshes every pair once. Failures are logged per pair and never stop
// the remaining fetches.
func (w *StreamWorker) Tick(ctx context.Context, log *zap.Logger) (refreshed int) {
	pairs, err := w.Pairs.ActivePairs(ctx)
	if err != nil {
		log.Warn("pairs_failed", zap.Error(err))
		return 0
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency())
	done := make(chan struct{}, len(pairs))
	for _, p := range pairs {
		if !p.Tradable() || !strings.EqualFold(p.ProviderName, w.Provider.Name()) {
			continue
		}
		p := p
		g.Go(func() error {
			c, cancel := context.WithTimeout(gctx, w.fetchTimeout())
			defer cancel()
			q, err := w.Provider.Get(c, p.Base.Symbol, p.Quote.Symbol)
			if err != nil {
				log.Warn("fetch_failed", zap.String("pair", p.String()), zap.Error(err))
				return nil
			}
			q.ProviderName = p.ProviderName
			if err := w.Quotes.Save(c, q); err != nil {
				log.Warn("save_failed", zap.String("pair", p.String()), zap.Error(err))
				return nil
			}
			done <- struct{}{}
			return nil
		})
	}
	_ = g.Wait()
	close(done)
	for range done {
		refreshed++
	}
	log.Debug("stream_tick_done", zap.Int("refreshed", refreshed))
	return refreshed
}

func (w *StreamWorker) pollEvery() time.Duration {
	if w.PollEvery <= 0 {
		return time.Second
	}
	return w.PollEvery
}

func (w *StreamWorker) concurrency() int {
	if w.Concurrency <= 0 {
		return 4
	}
	return w.Concurrency
}

func (w *StreamWorker) fetchTimeout() time.Duration {
	if w.FetchTimeout <= 0 {
		return 5 * time.Second
	}
	return w.FetchTimeout
}
