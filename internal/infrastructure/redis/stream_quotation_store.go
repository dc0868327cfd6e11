package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quotation-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// StreamQuotationStore keeps the latest market quote per pair and provider.
// Entries expire after TTL, so a stalled feed reads as "no live quote".
type StreamQuotationStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStreamQuotationStore(client *redis.Client, ttl time.Duration) *StreamQuotationStore {
	return &StreamQuotationStore{Client: client, TTL: ttl}
}

func streamKey(provider, base, quote string) string {
	return fmt.Sprintf("stream_quotation:%s:%s:%s", strings.ToLower(provider), base, quote)
}

func (s *StreamQuotationStore) Save(ctx context.Context, q domain.MarketQuote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, streamKey(q.ProviderName, q.Base, q.Quote), raw, s.TTL).Err()
}

// ByPair returns domain.ErrNotFound when the quote is absent or expired.
func (s *StreamQuotationStore) ByPair(ctx context.Context, base, quote, provider string) (domain.MarketQuote, error) {
	raw, err := s.Client.Get(ctx, streamKey(provider, base, quote)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.MarketQuote{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.MarketQuote{}, err
	}
	var q domain.MarketQuote
	if err := json.Unmarshal(raw, &q); err != nil {
		return domain.MarketQuote{}, fmt.Errorf("decode %s: %w", streamKey(provider, base, quote), err)
	}
	return q, nil
}
