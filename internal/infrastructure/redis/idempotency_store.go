package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "quotation_request:"

// Store reserves request IDs so a redelivered message is priced once.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{Client: client, TTL: ttl}
}

func (s *Store) TryReserve(ctx context.Context, key string) (bool, error) {
	ok, err := s.Client.SetNX(ctx, idempotencyPrefix+key, "1", s.TTL).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Release drops a reservation so the request can be retried.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.Client.Del(ctx, idempotencyPrefix+key).Err()
}
