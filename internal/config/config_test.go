package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"OPERATION_CURRENCY_SYMBOL", "TAX_NAME", "WORKER_TYPE", "KAFKA_BROKERS", "STREAM_QUOTATION_TTL_MS", "QUOTATION_PARALLEL_LOOKUPS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	require.Equal(t, "BRL", cfg.OperationCurrencySymbol)
	require.Equal(t, "iof", cfg.TaxName)
	require.Equal(t, "all", cfg.WorkerType)
	require.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 30*time.Second, cfg.StreamTTL)
	require.False(t, cfg.ParallelLookups)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPERATION_CURRENCY_SYMBOL", "usd")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("STREAM_POLL_MS", "50")
	t.Setenv("QUOTATION_PARALLEL_LOOKUPS", "true")
	t.Setenv("FAKE_PROVIDER_PRICE", "5.25")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()
	require.Equal(t, "USD", cfg.OperationCurrencySymbol)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 50*time.Millisecond, cfg.StreamPoll)
	require.True(t, cfg.ParallelLookups)
	require.Equal(t, 5.25, cfg.FakeProviderPrice)
	require.Equal(t, 0, cfg.RedisDB)
}

func TestLocation(t *testing.T) {
	require.Equal(t, time.UTC, Config{CalendarTimezone: "Not/AZone"}.Location())
	require.Equal(t, "UTC", Config{CalendarTimezone: "UTC"}.Location().String())
}
