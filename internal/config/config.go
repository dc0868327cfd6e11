package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Pricing
	OperationCurrencySymbol string
	TaxName                 string
	CalendarTimezone        string
	ParallelLookups         bool
	// API
	Port           string
	DatabaseURL    string
	RequestTimeout time.Duration
	// Provider
	Provider          string
	ExchangeAPIBase   string
	ExchangeAPIKey    string
	FakeProviderPrice float64
	// Worker
	WorkerType   string
	StreamPoll   time.Duration
	StreamTTL    time.Duration
	KafkaBrokers []string
	KafkaGroupID string
	KafkaTopic   string
	KafkaReplies string
	// Redis (stream quotations, idempotency)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func atofDef(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func boolDef(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

func millis(key string, def int) time.Duration {
	return time.Duration(atoiDef(getEnv(key, ""), def)) * time.Millisecond
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:                     getEnv("ENV", "local"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		OperationCurrencySymbol: strings.ToUpper(getEnv("OPERATION_CURRENCY_SYMBOL", "BRL")),
		TaxName:                 getEnv("TAX_NAME", "iof"),
		CalendarTimezone:        getEnv("CALENDAR_TIMEZONE", "America/Sao_Paulo"),
		ParallelLookups:         boolDef(getEnv("QUOTATION_PARALLEL_LOOKUPS", ""), false),
		Port:                    getEnv("PORT", "8080"),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		RequestTimeout:          millis("REQUEST_TIMEOUT_MS", 3000),
		Provider:                getEnv("PROVIDER", "fake"),
		ExchangeAPIBase:         getEnv("EXCHANGE_API_BASE", "https://api.exchangeratesapi.io"),
		ExchangeAPIKey:          getEnv("EXCHANGE_API_KEY", ""),
		FakeProviderPrice:       atofDef(getEnv("FAKE_PROVIDER_PRICE", ""), 100200.15),
		WorkerType:              getEnv("WORKER_TYPE", "all"),
		StreamPoll:              millis("STREAM_POLL_MS", 1000),
		StreamTTL:               millis("STREAM_QUOTATION_TTL_MS", 30000),
		KafkaBrokers:            splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaGroupID:            getEnv("KAFKA_GROUP_ID", "quotation-service"),
		KafkaTopic:              getEnv("KAFKA_QUOTATION_TOPIC", "quotation.requests"),
		KafkaReplies:            getEnv("KAFKA_QUOTATION_REPLY_TOPIC", "quotation.replies"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisTTL:                millis("IDEMPOTENCY_TTL_MS", 86400000),
	}
}

// Location resolves CalendarTimezone, falling back to UTC when the zone
// database does not know it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.CalendarTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
