package config

import "time"

const (
	DefaultShutdownTimeout = 10 * time.Second
	DefaultPGMaxConns      = 5
	DefaultPGMinConns      = 1
	DefaultKafkaMaxWait    = 500 * time.Millisecond
	DefaultKafkaMinBytes   = 1
	DefaultKafkaMaxBytes   = 1 << 20
	DefaultReplyTimeout    = 5 * time.Second
)
