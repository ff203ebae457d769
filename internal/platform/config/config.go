package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"ibankit/pkg/iban"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	Environment string
	LogLevel    slog.Level

	// Reporting is the policy used by validation requests that do not name one.
	Reporting iban.Policy

	MaxBatch       int
	BatchWorkers   int
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

const (
	DefaultAddr           = ":8080"
	DefaultEnvironment    = "development"
	DefaultMaxBatch       = 500
	DefaultBatchWorkers   = 8
	DefaultMaxBodyBytes   = 1 << 20
	DefaultRequestTimeout = 30 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
// Unparseable values fall back to the defaults.
func FromEnv() Server {
	cfg := Server{
		Addr:           DefaultAddr,
		Environment:    DefaultEnvironment,
		LogLevel:       slog.LevelInfo,
		Reporting:      iban.Raise,
		MaxBatch:       DefaultMaxBatch,
		BatchWorkers:   DefaultBatchWorkers,
		MaxBodyBytes:   DefaultMaxBodyBytes,
		RequestTimeout: DefaultRequestTimeout,
	}

	if addr := os.Getenv("IBANKIT_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if env := os.Getenv("IBANKIT_ENV"); env != "" {
		cfg.Environment = env
	}
	if policy, err := iban.ParsePolicy(os.Getenv("IBANKIT_REPORTING")); err == nil {
		cfg.Reporting = policy
	}
	if level := os.Getenv("IBANKIT_LOG_LEVEL"); level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err == nil {
			cfg.LogLevel = l
		}
	}
	if n, ok := positiveInt("IBANKIT_MAX_BATCH"); ok {
		cfg.MaxBatch = n
	}
	if n, ok := positiveInt("IBANKIT_BATCH_WORKERS"); ok {
		cfg.BatchWorkers = n
	}
	if n, ok := positiveInt("IBANKIT_MAX_BODY_BYTES"); ok {
		cfg.MaxBodyBytes = int64(n)
	}
	if timeoutStr := os.Getenv("IBANKIT_REQUEST_TIMEOUT"); timeoutStr != "" {
		if d, err := time.ParseDuration(timeoutStr); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}

	return cfg
}

func positiveInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
