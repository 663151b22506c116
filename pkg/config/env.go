// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvironmentConfig holds the server-process settings that come from the
// environment rather than the game config file: where to listen, how fast
// to broadcast, and the network client's circuit breaker tuning.
type EnvironmentConfig struct {
	ServerAddress     string
	SnapshotInterval  time.Duration
	MaxTimeScale      float64
	MaxSimDeltaS      float64
	MaxClients        int
	CommandsPerMinute int

	CircuitBreakerMaxRequests         int
	CircuitBreakerInterval            time.Duration
	CircuitBreakerTimeout             time.Duration
	CircuitBreakerMaxConsecutiveFails int
}

// LoadConfigFromEnv builds an EnvironmentConfig from GGW_* environment
// variables, applying defaults for anything unset.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		ServerAddress:     "127.0.0.1:40000",
		SnapshotInterval:  50 * time.Millisecond,
		MaxTimeScale:      10000.0,
		MaxSimDeltaS:      1.0,
		MaxClients:        16,
		CommandsPerMinute: 600,

		CircuitBreakerMaxRequests:         3,
		CircuitBreakerInterval:            60 * time.Second,
		CircuitBreakerTimeout:             30 * time.Second,
		CircuitBreakerMaxConsecutiveFails: 5,
	}

	if addr := os.Getenv("GGW_SERVER_ADDR"); addr != "" {
		cfg.ServerAddress = addr
	}
	if v := os.Getenv("GGW_SNAPSHOT_INTERVAL_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid GGW_SNAPSHOT_INTERVAL_MS: %q", v)
		}
		cfg.SnapshotInterval = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("GGW_MAX_TIME_SCALE"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			return nil, fmt.Errorf("invalid GGW_MAX_TIME_SCALE: %q", v)
		}
		cfg.MaxTimeScale = scale
	}
	if v := os.Getenv("GGW_MAX_CLIENTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid GGW_MAX_CLIENTS: %q", v)
		}
		cfg.MaxClients = n
	}
	if v := os.Getenv("GGW_MAX_SIM_DELTA_S"); v != "" {
		delta, err := strconv.ParseFloat(v, 64)
		if err != nil || delta <= 0 {
			return nil, fmt.Errorf("invalid GGW_MAX_SIM_DELTA_S: %q", v)
		}
		cfg.MaxSimDeltaS = delta
	}
	if v := os.Getenv("GGW_COMMANDS_PER_MINUTE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid GGW_COMMANDS_PER_MINUTE: %q", v)
		}
		cfg.CommandsPerMinute = n
	}
	if v := os.Getenv("GGW_CB_MAX_REQUESTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid GGW_CB_MAX_REQUESTS: %q", v)
		}
		cfg.CircuitBreakerMaxRequests = n
	}
	if v := os.Getenv("GGW_CB_INTERVAL_S"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("invalid GGW_CB_INTERVAL_S: %q", v)
		}
		cfg.CircuitBreakerInterval = time.Duration(s) * time.Second
	}
	if v := os.Getenv("GGW_CB_TIMEOUT_S"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil || s <= 0 {
			return nil, fmt.Errorf("invalid GGW_CB_TIMEOUT_S: %q", v)
		}
		cfg.CircuitBreakerTimeout = time.Duration(s) * time.Second
	}
	if v := os.Getenv("GGW_CB_MAX_CONSECUTIVE_FAILS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid GGW_CB_MAX_CONSECUTIVE_FAILS: %q", v)
		}
		cfg.CircuitBreakerMaxConsecutiveFails = n
	}

	return cfg, nil
}
