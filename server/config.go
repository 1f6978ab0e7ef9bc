package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process configuration. Flags override environment defaults.
type Config struct {
	Addr          string
	DBPath        string
	LogFile       string
	LogLevel      string
	TickPeriod    time.Duration
	PassTimeout   time.Duration
	DispatchLimit int
	JWTSecret     string
	IssueToken    string // when set, print an admin token for this subject and exit
}

func getEnvDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// LoadConfig builds a Config from the environment and args (without the program name)
func LoadConfig(args []string) (Config, error) {
	tick, err := getEnvDuration("ARCADE_TICK", TickPeriod)
	if err != nil {
		return Config{}, err
	}
	passTimeout, err := getEnvDuration("ARCADE_PASS_TIMEOUT", PassTimeout)
	if err != nil {
		return Config{}, err
	}
	limit, err := getEnvInt("ARCADE_DISPATCH_LIMIT", 32)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	fs := flag.NewFlagSet("arcade-server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", getEnvDefault("ARCADE_ADDR", ":8080"), "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", getEnvDefault("ARCADE_DB", "arcade.db"), "SQLite database path")
	fs.StringVar(&cfg.LogFile, "log", getEnvDefault("ARCADE_LOG", ""), "log file (empty logs to stderr)")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnvDefault("ARCADE_LOG_LEVEL", "info"), "log level")
	fs.DurationVar(&cfg.TickPeriod, "tick", tick, "collision pass period")
	fs.DurationVar(&cfg.PassTimeout, "pass-timeout", passTimeout, "repository time budget per pass")
	fs.IntVar(&cfg.DispatchLimit, "dispatch-limit", limit, "max concurrent consequence dispatches (0 = unlimited)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", getEnvDefault("ARCADE_JWT_SECRET", ""), "admin token secret (default: generated and stored in the database)")
	fs.StringVar(&cfg.IssueToken, "issue-token", "", "print an admin token for this subject and exit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.TickPeriod <= 0 {
		return Config{}, fmt.Errorf("tick period must be positive, got %s", cfg.TickPeriod)
	}
	if cfg.PassTimeout <= 0 {
		return Config{}, fmt.Errorf("pass timeout must be positive, got %s", cfg.PassTimeout)
	}
	if cfg.DispatchLimit < 0 {
		return Config{}, fmt.Errorf("dispatch limit must not be negative, got %d", cfg.DispatchLimit)
	}
	return cfg, nil
}
