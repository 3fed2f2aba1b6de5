package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort     string
	LogLevel    string
	Environment string

	PostgresHost    string
	PostgresPort    string
	PostgresDB      string
	PostgresUser    string
	PostgresPass    string
	PostgresSSLMode string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:     getenv("APP_PORT", "8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		Environment: getenv("APP_ENV", "development"),

		PostgresHost:    getenv("POSTGRES_HOST", "postgres"),
		PostgresPort:    getenv("POSTGRES_PORT", "5432"),
		PostgresDB:      getenv("POSTGRES_DB", "ministry_budget"),
		PostgresUser:    getenv("POSTGRES_USER", "ministry_budget"),
		PostgresPass:    getenv("POSTGRES_PASS", "ministry_budget"),
		PostgresSSLMode: getenv("POSTGRES_SSLMODE", "disable"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		IdempTTLSecs: 300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDB == "" || c.PostgresUser == "" {
		return errors.New("missing Postgres config (POSTGRES_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.PostgresPort); err != nil {
		return fmt.Errorf("invalid POSTGRES_PORT %q: %w", c.PostgresPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPass, c.PostgresDB, c.PostgresSSLMode)
}
