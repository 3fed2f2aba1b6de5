package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.PostgresDB != "ministry_budget" {
		t.Errorf("PostgresDB = %q", c.PostgresDB)
	}
	if c.IdempTTLSecs != 300 {
		t.Errorf("IdempTTLSecs = %d, want 300", c.IdempTTLSecs)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")

	c := Load()
	if c.AppPort != "9090" {
		t.Errorf("AppPort = %q, want 9090", c.AppPort)
	}
	if c.PostgresHost != "db.internal" {
		t.Errorf("PostgresHost = %q", c.PostgresHost)
	}
	if c.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", c.RedisDB)
	}
	if c.IdempTTLSecs != 60 {
		t.Errorf("IdempTTLSecs = %d, want 60", c.IdempTTLSecs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing db", func(c *Config) { c.PostgresDB = "" }, "Postgres"},
		{"bad port", func(c *Config) { c.PostgresPort = "not-a-port" }, "POSTGRES_PORT"},
		{"missing app port", func(c *Config) { c.AppPort = "" }, "APP_PORT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Load()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate() = %v, want mention of %s", err, tc.wantErr)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	c := Load()
	dsn := c.PostgresDSN()
	for _, part := range []string{"host=postgres", "port=5432", "dbname=ministry_budget", "sslmode=disable", "TimeZone=UTC"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}
}
