package config

import (
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Host: "localhost", Name: "moradia"},
		Auth:     AuthConfig{JWTSecret: "test-secret"},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.HTTP.Port = 0 }},
		{"port too large", func(c *Config) { c.HTTP.Port = 70000 }},
		{"no database host", func(c *Config) { c.Database.Host = "" }},
		{"no database name", func(c *Config) { c.Database.Name = "" }},
		{"no jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ApplyDefaults()
			tt.mutate(&cfg)

			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_DefaultPageSizeExceedsMax(t *testing.T) {
	cfg := validConfig()
	cfg.Pagination = PaginationConfig{DefaultPageSize: 200, MaxPageSize: 100}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.Pagination.DefaultPageSize != 15 {
		t.Errorf("default page size = %d, want 15", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Pagination.MaxPageSize != 100 {
		t.Errorf("max page size = %d, want 100", cfg.Pagination.MaxPageSize)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("database port = %d, want 5432", cfg.Database.Port)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("token ttl = %d, want 24", cfg.Auth.TokenTTLHours)
	}
	if cfg.AI.TimeoutSec != 30 {
		t.Errorf("ai timeout = %d, want 30", cfg.AI.TimeoutSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MORADIA_TEST_SECRET", "s3cret")

	in := []byte("secret: ${MORADIA_TEST_SECRET}\nhost: ${MORADIA_TEST_MISSING:-localhost}\n")
	out := string(expandEnvVars(in))

	want := "secret: s3cret\nhost: localhost\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "pw", Name: "moradia", SSLMode: "disable"}

	want := "host=db port=5432 user=app password=pw dbname=moradia sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN:\ngot:  %q\nwant: %q", got, want)
	}
}
