package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8091" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8091")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.Market.ProxySymbol != "1321" {
		t.Errorf("ProxySymbol = %q, want %q", cfg.Market.ProxySymbol, "1321")
	}
	if cfg.Market.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want %v", cfg.Market.CacheTTL, time.Hour)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ENV", "testing")

	if _, err := Load(); err == nil {
		t.Error("Load() with invalid ENV should fail")
	}
}

func TestLoad_DatabaseRequiresURL(t *testing.T) {
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("Load() with DB_ENABLED and empty DATABASE_URL should fail")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		fallback string
		want     time.Duration
	}{
		{"valid value", "15m", "1h", 15 * time.Minute},
		{"empty uses default", "", "1h", time.Hour},
		{"invalid uses default", "soon", "30s", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv("TEST_DURATION", tt.envValue)
			}
			got := getEnvAsDuration("TEST_DURATION", tt.fallback)
			if got != tt.want {
				t.Errorf("getEnvAsDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_LIST", "7203, 6758,,9984 ")

	got := getEnvAsList("TEST_LIST", nil)
	want := []string{"7203", "6758", "9984"}

	if len(got) != len(want) {
		t.Fatalf("getEnvAsList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("getEnvAsList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetEnvAsList_Empty(t *testing.T) {
	if got := getEnvAsList("TEST_LIST_UNSET", nil); got != nil {
		t.Errorf("getEnvAsList() = %v, want nil", got)
	}
}
