package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("SEED_FILE", "")

	cfg := Load()
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080", cfg.HTTPPort)
	}
	if cfg.SeedFile != "assets/medicines.csv" {
		t.Errorf("SeedFile = %q, want assets/medicines.csv", cfg.SeedFile)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_FILE", "testdata/meds.csv")

	cfg := Load()
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.SeedFile != "testdata/meds.csv" {
		t.Errorf("SeedFile = %q, want testdata/meds.csv", cfg.SeedFile)
	}
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg := Load()
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want 8080 fallback", cfg.HTTPPort)
	}
}
