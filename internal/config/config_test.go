package config

import (
	"os"
	"testing"
)

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "DB_PATH", "PORT", "API_BASE", "CORS_ORIGIN", "SEED_ON_START"} {
		t.Setenv(k, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()

	if cfg.Env != "development" || !cfg.IsDev() {
		t.Fatalf("Env=%q, want development", cfg.Env)
	}
	if cfg.DBPath != "./jarvis.db" {
		t.Fatalf("DBPath=%q", cfg.DBPath)
	}
	if cfg.Port != "8001" {
		t.Fatalf("Port=%q", cfg.Port)
	}
	if cfg.APIBase != "/api" {
		t.Fatalf("APIBase=%q", cfg.APIBase)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected seeding in development")
	}
}

func TestLoad_OverridesAndNormalizesAPIBase(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE", "v2/api/")
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGIN", "https://jarvis.example.com")
	t.Setenv("SEED_ON_START", "true")
	chdir(t, t.TempDir())

	cfg := Load()

	if cfg.IsDev() {
		t.Fatalf("production should not be dev")
	}
	if cfg.APIBase != "/v2/api" {
		t.Fatalf("APIBase=%q, want %q", cfg.APIBase, "/v2/api")
	}
	if cfg.Port != "9000" || cfg.CORSOrigin != "https://jarvis.example.com" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("SEED_ON_START=true should enable seeding")
	}
}

func TestLoad_InvalidSeedFlagKeepsDefault(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_ON_START", "maybe")
	chdir(t, t.TempDir())

	if cfg := Load(); cfg.SeedOnStart {
		t.Fatalf("invalid flag should keep production default of no seeding")
	}
}
