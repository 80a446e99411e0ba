package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	defaultEnv        = "development"
	defaultDBPath     = "./jarvis.db"
	defaultPort       = "8001"
	defaultAPIBase    = "/api"
	defaultCORSOrigin = "http://localhost:5173"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env         string
	DBPath      string
	Port        string
	APIBase     string
	CORSOrigin  string
	SeedOnStart bool
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: load local dev environment variables.
	// We don't fail if the file is missing; production should use real env injection.
	_ = loadDotEnv(".env")

	cfg := Config{
		Env:        os.Getenv("APP_ENV"),
		DBPath:     os.Getenv("DB_PATH"),
		Port:       os.Getenv("PORT"),
		APIBase:    os.Getenv("API_BASE"),
		CORSOrigin: os.Getenv("CORS_ORIGIN"),
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	cfg.APIBase = "/" + strings.Trim(cfg.APIBase, "/")

	if cfg.CORSOrigin == "" {
		log.Printf("warning: CORS_ORIGIN is not set, using %s", defaultCORSOrigin)
		cfg.CORSOrigin = defaultCORSOrigin
	}

	cfg.SeedOnStart = cfg.IsDev()
	if raw := os.Getenv("SEED_ON_START"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("warning: invalid SEED_ON_START %q, keeping %t", raw, cfg.SeedOnStart)
		} else {
			cfg.SeedOnStart = v
		}
	}

	return cfg
}

// IsDev reports whether the app runs in a development environment.
func (c Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
