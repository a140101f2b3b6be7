package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	Env      string
	HTTPPort string
	SeedFile string
}

// Load reads configuration from environment variables with reasonable
// defaults. Callers load .env (if any) before calling this.
func Load() Config {
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	seedFile := os.Getenv("SEED_FILE")
	if seedFile == "" {
		seedFile = "assets/medicines.csv"
	}

	return Config{Env: env, HTTPPort: port, SeedFile: seedFile}
}
