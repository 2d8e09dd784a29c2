package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not overwrite).
//
// Recognized variables:
//
//	EASESHOP_STORE_PATH   SQLite store file path
//	EASESHOP_SECRET_KEY   session signing secret
//	EASESHOP_SESSION_TTL  session lifetime, Go duration ("24h")
//	EASESHOP_RESET_TTL    reset token lifetime, Go duration ("15m")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EASESHOP_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("EASESHOP_SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("EASESHOP_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = d
		}
	}
	if v := os.Getenv("EASESHOP_RESET_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ResetTokenTTL = d
		}
	}
}
