package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, if present; real environment
// variables win over the file.
//
// Recognized variables:
//
//	HEREJPG_ADDR            HTTP bind address
//	HEREJPG_DATABASE_DSN    PostgreSQL DSN
//	HEREJPG_SECRET_KEY      session token HMAC secret
//	HEREJPG_TOKEN_VALIDITY  session token lifetime (Go duration, e.g. "12h")
//	HEREJPG_COOKIE_SECURE   "true" to mark the session cookie Secure
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("HEREJPG_ADDR"); v != "" {
		config.EndpointAddrHTTP = v
	}
	if v := os.Getenv("HEREJPG_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("HEREJPG_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("HEREJPG_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("HEREJPG_COOKIE_SECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.CookieSecure = b
		}
	}
}
