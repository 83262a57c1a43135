package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Every value has a development default so the
// service boots against a local MySQL with no environment at all; production
// deployments are expected to override DATABASE_DSN and JWT_SECRET.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DatabaseDSN  string // full MySQL DSN selecting the backing store
	JWTSecret    string // secret used to sign access tokens
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing (seed command)
	AMQPURL      string // RabbitMQ URL for form.submitted events ("" disables)
}

// Load reads configuration values from environment variables and returns a
// Config. The single DATABASE_DSN variable selects the backing store; when
// absent the fixed local development target is used, mirroring the rest of
// the defaults.
func Load() Config {
	return Config{
		Env:          envStr("APP_ENV", "dev"),
		Port:         envStr("APP_PORT", "8000"),
		DatabaseDSN:  envStr("DATABASE_DSN", "root:admin123@tcp(localhost:3306)/kpa_db?charset=utf8mb4&parseTime=true&loc=UTC"),
		JWTSecret:    envStr("JWT_SECRET", "kpa-dev-secret-change-me"),
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 30),
		BcryptCost:   envInt("BCRYPT_COST", 10),
		AMQPURL:      os.Getenv("RABBITMQ_URL"),
	}
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
