package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBPath    string
	SecretKey string
	Timezone  string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment, after a best-effort .env
// load for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", filepath.Join("data", "cyclia.db")),
		SecretKey: getEnv("SECRET_KEY", "change_me_in_production"),
		Timezone:  getEnv("TZ", "UTC"),
		TokenTTL:  getDurationEnv("TOKEN_TTL", 7*24*time.Hour),
	}
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
