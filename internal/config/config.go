package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	Database DatabaseConfig
	Auth     AuthConfig
	// SlotGranularity is the width of one availability slot. System-wide,
	// not per-call.
	SlotGranularity time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "coursehub"),
			Password: getEnv("DB_PASSWORD", "coursehub"),
			DBName:   getEnv("DB_NAME", "coursehub"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:  time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 720)) * time.Minute,
		},
		SlotGranularity: time.Duration(getEnvInt("SLOT_GRANULARITY_MINUTES", 30)) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
