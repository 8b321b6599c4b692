package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config carries everything read from the environment at startup.
type Config struct {
	Port       string
	SessionKey string
	LogLevel   string

	// SQLite path, used when no DB_HOST is configured.
	SQLitePath string

	// PostgreSQL settings, used when DBHost is non-empty.
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// Load reads .env if present, then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	return &Config{
		Port:       getEnv("PORT", "5000"),
		SessionKey: getEnv("SESSION_KEY", "development-key"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		SQLitePath: getEnv("DATABASE", "./warbler.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
