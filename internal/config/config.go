package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort      string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	TokenExpires time.Duration
	SMTPHost     string
	SMTPPort     string
	EmailUser    string
	EmailPass    string
	AllowOrigins string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "spicestore"),
		JWTSecret:    getEnv("JWT_TOKEN", "dev-secret-change-me"),
		TokenExpires: getEnvDuration("JWT_TTL_HOURS", 24) * time.Hour,
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		EmailUser:    getEnv("EMAIL_USER", ""),
		EmailPass:    getEnv("EMAIL_PASS", ""),
		AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}
