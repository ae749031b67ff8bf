package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	SMTPHost string
	SMTPPort string
	SMTPFrom string

	// PaymentTestMode forces every simulated charge to succeed.
	PaymentTestMode bool
	// PaymentSuccessRate is the probability of a simulated charge
	// succeeding when test mode is off (0..1).
	PaymentSuccessRate float64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPFrom: os.Getenv("SMTP_FROM"),

		PaymentTestMode:    os.Getenv("PAYMENT_TEST_MODE") == "true",
		PaymentSuccessRate: envFloat("PAYMENT_SUCCESS_RATE", 0.9),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %.2f", key, raw, fallback)
		return fallback
	}
	return v
}
