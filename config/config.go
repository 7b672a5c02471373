package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT    string
	DB_URL  string
	APP_URL string

	RAZORPAY_KEY_ID     string
	RAZORPAY_KEY_SECRET string

	SMTP_FROM     string
	SMTP_PASSWORD string
	SMTP_HOST     string
	SMTP_PORT     string

	REDIS_ADDR string

	// Optional. Calendar event creation is disabled when empty.
	GOOGLE_SERVICE_ACCOUNT_JSON string
	GOOGLE_CALENDAR_ID          string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")

	RAZORPAY_KEY_ID = mustEnv("RAZORPAY_KEY_ID")
	RAZORPAY_KEY_SECRET = mustEnv("RAZORPAY_KEY_SECRET")

	SMTP_FROM = getEnv("SMTP_FROM", "")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")
	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")

	REDIS_ADDR = getEnv("REDIS_ADDR", "localhost:6379")

	GOOGLE_SERVICE_ACCOUNT_JSON = getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", "")
	GOOGLE_CALENDAR_ID = getEnv("GOOGLE_CALENDAR_ID", "primary")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
