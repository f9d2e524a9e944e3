package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	AppEnv         string
	BackendBaseURL string
	JWTSecretKey   string
	PaymentDelay   time.Duration
}

const defaultPaymentDelay = 2 * time.Second

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		JWTSecretKey:   os.Getenv("JWT_SECRET_KEY"),
		PaymentDelay:   defaultPaymentDelay,
	}

	if ms := os.Getenv("PAYMENT_DELAY_MS"); ms != "" {
		n, err := strconv.Atoi(ms)
		if err != nil {
			log.Fatalf("invalid PAYMENT_DELAY_MS: %v", err)
		}
		cfg.PaymentDelay = time.Duration(n) * time.Millisecond
	}

	if cfg.BackendBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
