package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("BACKEND_BASE_URL", "http://localhost:8081")
	t.Setenv("JWT_SECRET_KEY", "secret")

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PAYMENT_DELAY_MS", "")

		cfg := LoadConfig()
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "http://localhost:8081", cfg.BackendBaseURL)
		assert.Equal(t, 2*time.Second, cfg.PaymentDelay)
	})

	t.Run("PaymentDelayOverride", func(t *testing.T) {
		t.Setenv("PAYMENT_DELAY_MS", "50")

		cfg := LoadConfig()
		assert.Equal(t, 50*time.Millisecond, cfg.PaymentDelay)
	})
}
