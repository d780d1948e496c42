// Package config resolves the environment-sourced settings consumed by the
// booking core. The resolved Config is threaded explicitly into usecases at
// construction time; the only deliberately live value is the commission rate,
// exposed through RateSource so confirmation can prefer the current
// environment rate over a reservation's snapshot.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// DefaultCommissionRate is the platform fee fraction applied when no
// COMMISSION_RATE is configured.
const DefaultCommissionRate = 0.4

type Config struct {
	Port int `envconfig:"PORT" default:"8080"`

	// CommissionRate is the fraction of (rent + deposit) charged as the
	// platform fee, e.g. 0.4 for 40%.
	CommissionRate float64 `envconfig:"COMMISSION_RATE" default:"0.4"`

	// FrontendBaseURL is where checkout success/cancel redirects point.
	FrontendBaseURL string `envconfig:"FRONTEND_BASE_URL" default:"http://localhost:3000"`

	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`

	// WebhookSecret signs payment-confirmation callbacks. When empty, the
	// webhook endpoint refuses to process events (operator fault, 500).
	WebhookSecret string `envconfig:"PAYMENT_WEBHOOK_SECRET"`

	JWTSecret string `envconfig:"JWT_SECRET"`

	// RedisAddr enables the Redis-backed checkout idempotency store; when
	// empty an in-process store is used.
	RedisAddr string `envconfig:"REDIS_ADDR"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RateSource yields the commission rate in effect right now, falling back to
// the supplied value (the configured default at checkout time, the
// reservation's snapshot at confirmation time) when none is configured.
type RateSource interface {
	Effective(fallback float64) float64
}

// EnvRateSource reads COMMISSION_RATE per call so operators can adjust the
// rate without a restart. Per-reservation snapshots remain the record of what
// was actually charged.
type EnvRateSource struct{}

func NewEnvRateSource() EnvRateSource { return EnvRateSource{} }

func (EnvRateSource) Effective(fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv("COMMISSION_RATE"))
	if raw == "" {
		return fallback
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate < 0 || rate > 1 {
		return fallback
	}
	return rate
}
