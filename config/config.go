package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds everything injected through the environment. Nothing here is
// a secret beyond standard env vars: the payment key and OAuth client id are
// the public halves.
type Config struct {
	APIBaseURL       string        `mapstructure:"api_base_url"`
	RateAPIBaseURL   string        `mapstructure:"rate_api_base_url"`
	PaymentPublicKey string        `mapstructure:"payment_public_key"`
	OAuthClientID    string        `mapstructure:"oauth_client_id"`
	RedisAddr        string        `mapstructure:"redis_addr"` // empty = in-memory media cache
	SessionToken     string        `mapstructure:"session_token"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`

	// Mock backend settings (dev/test only)
	MockListenAddr string `mapstructure:"mock_listen_addr"`
	JWTSecret      string `mapstructure:"jwt_secret"`
}

// Load reads configuration from STOREFRONT_* environment variables with
// sensible defaults. A .env file, if present, is loaded by main before this
// runs.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("rate_api_base_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("payment_public_key", "")
	v.SetDefault("oauth_client_id", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("session_token", "")
	v.SetDefault("http_timeout", 15*time.Second)
	v.SetDefault("mock_listen_addr", ":8080")
	v.SetDefault("jwt_secret", "dev-secret")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
