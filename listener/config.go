package listener

import (
	"fmt"
	"os"

	"github.com/alovak/paypal-gateway/paypal"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the configuration for the IPN listener application.
type Config struct {
	HTTPAddr string `yaml:"http_addr" env:"HTTP_ADDR" env-default:"localhost:8080"`

	Paypal PaypalConfig `yaml:"paypal"`
}

// PaypalConfig carries the credential fields handed to the paypal client.
type PaypalConfig struct {
	Mode          string `yaml:"mode" env:"PAYPAL_MODE" env-default:"live"`
	Currency      string `yaml:"currency" env:"PAYPAL_CURRENCY" env-default:"USD"`
	PaymentAction string `yaml:"payment_action" env:"PAYPAL_PAYMENT_ACTION" env-default:"Sale"`
	Locale        string `yaml:"locale" env:"PAYPAL_LOCALE" env-default:"en_US"`
	ValidateSSL   bool   `yaml:"validate_ssl" env:"PAYPAL_VALIDATE_SSL" env-default:"true"`

	Sandbox EnvCredentials `yaml:"sandbox" env-prefix:"PAYPAL_SANDBOX_"`
	Live    EnvCredentials `yaml:"live" env-prefix:"PAYPAL_LIVE_"`
}

// EnvCredentials are the per-environment API fields.
type EnvCredentials struct {
	Username  string `yaml:"username" env:"USERNAME"`
	Password  string `yaml:"password" env:"PASSWORD"`
	Signature string `yaml:"signature" env:"SIGNATURE"`
	AppID     string `yaml:"app_id" env:"APP_ID"`
}

func (e EnvCredentials) toMap() map[string]string {
	return map[string]string{
		"username":  e.Username,
		"password":  e.Password,
		"signature": e.Signature,
		"app_id":    e.AppID,
	}
}

// Credentials builds the paypal credential structure from the loaded
// configuration.
func (c PaypalConfig) Credentials() paypal.Credentials {
	return paypal.Credentials{
		Mode:          c.Mode,
		Sandbox:       c.Sandbox.toMap(),
		Live:          c.Live.toMap(),
		Currency:      c.Currency,
		PaymentAction: c.PaymentAction,
		Locale:        c.Locale,
		ValidateSSL:   c.ValidateSSL,
	}
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:8080",
		Paypal: PaypalConfig{
			Mode:          paypal.ModeSandbox,
			Currency:      "USD",
			PaymentAction: "Sale",
			Locale:        "en_US",
			ValidateSSL:   true,
		},
	}
}

// Load reads configuration from the yaml file named by IPN_CONFIG_PATH,
// or from environment variables when no file is configured.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("IPN_CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading config from env: %w", err)
	}

	return cfg, nil
}
