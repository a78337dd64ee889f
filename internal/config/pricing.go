package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PricingConfig holds operator-tunable pricing policy that is independent
// of the discount rules stored in the database.
type PricingConfig struct {
	Currency        string `mapstructure:"currency"`
	QuoteRatePerMin int    `mapstructure:"quoteRatePerMin"`
	QuoteBurst      int    `mapstructure:"quoteBurst"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Currency:        "MAD",
		QuoteRatePerMin: 60,
		QuoteBurst:      20,
	}
}

type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

func NewPricingConfigHolder() (*PricingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/fitnest/config") // Volume-mounted config
	v.AddConfigPath("/etc/fitnest")            // System config
	v.AddConfigPath(".")                       // Current directory (dev mode)

	v.SetEnvPrefix("FITNEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultPricingConfig()
		v.SetDefault("pricing.currency", defaults.Currency)
		v.SetDefault("pricing.quoteRatePerMin", defaults.QuoteRatePerMin)
		v.SetDefault("pricing.quoteBurst", defaults.QuoteBurst)
	}

	var cfg PricingConfig
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}
	if err := validatePricingConfig(cfg); err != nil {
		return nil, err
	}

	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		var next PricingConfig
		if err := v.UnmarshalKey("pricing", &next); err != nil {
			log.Printf("pricing config reload failed: %v", err)
			return
		}
		if err := validatePricingConfig(next); err != nil {
			log.Printf("pricing config reload rejected: %v", err)
			return
		}
		holder.current.Store(next)
	})

	return holder, nil
}

func (h *PricingConfigHolder) Get() PricingConfig {
	cfg, ok := h.current.Load().(PricingConfig)
	if !ok {
		return DefaultPricingConfig()
	}
	return cfg
}

func validatePricingConfig(cfg PricingConfig) error {
	if strings.TrimSpace(cfg.Currency) == "" {
		return errors.New("pricing currency is required")
	}
	if cfg.QuoteRatePerMin < 0 || cfg.QuoteBurst < 0 {
		return errors.New("quote rate limits must be >= 0")
	}
	return nil
}
