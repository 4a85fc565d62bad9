package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const ConfigEnvVar = "WEALTHTRACK_CONFIG"

type Config struct {
	Analytics AnalyticsConfig `yaml:"analytics"`
	Cache     CacheConfig     `yaml:"cache"`
	Fx        FxConfig        `yaml:"fx"`
}

type AnalyticsConfig struct {
	// AllRangeMaxDays caps the ALL range.
	AllRangeMaxDays   int `yaml:"allRangeMaxDays"`
	PriceLookbackDays int `yaml:"priceLookbackDays"`
	RecentQuoteDays   int `yaml:"recentQuoteDays"`
	SparklinePoints   int `yaml:"sparklinePoints"`
	PriceFetchWorkers int `yaml:"priceFetchWorkers"`
}

type CacheConfig struct {
	QuoteTtlSeconds   int `yaml:"quoteTtlSeconds"`
	HistoryTtlSeconds int `yaml:"historyTtlSeconds"`
	FxTtlSeconds      int `yaml:"fxTtlSeconds"`
}

type FxConfig struct {
	FallbackRates map[string]float64 `yaml:"fallbackRates"`
}

// DefaultFallbackRates is used when neither the live source nor the config
// provides a table. Units of currency per 1 USD.
var DefaultFallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"CHF": 0.88,
	"JPY": 150,
	"CAD": 1.36,
	"AUD": 1.52,
	"CNY": 7.2,
	"INR": 83,
	"BRL": 5,
	"MXN": 17,
	"SEK": 10.5,
	"NOK": 10.6,
	"TWD": 32,
}

func DefaultConfig() Config {
	rates := map[string]float64{}
	for k, v := range DefaultFallbackRates {
		rates[k] = v
	}
	return Config{
		Analytics: AnalyticsConfig{
			AllRangeMaxDays:   730,
			PriceLookbackDays: 7,
			RecentQuoteDays:   7,
			SparklinePoints:   30,
			PriceFetchWorkers: 8,
		},
		Cache: CacheConfig{
			QuoteTtlSeconds:   60,
			HistoryTtlSeconds: 3600,
			FxTtlSeconds:      3600,
		},
		Fx: FxConfig{
			FallbackRates: rates,
		},
	}
}

// LoadConfig reads the yaml file named by WEALTHTRACK_CONFIG. A missing
// variable or file yields the defaults.
func LoadConfig() (Config, error) {
	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(f)
}

func ParseConfig(data []byte) (Config, error) {
	c := Config{}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return c.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	positive := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	positive(&c.Analytics.AllRangeMaxDays, d.Analytics.AllRangeMaxDays)
	positive(&c.Analytics.PriceLookbackDays, d.Analytics.PriceLookbackDays)
	positive(&c.Analytics.RecentQuoteDays, d.Analytics.RecentQuoteDays)
	positive(&c.Analytics.SparklinePoints, d.Analytics.SparklinePoints)
	positive(&c.Analytics.PriceFetchWorkers, d.Analytics.PriceFetchWorkers)
	positive(&c.Cache.QuoteTtlSeconds, d.Cache.QuoteTtlSeconds)
	positive(&c.Cache.HistoryTtlSeconds, d.Cache.HistoryTtlSeconds)
	positive(&c.Cache.FxTtlSeconds, d.Cache.FxTtlSeconds)

	if len(c.Fx.FallbackRates) == 0 {
		c.Fx.FallbackRates = d.Fx.FallbackRates
	}
	rates := map[string]float64{"USD": 1}
	for k, v := range c.Fx.FallbackRates {
		k = strings.ToUpper(k)
		if k == "USD" || v <= 0 {
			continue
		}
		rates[k] = v
	}
	c.Fx.FallbackRates = rates

	return c
}
