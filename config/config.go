package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Booking BookingConfig `yaml:"booking"`
	Seed    SeedConfig    `yaml:"seed"`
}

type AppConfig struct {
	AirlineName string `yaml:"airline_name"`
	Currency    string `yaml:"currency"`
}

type BookingConfig struct {
	RefundRate          string `yaml:"refund_rate"`
	MinPassengerNameLen int    `yaml:"min_passenger_name_len"`
}

// RefundRateDecimal parses the configured rate. Kept as a string in the
// file so the rate stays exact.
func (b BookingConfig) RefundRateDecimal() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(b.RefundRate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid refund rate %q: %w", b.RefundRate, err)
	}
	return rate, nil
}

type SeedConfig struct {
	DemoData bool `yaml:"demo_data"`
}

func Default() *Config {
	return &Config{
		App:     AppConfig{AirlineName: "Wizz Air Hungary", Currency: "Ft"},
		Booking: BookingConfig{RefundRate: "0.7", MinPassengerNameLen: 2},
		Seed:    SeedConfig{DemoData: true},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing
// file is not an error; the defaults alone drive the system.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
