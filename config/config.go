// Package config provides configuration management for the aurorafeeder service
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// OracleTarget is one downstream oracle contract the feeder pushes updates to.
type OracleTarget struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	Address string `json:"address"`
}

// Config holds the application configuration
type Config struct {
	Pairs       string `envconfig:"PAIRS" required:"true"`          // Ordered comma-separated list of BASE-QUOTE pairs
	Schedule    string `envconfig:"SCHEDULE" default:"*/5 * * * *"` // Cron expression driving update ticks
	QuoteURL    string `envconfig:"QUOTE_URL" required:"true"`      // CoinMarketCap quotes/latest endpoint
	QuoteAPIKey string `envconfig:"COINMARKETCAP_API_KEY" required:"true"`
	PrivateKey  string `envconfig:"PRIVATE_KEY" required:"true"` // Signing key for oracle submissions, hex without 0x
	OraclesFile string `envconfig:"ORACLES_FILE" default:"config/oracles.json"`

	Oracles []OracleTarget `ignored:"true"`
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithEnvFile loads configuration from a .env file
func WithEnvFile(path string) Option {
	return func(c *Config) error {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
		return nil
	}
}

// WithOracles sets the oracle target list directly, skipping the JSON file.
func WithOracles(targets []OracleTarget) Option {
	return func(c *Config) error {
		c.Oracles = targets
		c.OraclesFile = ""
		return nil
	}
}

// validate performs validation on the config values
func (c *Config) validate() error {
	if _, err := url.ParseRequestURI(c.QuoteURL); err != nil {
		return fmt.Errorf("invalid quote source URL: %s", c.QuoteURL)
	}

	// Validate private key format (should be hex without 0x prefix)
	if len(c.PrivateKey) != 64 || !isHex(c.PrivateKey) {
		return fmt.Errorf("invalid private key format")
	}

	if strings.TrimSpace(c.Schedule) == "" {
		return fmt.Errorf("no schedule expression specified")
	}

	// Validate pairs
	if c.Pairs == "" {
		return fmt.Errorf("no pairs specified")
	}
	for _, pair := range c.PairList() {
		parts := strings.Split(pair, "-")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("malformed pair %q, expected BASE-QUOTE", pair)
		}
	}

	// Validate oracle targets
	if len(c.Oracles) == 0 {
		return fmt.Errorf("no oracle targets configured")
	}
	for _, target := range c.Oracles {
		if _, err := url.ParseRequestURI(target.RPCURL); err != nil {
			return fmt.Errorf("invalid RPC URL for oracle %s: %s", target.Name, target.RPCURL)
		}
		if !common.IsHexAddress(target.Address) {
			return fmt.Errorf("invalid contract address for oracle %s: %s", target.Name, target.Address)
		}
	}

	return nil
}

// isHex checks if a string is valid hexadecimal
func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}

// loadOracles reads the oracle target list from the configured JSON file.
func (c *Config) loadOracles() error {
	if c.OraclesFile == "" {
		return nil
	}

	b, err := os.ReadFile(c.OraclesFile)
	if err != nil {
		return fmt.Errorf("failed to read oracles file: %w", err)
	}

	if err := json.Unmarshal(b, &c.Oracles); err != nil {
		return fmt.Errorf("failed to parse oracles file: %w", err)
	}

	return nil
}

// NewConfig creates a new validated Config instance
func NewConfig(opts ...Option) (*Config, error) {
	var cfg Config

	// Process environment variables first
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// Apply user options last so they take precedence
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if len(cfg.Oracles) == 0 {
		if err := cfg.loadOracles(); err != nil {
			return nil, err
		}
	}

	// Validate the configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// PairList returns the configured pairs as an ordered slice
func (c *Config) PairList() []string {
	parts := strings.Split(c.Pairs, ",")
	pairs := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			pairs = append(pairs, p)
		}
	}

	return pairs
}
