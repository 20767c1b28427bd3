package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"restaurant-pos/internal/models"
)

// Config holds all configuration for the POS. Defaults reproduce the standard
// setup (10 tables, ledger files in the working directory, no surcharges);
// environment variables override them.
type Config struct {
	TableCount         int    `conf:"default:10,env:TABLE_COUNT"`
	OrderLedgerPath    string `conf:"default:orders.txt,env:ORDER_LEDGER_PATH"`
	FeedbackLedgerPath string `conf:"default:feedback.txt,env:FEEDBACK_LEDGER_PATH"`
	// Surcharges is a comma-separated list of name:rate pairs, e.g.
	// "tax:0.05,service:0.03". Empty means no surcharges.
	Surcharges    string `conf:"env:SURCHARGES"`
	AdminPassword string `conf:"default:admin123,env:ADMIN_PASSWORD,noprint"`
	LogLevel      string `conf:"default:info,env:LOG_LEVEL"`
}

// Load reads configuration from environment variables, honoring a .env file
// if present.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.TableCount <= 0 {
		return nil, fmt.Errorf("TABLE_COUNT must be positive, got %d", cfg.TableCount)
	}
	if _, err := cfg.ParseSurcharges(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseSurcharges parses the Surcharges string into ordered surcharge
// configuration. Order is preserved so bills render deterministically.
func (c *Config) ParseSurcharges() ([]models.Surcharge, error) {
	if strings.TrimSpace(c.Surcharges) == "" {
		return nil, nil
	}

	var surcharges []models.Surcharge
	for _, pair := range strings.Split(c.Surcharges, ",") {
		name, rateStr, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid surcharge %q: want name:rate", pair)
		}
		rate, err := decimal.NewFromString(rateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid surcharge rate %q: %w", rateStr, err)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("surcharge rate %q must not be negative", rateStr)
		}
		surcharges = append(surcharges, models.Surcharge{Name: name, Rate: rate})
	}
	return surcharges, nil
}
