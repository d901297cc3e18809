package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type OpenAISecrets struct {
	ApiKey string `json:"apiKey"`
	Model  string `json:"model"`
}

type Config struct {
	Alpaca AlpacaSecrets `json:"alpaca"`
	OpenAI OpenAISecrets `json:"openai"`

	Symbols               []string `json:"symbols"`
	DefaultPortfolioTotal float64  `json:"defaultPortfolioTotal"`
	BarsTopLimit          int      `json:"barsTopLimit"`
	NewsTopLimit          int      `json:"newsTopLimit"`

	// Minimum seconds between estimation requests. The provider has a
	// shared token-per-minute budget, so requests must be paced.
	EstimationIntervalSeconds int `json:"estimationIntervalSeconds"`
}

func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
		if os.Getenv("AIFOLIO_ENV") == "dev" {
			path = "config-dev.json"
		}
	}
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config file: %w", err)
	}

	cfg := Config{}
	err = json.Unmarshal(f, &cfg)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BarsTopLimit == 0 {
		c.BarsTopLimit = 60
	}
	if c.NewsTopLimit == 0 {
		c.NewsTopLimit = 10
	}
	if c.EstimationIntervalSeconds == 0 {
		c.EstimationIntervalSeconds = 10
	}
	if c.DefaultPortfolioTotal == 0 {
		c.DefaultPortfolioTotal = 10000
	}
}

func (c *Config) validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("config has no symbols to trade")
	}
	if c.DefaultPortfolioTotal < 0 {
		return fmt.Errorf("defaultPortfolioTotal must be positive, got %f", c.DefaultPortfolioTotal)
	}
	if c.Alpaca.ApiKey == "" || c.Alpaca.ApiSecret == "" {
		return fmt.Errorf("missing alpaca credentials")
	}
	if c.OpenAI.ApiKey == "" {
		return fmt.Errorf("missing openai credentials")
	}
	return nil
}
