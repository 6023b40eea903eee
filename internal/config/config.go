// Package config loads the service configuration from an optional YAML file and
// the environment. Environment variables take precedence over YAML values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"commerce_2checkout/internal/domain/entities"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreRedis    = "redis"
	StoreMongo    = "mongo"
	StoreMemory   = "memory"
)

var ErrUnsupportedStore = errors.New("unsupported store backend")

type Config struct {
	Port        string `yaml:"port" env:"PORT" env-default:"8080"`
	Environment string `yaml:"environment" env:"GATEWAY_ENVIRONMENT" env-default:"sandbox" env-description:"live or sandbox purchase endpoint"`
	Rounding    string `yaml:"rounding_policy" env:"ROUNDING_POLICY" env-default:"half_up" env-description:"half_up or half_even"`
	TokenKey    string `yaml:"token_key" env:"TOKEN_KEY" env-default:"" env-description:"enables HMAC-keyed correlation tokens"`
	OtelEnabled bool   `yaml:"otel_enabled" env:"OTEL_ENABLED" env-default:"false"`
	Gateway     struct {
		MerchantCode    string `yaml:"merchant_code" env:"MERCHANT_CODE" env-default:""`
		SecretWord      string `yaml:"secret_word" env:"SECRET_WORD" env-default:""`
		Language        string `yaml:"language" env:"CHECKOUT_LANGUAGE" env-default:"en"`
		Demo            bool   `yaml:"demo" env:"DEMO_MODE" env-description:"defaults to true"`
		SkipOrderReview bool   `yaml:"skip_order_review" env:"SKIP_ORDER_REVIEW" env-default:"false"`
		DirectCheckout  bool   `yaml:"direct_checkout" env:"DIRECT_CHECKOUT" env-default:"false"`
		ThirdPartyCart  bool   `yaml:"third_party_cart" env:"THIRD_PARTY_CART" env-default:"false"`
		Tangible        bool   `yaml:"tangible" env:"TANGIBLE_GOODS" env-default:"false"`
		Logging         string `yaml:"logging" env:"GATEWAY_LOGGING" env-default:"full"`
	} `yaml:"gateway"`
	Store struct {
		Backend  string `yaml:"backend" env:"STORE_BACKEND" env-default:"memory"`
		DynamoDB struct {
			Region   string `yaml:"region" env:"AWS_REGION" env-default:"us-east-1"`
			Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT" env-default:""`
			Table    string `yaml:"table" env:"CORRELATIONS_TABLE" env-default:"payment_correlations"`
		} `yaml:"dynamodb"`
		Redis struct {
			URL string        `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
			TTL time.Duration `yaml:"ttl" env:"CORRELATION_TTL" env-default:"72h"`
		} `yaml:"redis"`
		Mongo struct {
			URI      string `yaml:"uri" env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
			Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"commerce"`
		} `yaml:"mongo"`
	} `yaml:"store"`
}

// Load reads path (when it exists) and then the environment. Unknown keys in
// the YAML file are an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// Set before decoding: an env-default would also replace an explicit
	// "demo: false" from the file.
	cfg.Gateway.Demo = true
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := checkKnownFields(path); err != nil {
				return nil, err
			}
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return nil, describe(cfg, fmt.Errorf("load config %s: %w", path, err))
			}
			return validate(cfg)
		}
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, describe(cfg, fmt.Errorf("load config from env: %w", err))
	}
	return validate(cfg)
}

func checkKnownFields(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&Config{}); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func describe(cfg *Config, err error) error {
	desc, _ := cleanenv.GetDescription(cfg, nil)
	return fmt.Errorf("%w; %s", err, desc)
}

func validate(cfg *Config) (*Config, error) {
	switch cfg.Store.Backend {
	case StoreDynamoDB, StoreRedis, StoreMongo, StoreMemory:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, cfg.Store.Backend)
	}
	if _, err := cfg.GatewayEnvironment(); err != nil {
		return nil, err
	}
	if _, err := cfg.RoundingPolicy(); err != nil {
		return nil, err
	}
	if _, err := cfg.GatewayConfiguration(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) GatewayEnvironment() (entities.Environment, error) {
	return entities.ParseEnvironment(c.Environment)
}

func (c *Config) RoundingPolicy() (entities.RoundingPolicy, error) {
	return entities.ParseRoundingPolicy(c.Rounding)
}

func (c *Config) GatewayConfiguration() (entities.GatewayConfiguration, error) {
	return entities.NewGatewayConfiguration(entities.GatewaySettings{
		MerchantCode:    c.Gateway.MerchantCode,
		SecretWord:      c.Gateway.SecretWord,
		Language:        c.Gateway.Language,
		DemoMode:        c.Gateway.Demo,
		SkipOrderReview: c.Gateway.SkipOrderReview,
		DirectCheckout:  c.Gateway.DirectCheckout,
		ThirdPartyCart:  c.Gateway.ThirdPartyCart,
		TangibleGoods:   c.Gateway.Tangible,
		Logging:         c.Gateway.Logging,
	})
}
