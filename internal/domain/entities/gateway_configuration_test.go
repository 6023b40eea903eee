package entities

import (
	"errors"
	"strings"
	"testing"
)

func TestNewGatewayConfiguration(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewGatewayConfiguration(GatewaySettings{MerchantCode: " 1303908 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Language != LanguageEnglish || cfg.Logging != LoggingFull || cfg.MerchantCode != "1303908" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("empty credentials are accepted", func(t *testing.T) {
		if _, err := NewGatewayConfiguration(GatewaySettings{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := NewGatewayConfiguration(GatewaySettings{Language: "xx"})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})

	t.Run("unsupported logging", func(t *testing.T) {
		_, err := NewGatewayConfiguration(GatewaySettings{Logging: "debug"})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})
}

func TestGatewayConfigurationFromValues(t *testing.T) {
	t.Run("known keys", func(t *testing.T) {
		cfg, err := GatewayConfigurationFromValues(map[string]any{
			ConfigKeyMerchantCode:    "1303908",
			ConfigKeySecretWord:      "tango",
			ConfigKeyLanguage:        "pt",
			ConfigKeyDemo:            true,
			ConfigKeySkipOrderReview: true,
			ConfigKeyDirectCheckout:  false,
			ConfigKeyThirdPartyCart:  true,
			ConfigKeyTangible:        true,
			ConfigKeyLogging:         "notification",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Language != LanguagePortuguese || !cfg.DemoMode || !cfg.SkipOrderReview || !cfg.ThirdPartyCart || !cfg.TangibleGoods || cfg.Logging != LoggingNotification {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("unknown keys", func(t *testing.T) {
		_, err := GatewayConfigurationFromValues(map[string]any{"sid": "1", "merchant_code": "1", "color": "red"})
		if !errors.Is(err, ErrUnknownConfigurationKey) {
			t.Fatalf("expected ErrUnknownConfigurationKey, got %v", err)
		}
		if !strings.HasSuffix(err.Error(), "color, sid") {
			t.Fatalf("expected sorted key list, got %v", err)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := GatewayConfigurationFromValues(map[string]any{ConfigKeyDemo: "yes"})
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})
}
