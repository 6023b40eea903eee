package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownConfigurationKey = errors.New("unknown configuration key")
	ErrInvalidConfiguration    = errors.New("invalid gateway configuration")
)

// Language is a checkout page locale code accepted by 2Checkout.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageChinese    Language = "zh"
	LanguageDanish     Language = "da"
	LanguageDutch      Language = "nl"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "gr"
	LanguageGreek      Language = "el"
	LanguageItalian    Language = "it"
	LanguageJapanese   Language = "jp"
	LanguageNorwegian  Language = "no"
	LanguagePortuguese Language = "pt"
	LanguageSlovenian  Language = "sl"
	LanguageSpanishIB  Language = "es_ib"
	LanguageSpanishLA  Language = "es_la"
	LanguageSwedish    Language = "sv"
)

const DefaultLanguage = LanguageEnglish

// SupportedLanguages maps each locale code to its display label.
var SupportedLanguages = map[Language]string{
	LanguageEnglish:    "English",
	LanguageChinese:    "Chinese",
	LanguageDanish:     "Danish",
	LanguageDutch:      "Dutch",
	LanguageFrench:     "French",
	LanguageGerman:     "German",
	LanguageGreek:      "Greek",
	LanguageItalian:    "Italian",
	LanguageJapanese:   "Japanese",
	LanguageNorwegian:  "Norwegian",
	LanguagePortuguese: "Portuguese",
	LanguageSlovenian:  "Slovenian",
	LanguageSpanishIB:  "Spanish (es_ib)",
	LanguageSpanishLA:  "Spanish (es_la)",
	LanguageSwedish:    "Swedish",
}

func (l Language) IsSupported() bool {
	_, ok := SupportedLanguages[l]
	return ok
}

// LoggingLevel controls how much of a checkout is written to the log.
//   - notification: one summary line per checkout / return
//   - full: also the complete redirect payload (debugging)
type LoggingLevel string

const (
	LoggingNotification LoggingLevel = "notification"
	LoggingFull         LoggingLevel = "full"
)

func (l LoggingLevel) IsValid() bool {
	return l == LoggingNotification || l == LoggingFull
}

// GatewayConfiguration is the immutable per-gateway setup.
//
// SecretWord is never written to the redirect payload; it is only used to verify
// the provider return key.
type GatewayConfiguration struct {
	MerchantCode    string
	SecretWord      string
	Language        Language
	DemoMode        bool
	SkipOrderReview bool
	DirectCheckout  bool
	ThirdPartyCart  bool
	TangibleGoods   bool
	Logging         LoggingLevel
}

// GatewaySettings is the raw input for NewGatewayConfiguration. Zero values fall
// back to the gateway defaults (language en, logging full).
type GatewaySettings struct {
	MerchantCode    string
	SecretWord      string
	Language        string
	DemoMode        bool
	SkipOrderReview bool
	DirectCheckout  bool
	ThirdPartyCart  bool
	TangibleGoods   bool
	Logging         string
}

// NewGatewayConfiguration validates the enumerated settings. Missing credentials
// are accepted here and rejected when a request is built.
func NewGatewayConfiguration(s GatewaySettings) (GatewayConfiguration, error) {
	lang := Language(strings.TrimSpace(s.Language))
	if lang == "" {
		lang = DefaultLanguage
	}
	if !lang.IsSupported() {
		return GatewayConfiguration{}, fmt.Errorf("%w: unsupported language %q", ErrInvalidConfiguration, s.Language)
	}

	logging := LoggingLevel(strings.TrimSpace(s.Logging))
	if logging == "" {
		logging = LoggingFull
	}
	if !logging.IsValid() {
		return GatewayConfiguration{}, fmt.Errorf("%w: unsupported logging level %q", ErrInvalidConfiguration, s.Logging)
	}

	return GatewayConfiguration{
		MerchantCode:    strings.TrimSpace(s.MerchantCode),
		SecretWord:      s.SecretWord,
		Language:        lang,
		DemoMode:        s.DemoMode,
		SkipOrderReview: s.SkipOrderReview,
		DirectCheckout:  s.DirectCheckout,
		ThirdPartyCart:  s.ThirdPartyCart,
		TangibleGoods:   s.TangibleGoods,
		Logging:         logging,
	}, nil
}

// Keys accepted by GatewayConfigurationFromValues.
const (
	ConfigKeyMerchantCode    = "merchant_code"
	ConfigKeySecretWord      = "secret_word"
	ConfigKeyLanguage        = "language"
	ConfigKeyDemo            = "demo"
	ConfigKeySkipOrderReview = "skip_order_review"
	ConfigKeyDirectCheckout  = "direct_checkout"
	ConfigKeyThirdPartyCart  = "third_party_cart"
	ConfigKeyTangible        = "tangible"
	ConfigKeyLogging         = "logging"
)

// GatewayConfigurationFromValues builds a configuration from a loosely typed bag
// (e.g. a submitted settings form). Every key must be known; string values are
// required for text settings and bool values for flags.
func GatewayConfigurationFromValues(values map[string]any) (GatewayConfiguration, error) {
	var unknown []string
	s := GatewaySettings{}
	for key, raw := range values {
		var err error
		switch key {
		case ConfigKeyMerchantCode:
			s.MerchantCode, err = stringValue(key, raw)
		case ConfigKeySecretWord:
			s.SecretWord, err = stringValue(key, raw)
		case ConfigKeyLanguage:
			s.Language, err = stringValue(key, raw)
		case ConfigKeyLogging:
			s.Logging, err = stringValue(key, raw)
		case ConfigKeyDemo:
			s.DemoMode, err = boolValue(key, raw)
		case ConfigKeySkipOrderReview:
			s.SkipOrderReview, err = boolValue(key, raw)
		case ConfigKeyDirectCheckout:
			s.DirectCheckout, err = boolValue(key, raw)
		case ConfigKeyThirdPartyCart:
			s.ThirdPartyCart, err = boolValue(key, raw)
		case ConfigKeyTangible:
			s.TangibleGoods, err = boolValue(key, raw)
		default:
			unknown = append(unknown, key)
		}
		if err != nil {
			return GatewayConfiguration{}, err
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return GatewayConfiguration{}, fmt.Errorf("%w: %s", ErrUnknownConfigurationKey, strings.Join(unknown, ", "))
	}
	return NewGatewayConfiguration(s)
}

func stringValue(key string, raw any) (string, error) {
	v, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidConfiguration, key)
	}
	return v, nil
}

func boolValue(key string, raw any) (bool, error) {
	v, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean", ErrInvalidConfiguration, key)
	}
	return v, nil
}
