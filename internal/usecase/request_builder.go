package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"commerce_2checkout/internal/domain/entities"
)

// Field caps enforced by 2Checkout on the purchase routine.
const (
	maxNameLength    = 128
	maxAddressLength = 64
	maxPostalLength  = 16
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// IRequestBuilder maps an order onto the 2Checkout purchase parameters.
type IRequestBuilder interface {
	Build(order entities.OrderSnapshot, cfg entities.GatewayConfiguration, extra entities.ExtraContext) (entities.RedirectRequest, error)
}

// RequestBuilder is stateless apart from its environment and rounding policy and
// can be shared between goroutines.
type RequestBuilder struct {
	environment entities.Environment
	rounding    entities.RoundingPolicy
}

var _ IRequestBuilder = (*RequestBuilder)(nil)

func NewRequestBuilder(environment entities.Environment, rounding entities.RoundingPolicy) *RequestBuilder {
	if rounding == "" {
		rounding = entities.RoundHalfUp
	}
	return &RequestBuilder{environment: environment, rounding: rounding}
}

func (b *RequestBuilder) Build(order entities.OrderSnapshot, cfg entities.GatewayConfiguration, extra entities.ExtraContext) (entities.RedirectRequest, error) {
	if err := validateGatewayConfiguration(cfg); err != nil {
		return entities.RedirectRequest{}, err
	}
	if err := validateOrder(order); err != nil {
		return entities.RedirectRequest{}, err
	}

	params := entities.NewParameters()

	// General parameters.
	params.Set("sid", cfg.MerchantCode)
	params.Set("lang", string(cfg.Language))
	params.Set("merchant_order_id", strconv.FormatInt(order.OrderID, 10))
	params.Set("pay_method", "CC")
	params.Set("skip_landing", flag(cfg.SkipOrderReview, "1", "0"))
	params.Set("x_receipt_link_url", extra.ReturnURL)
	params.Set("coupon", "")
	params.Set("mode", "2CO")
	params.Set("currency_code", order.CurrencyCode)

	// Billing address, always sent even when a field is empty.
	for _, f := range addressFields(order.BillingAddress, "") {
		params.Set(f.key, f.value)
	}

	// Never sent for live sales.
	if cfg.DemoMode {
		params.Set("demo", "Y")
	}

	// Shipping is only sent when it is unambiguous.
	if profiles := order.DistinctShippingProfiles(); len(profiles) == 1 {
		for _, f := range addressFields(profiles[0].Address, "ship_") {
			if strings.TrimSpace(f.value) == "" {
				continue
			}
			params.Set(f.key, f.value)
		}
	}

	tangible := flag(cfg.TangibleGoods, "Y", "N")
	for i, item := range order.LineItems {
		prefix := "li_" + strconv.Itoa(i) + "_"
		params.Set(prefix+"type", "product")
		params.Set(prefix+"name", item.Title)
		params.Set(prefix+"quantity", strconv.FormatInt(item.Quantity, 10))
		params.Set(prefix+"price", entities.FormatAmount(item.UnitPrice, order.CurrencyCode, b.rounding))
		params.Set(prefix+"tangible", tangible)
	}

	return entities.RedirectRequest{
		TargetURL:  b.environment.PurchaseURL(),
		Method:     entities.MethodGet,
		Parameters: params,
	}, nil
}

type field struct {
	key   string
	value string
}

// addressFields returns the address in 2Checkout field order. Billing uses the
// bare names except for the card holder; shipping prefixes every name with ship_.
func addressFields(a entities.Address, prefix string) []field {
	nameKey := "card_holder_name"
	if prefix != "" {
		nameKey = prefix + "name"
	}
	return []field{
		{nameKey, truncate(a.FullName(), maxNameLength)},
		{prefix + "street_address", truncate(a.AddressLine1, maxAddressLength)},
		{prefix + "street_address2", truncate(a.AddressLine2, maxAddressLength)},
		{prefix + "city", truncate(a.Locality, maxAddressLength)},
		{prefix + "state", truncate(a.AdministrativeArea, maxAddressLength)},
		{prefix + "country", a.CountryCode},
		{prefix + "zip", truncate(a.PostalCode, maxPostalLength)},
	}
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func flag(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

func validateGatewayConfiguration(cfg entities.GatewayConfiguration) error {
	if strings.TrimSpace(cfg.MerchantCode) == "" {
		return fmt.Errorf("%w: merchant code is empty", ErrConfiguration)
	}
	if cfg.SecretWord == "" {
		return fmt.Errorf("%w: secret word is empty", ErrConfiguration)
	}
	return nil
}

func validateOrder(order entities.OrderSnapshot) error {
	if strings.TrimSpace(order.BillingAddress.CountryCode) == "" {
		return fmt.Errorf("%w: billing country code is missing", ErrInvalidOrder)
	}
	if !currencyCodePattern.MatchString(order.CurrencyCode) {
		return fmt.Errorf("%w: currency code %q is not a 3-letter code", ErrInvalidOrder, order.CurrencyCode)
	}
	for i, item := range order.LineItems {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: line item %d has quantity %d", ErrInvalidOrder, i, item.Quantity)
		}
	}
	return nil
}
