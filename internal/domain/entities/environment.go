package entities

import (
	"fmt"
	"strings"
)

// Environment selects the 2Checkout endpoint. It is independent of
// GatewayConfiguration.DemoMode: a demo sale can be sent to the live endpoint.
type Environment string

const (
	EnvironmentLive    Environment = "live"
	EnvironmentSandbox Environment = "sandbox"
)

const (
	LivePurchaseURL    = "https://www.2checkout.com/checkout/purchase"
	SandboxPurchaseURL = "https://sandbox.2checkout.com/checkout/purchase"
)

func ParseEnvironment(v string) (Environment, error) {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case EnvironmentLive, "production", "prod":
		return EnvironmentLive, nil
	case EnvironmentSandbox, "test":
		return EnvironmentSandbox, nil
	}
	return "", fmt.Errorf("%w: unsupported environment %q", ErrInvalidConfiguration, v)
}

// PurchaseURL returns the checkout endpoint for the environment. Anything that
// is not explicitly sandbox goes live.
func (e Environment) PurchaseURL() string {
	if e == EnvironmentSandbox {
		return SandboxPurchaseURL
	}
	return LivePurchaseURL
}
