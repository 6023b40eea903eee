package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingPolicy decides how a unit price is brought to the currency minor unit.
// All prices of one redirect request go through the same policy.
type RoundingPolicy string

const (
	RoundHalfUp   RoundingPolicy = "half_up"
	RoundHalfEven RoundingPolicy = "half_even"
)

func ParseRoundingPolicy(v string) (RoundingPolicy, error) {
	switch p := RoundingPolicy(strings.ToLower(strings.TrimSpace(v))); p {
	case "":
		return RoundHalfUp, nil
	case RoundHalfUp, RoundHalfEven:
		return p, nil
	}
	return "", fmt.Errorf("%w: unsupported rounding policy %q", ErrInvalidConfiguration, v)
}

// Round rounds d to places fraction digits. Half-up rounds ties away from zero,
// which for prices (non-negative) is the usual commercial rounding.
func (p RoundingPolicy) Round(d decimal.Decimal, places int32) decimal.Decimal {
	if p == RoundHalfEven {
		return d.RoundBank(places)
	}
	return d.Round(places)
}

// currencyMinorUnits lists the ISO 4217 exponents that differ from 2.
var currencyMinorUnits = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "UYI": 0, "VND": 0, "VUV": 0,
	"XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
	"CLF": 4, "UYW": 4,
}

// MinorUnits returns the number of fraction digits used by the currency.
func MinorUnits(currencyCode string) int32 {
	if n, ok := currencyMinorUnits[strings.ToUpper(currencyCode)]; ok {
		return n
	}
	return 2
}

// FormatAmount rounds the amount to the currency minor unit and renders it with
// exactly that many fraction digits ("10.00", "1000", "1.235").
func FormatAmount(amount decimal.Decimal, currencyCode string, policy RoundingPolicy) string {
	places := MinorUnits(currencyCode)
	return policy.Round(amount, places).StringFixed(places)
}
