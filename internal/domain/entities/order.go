package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Address is a postal address as held on a billing or shipping profile.
// Only CountryCode is mandatory for billing.
type Address struct {
	GivenName          string `json:"given_name"`
	FamilyName         string `json:"family_name"`
	AddressLine1       string `json:"address_line1"`
	AddressLine2       string `json:"address_line2"`
	Locality           string `json:"locality"`
	AdministrativeArea string `json:"administrative_area"`
	CountryCode        string `json:"country_code"`
	PostalCode         string `json:"postal_code"`
}

// FullName joins given and family name with a single space.
func (a Address) FullName() string {
	return a.GivenName + " " + a.FamilyName
}

// IsEmpty reports whether every field is blank.
func (a Address) IsEmpty() bool {
	for _, v := range []string{a.GivenName, a.FamilyName, a.AddressLine1, a.AddressLine2, a.Locality, a.AdministrativeArea, a.CountryCode, a.PostalCode} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

type LineItem struct {
	Title     string          `json:"title"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ShippingProfile is the shipping address referenced by one or more shipments.
type ShippingProfile struct {
	ProfileID string  `json:"profile_id"`
	Address   Address `json:"address"`
}

// IsEmpty reports whether the shipment references no profile at all.
func (p ShippingProfile) IsEmpty() bool {
	return strings.TrimSpace(p.ProfileID) == "" && p.Address.IsEmpty()
}

// key identifies the profile when counting distinct profiles on an order.
func (p ShippingProfile) key() string {
	if p.ProfileID != "" {
		return "id:" + p.ProfileID
	}
	return fmt.Sprintf("address:%#v", p.Address)
}

// OrderSnapshot is a read-only view of an order at the moment the redirect is built.
type OrderSnapshot struct {
	OrderID          int64             `json:"order_id"`
	CurrencyCode     string            `json:"currency_code"`
	BillingAddress   Address           `json:"billing_address"`
	LineItems        []LineItem        `json:"line_items"`
	ShipmentProfiles []ShippingProfile `json:"shipment_profiles"`
}

// DistinctShippingProfiles returns the shipment profiles with duplicates removed,
// keeping the first occurrence. Empty profiles are skipped.
func (o OrderSnapshot) DistinctShippingProfiles() []ShippingProfile {
	seen := make(map[string]struct{}, len(o.ShipmentProfiles))
	out := make([]ShippingProfile, 0, len(o.ShipmentProfiles))
	for _, p := range o.ShipmentProfiles {
		if p.IsEmpty() {
			continue
		}
		k := p.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, p)
	}
	return out
}
