package request

import (
	"strings"

	"commerce_2checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AddressRequest struct {
	GivenName          string `json:"given_name"`
	FamilyName         string `json:"family_name"`
	AddressLine1       string `json:"address_line1"`
	AddressLine2       string `json:"address_line2"`
	Locality           string `json:"locality"`
	AdministrativeArea string `json:"administrative_area"`
	CountryCode        string `json:"country_code"`
	PostalCode         string `json:"postal_code"`
}

type LineItemRequest struct {
	Title     string          `json:"title"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type ShippingProfileRequest struct {
	ProfileID string         `json:"profile_id"`
	Address   AddressRequest `json:"address"`
}

type OrderRequest struct {
	OrderID          int64                    `json:"order_id" binding:"required"`
	CurrencyCode     string                   `json:"currency_code" binding:"required"`
	BillingAddress   AddressRequest           `json:"billing_address"`
	LineItems        []LineItemRequest        `json:"line_items"`
	ShipmentProfiles []ShippingProfileRequest `json:"shipment_profiles"`
}

// CheckoutRedirectRequest is the payload of POST /checkout/redirect.
type CheckoutRedirectRequest struct {
	Order     OrderRequest `json:"order" binding:"required"`
	ReturnURL string       `json:"return_url"`
	CancelURL string       `json:"cancel_url"`
	Capture   bool         `json:"capture"`
}

func (r CheckoutRedirectRequest) ToOrderSnapshot() entities.OrderSnapshot {
	items := make([]entities.LineItem, 0, len(r.Order.LineItems))
	for _, li := range r.Order.LineItems {
		items = append(items, entities.LineItem{Title: li.Title, Quantity: li.Quantity, UnitPrice: li.UnitPrice})
	}
	profiles := make([]entities.ShippingProfile, 0, len(r.Order.ShipmentProfiles))
	for _, p := range r.Order.ShipmentProfiles {
		profiles = append(profiles, entities.ShippingProfile{ProfileID: p.ProfileID, Address: p.Address.toAddress()})
	}
	return entities.OrderSnapshot{
		OrderID:          r.Order.OrderID,
		CurrencyCode:     strings.TrimSpace(r.Order.CurrencyCode),
		BillingAddress:   r.Order.BillingAddress.toAddress(),
		LineItems:        items,
		ShipmentProfiles: profiles,
	}
}

func (r CheckoutRedirectRequest) ToExtraContext() entities.ExtraContext {
	return entities.ExtraContext{
		ReturnURL:          strings.TrimSpace(r.ReturnURL),
		CancelURL:          strings.TrimSpace(r.CancelURL),
		CaptureImmediately: r.Capture,
	}
}

func (a AddressRequest) toAddress() entities.Address {
	return entities.Address{
		GivenName:          a.GivenName,
		FamilyName:         a.FamilyName,
		AddressLine1:       a.AddressLine1,
		AddressLine2:       a.AddressLine2,
		Locality:           a.Locality,
		AdministrativeArea: a.AdministrativeArea,
		CountryCode:        a.CountryCode,
		PostalCode:         a.PostalCode,
	}
}

// ReturnRequest holds the 2Checkout passback fields plus the correlation token.
// Fields bind from the query string or a urlencoded form body.
type ReturnRequest struct {
	Token           string `form:"token" json:"token"`
	OrderNumber     string `form:"order_number" json:"order_number"`
	Total           string `form:"total" json:"total"`
	Key             string `form:"key" json:"key"`
	MerchantOrderID string `form:"merchant_order_id" json:"merchant_order_id"`
}

func (r ReturnRequest) ToReturnNotification(orderID int64) entities.ReturnNotification {
	return entities.ReturnNotification{
		OrderID:         orderID,
		Token:           strings.TrimSpace(r.Token),
		OrderNumber:     strings.TrimSpace(r.OrderNumber),
		Total:           strings.TrimSpace(r.Total),
		Key:             strings.TrimSpace(r.Key),
		MerchantOrderID: strings.TrimSpace(r.MerchantOrderID),
	}
}
