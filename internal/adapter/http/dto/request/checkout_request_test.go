package request

import (
	"encoding/json"
	"testing"
)

func TestCheckoutRedirectRequest_ToOrderSnapshot(t *testing.T) {
	raw := `{
		"order": {
			"order_id": 1001,
			"currency_code": " USD ",
			"billing_address": {"given_name": "Ann", "family_name": "Lee", "country_code": "US"},
			"line_items": [{"title": "Widget", "quantity": 2, "unit_price": "9.995"}],
			"shipment_profiles": [{"profile_id": "p1", "address": {"locality": "Austin", "country_code": "US"}}]
		},
		"return_url": " https://shop.example/return ",
		"capture": true
	}`
	var r CheckoutRedirectRequest
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := r.ToOrderSnapshot()
	if order.OrderID != 1001 || order.CurrencyCode != "USD" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.BillingAddress.FullName() != "Ann Lee" || order.BillingAddress.CountryCode != "US" {
		t.Fatalf("unexpected billing address: %+v", order.BillingAddress)
	}
	if len(order.LineItems) != 1 || order.LineItems[0].UnitPrice.String() != "9.995" || order.LineItems[0].Quantity != 2 {
		t.Fatalf("unexpected line items: %+v", order.LineItems)
	}
	if len(order.ShipmentProfiles) != 1 || order.ShipmentProfiles[0].Address.Locality != "Austin" {
		t.Fatalf("unexpected shipment profiles: %+v", order.ShipmentProfiles)
	}

	extra := r.ToExtraContext()
	if extra.ReturnURL != "https://shop.example/return" || !extra.CaptureImmediately || extra.CancelURL != "" {
		t.Fatalf("unexpected extra context: %+v", extra)
	}
}

func TestReturnRequest_ToReturnNotification(t *testing.T) {
	r := ReturnRequest{Token: " tok ", OrderNumber: "4550", Total: "20.00", Key: "abc", MerchantOrderID: "1001"}
	n := r.ToReturnNotification(1001)
	if n.OrderID != 1001 || n.Token != "tok" || n.OrderNumber != "4550" || n.Total != "20.00" || n.Key != "abc" || n.MerchantOrderID != "1001" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}
