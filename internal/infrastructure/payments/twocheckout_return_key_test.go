package payments

import (
	"strings"
	"testing"

	"commerce_2checkout/internal/domain/entities"
)

func TestReturnKey(t *testing.T) {
	cfg := entities.GatewayConfiguration{MerchantCode: "1303908", SecretWord: "tango"}

	// md5("tango" + "1303908" + "4550" + "20.00")
	key := ReturnKey(cfg, "4550", "20.00")
	if key != "3C980F29BC9C3852DB749E98534C71BE" {
		t.Fatalf("unexpected key %q", key)
	}
	if ReturnKey(cfg, "4551", "20.00") == key {
		t.Fatalf("order number must change the key")
	}

	demo := cfg
	demo.DemoMode = true
	if ReturnKey(demo, "4550", "20.00") != ReturnKey(cfg, "1", "20.00") {
		t.Fatalf("demo sales must hash order number 1")
	}
}

func TestTwoCheckoutReturnKeyVerifier_Verify(t *testing.T) {
	cfg := entities.GatewayConfiguration{MerchantCode: "1303908", SecretWord: "tango"}
	v := NewTwoCheckoutReturnKeyVerifier()
	good := ReturnKey(cfg, "4550", "20.00")

	cases := []struct {
		name string
		cfg  entities.GatewayConfiguration
		n    entities.ReturnNotification
		want bool
	}{
		{name: "valid", cfg: cfg, n: entities.ReturnNotification{OrderNumber: "4550", Total: "20.00", Key: good}, want: true},
		{name: "lower-case key", cfg: cfg, n: entities.ReturnNotification{OrderNumber: "4550", Total: "20.00", Key: strings.ToLower(good)}, want: true},
		{name: "tampered total", cfg: cfg, n: entities.ReturnNotification{OrderNumber: "4550", Total: "2.00", Key: good}, want: false},
		{name: "empty key", cfg: cfg, n: entities.ReturnNotification{OrderNumber: "4550", Total: "20.00"}, want: false},
		{name: "no secret", cfg: entities.GatewayConfiguration{MerchantCode: "1303908"}, n: entities.ReturnNotification{OrderNumber: "4550", Total: "20.00", Key: good}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Verify(tc.cfg, tc.n); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
