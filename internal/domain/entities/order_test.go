package entities

import "testing"

func TestOrderSnapshot_DistinctShippingProfiles(t *testing.T) {
	a := Address{Locality: "Austin", CountryCode: "US"}
	b := Address{Locality: "Boston", CountryCode: "US"}

	order := OrderSnapshot{ShipmentProfiles: []ShippingProfile{
		{ProfileID: "p1", Address: a},
		{ProfileID: "p1", Address: a},
		{Address: b},
		{Address: b},
		{ProfileID: "p2", Address: a},
	}}

	got := order.DistinctShippingProfiles()
	if len(got) != 3 || got[0].ProfileID != "p1" || got[1].Address.Locality != "Boston" || got[2].ProfileID != "p2" {
		t.Fatalf("unexpected profiles: %+v", got)
	}
}

func TestOrderSnapshot_DistinctShippingProfiles_SkipsEmpty(t *testing.T) {
	a := Address{Locality: "Austin", CountryCode: "US"}

	cases := []struct {
		name     string
		profiles []ShippingProfile
		want     int
	}{
		{name: "only empty", profiles: []ShippingProfile{{}}, want: 0},
		{name: "profile and empty", profiles: []ShippingProfile{{ProfileID: "p1", Address: a}, {}}, want: 1},
		{name: "blank fields", profiles: []ShippingProfile{{ProfileID: " ", Address: Address{Locality: "  "}}, {Address: a}}, want: 1},
		{name: "id without address", profiles: []ShippingProfile{{ProfileID: "p1"}}, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := OrderSnapshot{ShipmentProfiles: tc.profiles}
			if got := order.DistinctShippingProfiles(); len(got) != tc.want {
				t.Fatalf("expected %d profiles, got %+v", tc.want, got)
			}
		})
	}
}

func TestAddress_FullName(t *testing.T) {
	if got := (Address{GivenName: "Ann", FamilyName: "Lee"}).FullName(); got != "Ann Lee" {
		t.Fatalf("unexpected name %q", got)
	}
}
