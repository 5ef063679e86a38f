package entities

import (
	"testing"
)

func TestQuote_TransitionsAndActions(t *testing.T) {
	q := Quote{Status: QuoteStatusPending}
	if !q.CanTransition(QuoteStatusConfirmed) || !q.CanTransition(QuoteStatusRejected) {
		t.Fatalf("pending must go to confirmed or rejected")
	}
	if q.CanTransition(QuoteStatusPaid) {
		t.Fatalf("pending must not go to paid")
	}
	actions := q.Actions()
	if len(actions) != 2 || actions[0] != QuoteActionConfirm || actions[1] != QuoteActionReject {
		t.Fatalf("unexpected actions: %v", actions)
	}

	q = Quote{Status: QuoteStatusConfirmed, PaymentStatus: QuotePaymentConfirmed}
	actions = q.Actions()
	if len(actions) != 2 || actions[0] != QuoteActionDispatch || actions[1] != QuoteActionCreateShipment {
		t.Fatalf("unexpected actions: %v", actions)
	}

	q.ShipmentID = "s-1"
	if q.CanCreateShipment() {
		t.Fatalf("a quote converts at most once")
	}
	q = Quote{Status: QuoteStatusConfirmed, PaymentStatus: QuotePaymentPending}
	if q.CanCreateShipment() {
		t.Fatalf("payment must be confirmed")
	}

	if len((Quote{Status: QuoteStatusRejected}).Actions()) != 0 {
		t.Fatalf("rejected is terminal")
	}
}

func TestStageIndex(t *testing.T) {
	if got := StageIndex("En transit"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := StageIndex(" livré "); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
	if got := StageIndex("Rejeté"); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := StageIndex("lost at sea"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if len(ShipmentStages) != 8 {
		t.Fatalf("expected 8 stages")
	}
}

func TestGroupAddresses(t *testing.T) {
	book := GroupAddresses([]Address{
		{ID: "1", Type: AddressSender},
		{ID: "2", Type: AddressRecipient},
		{ID: "3", Type: AddressSender},
	})
	if len(book[AddressSender]) != 2 || book[AddressSender][1].ID != "3" {
		t.Fatalf("unexpected sender group: %+v", book[AddressSender])
	}
	if book[AddressBilling] == nil || len(book[AddressBilling]) != 0 {
		t.Fatalf("billing group must be present and empty")
	}
}

func TestValidateAddress(t *testing.T) {
	v := ValidateAddress(AddressInput{Type: AddressSender, Country: "F1", Phone: "abc"})
	for _, f := range []string{"label", "line1", "city", "postalCode"} {
		if v[f] != "required" {
			t.Fatalf("expected %s required, got %v", f, v)
		}
	}
	if v["country"] != "invalid_country" || v["phone"] != "invalid_phone" {
		t.Fatalf("unexpected violations: %v", v)
	}

	ok := AddressInput{
		Type: AddressBilling, Label: "Bureau", Line1: "1 rue X", City: "Lyon",
		PostalCode: "69001", Country: "fr", Phone: "(+33) 4.72.00.00.00",
	}
	if v := ValidateAddress(ok); !v.Empty() {
		t.Fatalf("expected valid address, got %v", v)
	}
}

func TestAddressInput_GPS(t *testing.T) {
	if (AddressInput{Latitude: "48.85", Longitude: ""}).GPS() != nil {
		t.Fatalf("gps requires both coordinates")
	}
	if (AddressInput{Latitude: "NaN", Longitude: "2.35"}).GPS() != nil {
		t.Fatalf("gps requires finite coordinates")
	}

	gps := (AddressInput{Latitude: "48.85", Longitude: "2,35", Accuracy: "x", CapturedAt: "2024-05-01T10:00:00Z"}).GPS()
	if gps == nil || gps.Longitude != 2.35 {
		t.Fatalf("unexpected gps: %+v", gps)
	}
	if gps.Accuracy != nil {
		t.Fatalf("unparseable accuracy must be dropped")
	}
	if gps.CapturedAt == nil {
		t.Fatalf("expected capturedAt")
	}

	p := (AddressInput{Type: AddressSender, Label: "Home", Latitude: "1", Longitude: "2", Provider: "browser"}).Payload()
	g, ok := p["gps"].(map[string]any)
	if !ok || g["provider"] != "browser" {
		t.Fatalf("unexpected gps payload: %v", p)
	}
	if _, ok := g["accuracy"]; ok {
		t.Fatalf("absent accuracy must be omitted")
	}
}

func TestPackageTypeAllowsAndPricingTransports(t *testing.T) {
	if !(PackageType{}).Allows(TransportSea) {
		t.Fatalf("empty allow-list accepts every transport")
	}
	pt := PackageType{AllowedTransportTypes: []TransportType{TransportAir}}
	if pt.Allows(TransportRoad) {
		t.Fatalf("road is not allowed")
	}

	p := Pricing{Rates: map[TransportType]TransportPricing{
		TransportRoad: {Mode: PricingFlat},
		TransportAir:  {Mode: PricingDimension},
	}}
	got := p.Transports()
	if len(got) != 2 || got[0] != TransportAir || got[1] != TransportRoad {
		t.Fatalf("unexpected transports: %v", got)
	}
}
