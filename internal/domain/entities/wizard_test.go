package entities

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func validCargoDraft() WizardDraft {
	d := NewWizardDraft("d-1", "u-1", time.Now())
	if err := d.UpdateItinerary(ItineraryInput{Origin: "Paris", Destination: "Dakar"}); err != nil {
		panic(err)
	}
	if _, err := d.Advance(); err != nil {
		panic(err)
	}
	if err := d.UpdateCargo(CargoInput{TransportType: TransportAir, Weight: "12"}); err != nil {
		panic(err)
	}
	return d
}

func TestWizardDraft_Advance(t *testing.T) {
	t.Run("itinerary requires origin and destination", func(t *testing.T) {
		d := NewWizardDraft("d-1", "u-1", time.Now())
		v, err := d.Advance()
		if !errors.Is(err, ErrStepInvalid) {
			t.Fatalf("expected ErrStepInvalid, got %v", err)
		}
		if v["origin"] != "required" || v["destination"] != "required" {
			t.Fatalf("unexpected violations: %v", v)
		}
		if d.Step != StepItinerary {
			t.Fatalf("expected to stay on itinerary, got %s", d.Step)
		}
	})

	t.Run("cargo needs a selected estimate", func(t *testing.T) {
		d := validCargoDraft()
		if _, err := d.Advance(); !errors.Is(err, ErrEstimateRequired) {
			t.Fatalf("expected ErrEstimateRequired, got %v", err)
		}
		d.SetEstimates([]Estimate{{EstimatedPrice: 10, Currency: "EUR"}})
		if _, err := d.Advance(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Step != StepContacts {
			t.Fatalf("expected contacts, got %s", d.Step)
		}
	})

	t.Run("contacts step does not advance", func(t *testing.T) {
		d := validCargoDraft()
		d.SetEstimates([]Estimate{{EstimatedPrice: 10}})
		_, _ = d.Advance()
		if _, err := d.Advance(); !errors.Is(err, ErrNotOnContactsStep) {
			t.Fatalf("expected ErrNotOnContactsStep, got %v", err)
		}
	})
}

func TestWizardDraft_InvalidationOnCargoChange(t *testing.T) {
	d := validCargoDraft()
	d.SetEstimates([]Estimate{{EstimatedPrice: 30}, {EstimatedPrice: 10}})
	if _, err := d.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := d.UpdateContacts(ContactsInput{ProductType: "docs"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Estimates) != 2 {
		t.Fatalf("contacts change must keep estimates")
	}

	if err := d.UpdateCargo(CargoInput{TransportType: TransportAir, Weight: "13"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Estimates) != 0 || d.SelectedEstimate != nil {
		t.Fatalf("expected estimates cleared, got %+v", d.Estimates)
	}
	if d.Step != StepCargo {
		t.Fatalf("expected rewind to cargo, got %s", d.Step)
	}

	d.SetEstimates([]Estimate{{EstimatedPrice: 10}})
	if err := d.UpdateCargo(CargoInput{TransportType: TransportAir, Weight: "13"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.Selected(); !ok {
		t.Fatalf("unchanged cargo must keep the selection")
	}
}

func TestWizardDraft_InvalidationOnItineraryChange(t *testing.T) {
	d := validCargoDraft()
	d.SetEstimates([]Estimate{{EstimatedPrice: 30}, {EstimatedPrice: 10}})
	if err := d.SelectEstimate(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := d.UpdateItinerary(ItineraryInput{Origin: "Paris", Destination: "Dakar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Estimates) != 2 || d.SelectedEstimate == nil || *d.SelectedEstimate != 1 {
		t.Fatalf("same itinerary must keep estimates and selection, got %+v %v", d.Estimates, d.SelectedEstimate)
	}

	if err := d.UpdateItinerary(ItineraryInput{Origin: "Lyon", Destination: "Dakar"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Estimates) != 0 || d.SelectedEstimate != nil {
		t.Fatalf("expected estimates cleared, got %+v %v", d.Estimates, d.SelectedEstimate)
	}
	if d.Step != StepCargo {
		t.Fatalf("expected rewind to cargo, got %s", d.Step)
	}
	if d.Form.Origin != "Lyon" {
		t.Fatalf("expected new origin, got %s", d.Form.Origin)
	}
}

func TestWizardDraft_SetEstimatesSortsAndSelectsCheapest(t *testing.T) {
	d := validCargoDraft()
	d.SetEstimates([]Estimate{
		{EstimatedPrice: 50, Provider: "cma-cgm"},
		{EstimatedPrice: 20, Provider: "internal"},
		{EstimatedPrice: 20, Provider: "second"},
	})
	est, ok := d.Selected()
	if !ok || est.Provider != "internal" {
		t.Fatalf("expected cheapest selected, got %+v", est)
	}
	if d.Estimates[1].Provider != "second" || d.Estimates[2].EstimatedPrice != 50 {
		t.Fatalf("unexpected order: %+v", d.Estimates)
	}

	if err := d.SelectEstimate(3); !errors.Is(err, ErrEstimateIndex) {
		t.Fatalf("expected ErrEstimateIndex, got %v", err)
	}
	if err := d.SelectEstimate(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d.SetEstimates(nil)
	if d.SelectedEstimate != nil {
		t.Fatalf("empty estimates must clear selection")
	}
}

func TestWizardDraft_BackAndSubmitted(t *testing.T) {
	d := NewWizardDraft("d-1", "u-1", time.Now())
	if err := d.Back(); !errors.Is(err, ErrNoPreviousStep) {
		t.Fatalf("expected ErrNoPreviousStep, got %v", err)
	}
	if err := d.UpdateCargo(CargoInput{TransportType: TransportSea}); !errors.Is(err, ErrStepNotReached) {
		t.Fatalf("expected ErrStepNotReached, got %v", err)
	}

	d = validCargoDraft()
	if err := d.Back(); err != nil || d.Step != StepItinerary {
		t.Fatalf("expected itinerary, got %s err=%v", d.Step, err)
	}

	d.MarkSubmitted("q-1", "s-1")
	if err := d.Back(); !errors.Is(err, ErrDraftSubmitted) {
		t.Fatalf("expected ErrDraftSubmitted, got %v", err)
	}
	if err := d.UpdateItinerary(ItineraryInput{Origin: "x"}); !errors.Is(err, ErrDraftSubmitted) {
		t.Fatalf("expected ErrDraftSubmitted, got %v", err)
	}
	if _, _, err := d.ReadyToSubmit(); !errors.Is(err, ErrDraftSubmitted) {
		t.Fatalf("expected ErrDraftSubmitted, got %v", err)
	}
}

func TestWizardDraft_ReadyToSubmit(t *testing.T) {
	d := validCargoDraft()
	d.SetEstimates([]Estimate{{EstimatedPrice: 99, Currency: "EUR", Provider: "internal"}})
	_, _ = d.Advance()

	_, v, err := d.ReadyToSubmit()
	if !errors.Is(err, ErrStepInvalid) || v["productType"] != "required" {
		t.Fatalf("expected productType violation, got %v %v", v, err)
	}

	_ = d.UpdateContacts(ContactsInput{
		ProductType:           "electronics",
		ContactPhone:          "+33 6 12 34 56",
		RecipientContactName:  "Awa",
		RecipientContactPhone: "77-123-45-67",
		PickupOption:          DropOffAgency,
		RecipientAddressID:    "addr-2",
	})
	est, v, err := d.ReadyToSubmit()
	if err != nil {
		t.Fatalf("unexpected error: %v (%v)", err, v)
	}
	if est.EstimatedPrice != 99 {
		t.Fatalf("unexpected estimate: %+v", est)
	}
}

func TestValidateCargo(t *testing.T) {
	cases := []struct {
		name  string
		form  WizardForm
		field string
		code  string
	}{
		{"missing transport", WizardForm{}, "transportType", "required"},
		{"air without weight", WizardForm{TransportType: TransportAir}, "weight", "required"},
		{"sea partial dims", WizardForm{TransportType: TransportSea, Length: "10", Width: "10"}, "volume", "volume_or_dimensions_required"},
		{"road nothing", WizardForm{TransportType: TransportRoad}, "weight", "weight_or_volume_required"},
		{"negative number", WizardForm{TransportType: TransportRoad, Volume: "-1", Weight: "3"}, "volume", "must_be_positive"},
		{"not a number", WizardForm{TransportType: TransportAir, Weight: "abc"}, "weight", "invalid_number"},
		{"package type still checks numbers", WizardForm{TransportType: TransportAir, PackageTypeID: "pt-1", Weight: "0"}, "weight", "must_be_positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := ValidateCargo(tc.form)
			if v[tc.field] != tc.code {
				t.Fatalf("expected %s=%s, got %v", tc.field, tc.code, v)
			}
		})
	}

	ok := []WizardForm{
		{TransportType: TransportAir, Weight: "1,5"},
		{TransportType: TransportSea, Volume: "2"},
		{TransportType: TransportSea, Length: "100", Width: "50", Height: "40"},
		{TransportType: TransportRoad, Volume: "3"},
		{TransportType: TransportSea, PackageTypeID: "pt-1"},
	}
	for _, f := range ok {
		if v := ValidateCargo(f); !v.Empty() {
			t.Fatalf("expected valid cargo %+v, got %v", f, v)
		}
	}
}

func TestValidateContacts(t *testing.T) {
	f := WizardForm{
		ProductType:           "food",
		ContactPhone:          "123",
		RecipientContactName:  "Bob",
		RecipientContactPhone: "+221 77 000 00 00",
		PickupOption:          PickupAtSender,
		RecipientContactEmail: "not-an-email",
	}
	v := ValidateContacts(f)
	want := map[string]string{
		"contactPhone":          "invalid_phone",
		"productLocation":       "required",
		"senderAddressId":       "required",
		"recipientAddressId":    "required",
		"recipientContactEmail": "invalid_email",
	}
	for field, code := range want {
		if v[field] != code {
			t.Fatalf("expected %s=%s, got %v", field, code, v)
		}
	}
	if _, ok := v["recipientContactPhone"]; ok {
		t.Fatalf("recipient phone should be valid: %v", v)
	}
}

func TestNumeric_UnmarshalJSON(t *testing.T) {
	var f WizardForm
	if err := json.Unmarshal([]byte(`{"weight": 12.5, "volume": "3,2", "length": null}`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w, ok := f.Weight.Float(); !ok || w != 12.5 {
		t.Fatalf("unexpected weight: %q", f.Weight)
	}
	if v, ok := f.Volume.Float(); !ok || v != 3.2 {
		t.Fatalf("unexpected volume: %q", f.Volume)
	}
	if f.Length.Present() {
		t.Fatalf("null must decode as absent")
	}
}

func TestWizardForm_Payloads(t *testing.T) {
	t.Run("air estimate carries weight only", func(t *testing.T) {
		f := WizardForm{Origin: "Paris", Destination: "Dakar", TransportType: TransportAir, Weight: "4", Volume: "9", Length: "3"}
		p := f.EstimatePayload()
		if p["weight"] != 4.0 {
			t.Fatalf("expected weight, got %v", p)
		}
		if _, ok := p["volume"]; ok {
			t.Fatalf("air estimate must not carry volume: %v", p)
		}
	})

	t.Run("sea quote derives volume from dimensions", func(t *testing.T) {
		f := WizardForm{Origin: "Le Havre", Destination: "Dakar", TransportType: TransportSea, Length: "200", Width: "100", Height: "50"}
		p := f.CreateQuotePayload(Estimate{EstimatedPrice: 300, Currency: "EUR", Provider: "cma-cgm"})
		if p["volume"] != 1.0 {
			t.Fatalf("expected derived volume 1, got %v", p["volume"])
		}
		if p["estimatedPrice"] != 300.0 || p["provider"] != "cma-cgm" {
			t.Fatalf("expected selected estimate merged, got %v", p)
		}
		if _, ok := p["pickupOption"]; ok {
			t.Fatalf("empty pickup option must be omitted")
		}
	})

	t.Run("road quote keeps weight and volume", func(t *testing.T) {
		f := WizardForm{TransportType: TransportRoad, Weight: "100", Volume: "2", PickupOption: PickupAtSender, SenderAddressID: " a-1 "}
		p := f.CreateQuotePayload(Estimate{EstimatedPrice: 1})
		if p["weight"] != 100.0 || p["volume"] != 2.0 || p["senderAddressId"] != "a-1" {
			t.Fatalf("unexpected payload: %v", p)
		}
	})
}
