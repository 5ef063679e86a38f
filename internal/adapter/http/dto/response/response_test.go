package response

import (
	"encoding/json"
	"testing"
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase"
)

func TestFromPaymentReceipt(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	res := FromPaymentReceipt(entities.PaymentReceipt{
		ID:                 "pay-1",
		QuoteID:            "q-1",
		Amount:             99.5,
		Currency:           "EUR",
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    map[string]interface{}{"a": "b"},
	})
	if res.ID != "pay-1" || res.PaymentID != "pay-1" || res.QuoteID != "q-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.Amount != 99.5 || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromQuote_ActionsAndDates(t *testing.T) {
	res := FromQuote(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRejected})
	if res.Actions == nil {
		t.Fatalf("expected non-nil actions")
	}
	if res.CreatedAt != nil {
		t.Fatalf("expected zero createdAt omitted, got %v", res.CreatedAt)
	}

	res = FromQuote(entities.Quote{ID: "q-2", Status: entities.QuoteStatusPending, CreatedAt: time.Now()})
	if len(res.Actions) == 0 || res.CreatedAt == nil {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromAddressBook_AlwaysHasGroups(t *testing.T) {
	book := FromAddressBook(entities.AddressBook{
		entities.AddressSender: {{ID: "a1", Type: entities.AddressSender, Label: "HQ"}},
	})
	raw, err := json.Marshal(book)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string][]map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out["sender"]) != 1 || out["recipient"] == nil || out["billing"] == nil {
		t.Fatalf("unexpected book: %s", raw)
	}
}

func TestFromSession(t *testing.T) {
	anon := FromSession(usecase.SessionInfo{}, "https://api.example.com")
	if anon.Authenticated || anon.User != nil || anon.APIBaseURL != "https://api.example.com" {
		t.Fatalf("unexpected anonymous session: %+v", anon)
	}

	u := usecase.SandboxUser
	res := FromSession(usecase.SessionInfo{Authenticated: true, Sandbox: true, User: &u}, "")
	if !res.IsAdmin || res.User == nil || res.User.ID != "sandbox-admin" {
		t.Fatalf("unexpected sandbox session: %+v", res)
	}
}

func TestFromDraft_NilEstimates(t *testing.T) {
	res := FromDraft(entities.WizardDraft{ID: "d-1", Step: entities.StepCargo, Version: 3})
	raw, _ := json.Marshal(res)
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	if est, ok := out["estimates"].([]any); !ok || len(est) != 0 {
		t.Fatalf("expected empty estimates array, got %s", raw)
	}
	if _, ok := out["selectedEstimate"]; !ok {
		t.Fatalf("expected selectedEstimate key, got %s", raw)
	}
	if out["version"] != float64(3) {
		t.Fatalf("unexpected version: %s", raw)
	}
}

func TestFromTracking(t *testing.T) {
	res := FromTracking(usecase.Tracking{
		Shipment:   entities.Shipment{ID: "s-1", TrackingCode: "TRK1", Status: entities.ShipmentInTransit},
		StageIndex: 2,
		Stages:     entities.ShipmentStages,
	})
	if res.Shipment.TrackingCode != "TRK1" || res.StageIndex != 2 || len(res.Stages) != len(entities.ShipmentStages) {
		t.Fatalf("unexpected tracking: %+v", res)
	}
	if res.Shipment.StatusHistory == nil {
		t.Fatalf("expected non-nil history")
	}
}

func TestFromPage(t *testing.T) {
	p := usecase.Page[entities.PackageType]{
		Items:      []entities.PackageType{{ID: "p1", Name: "Box"}},
		Page:       1,
		PageSize:   4,
		Total:      1,
		TotalPages: 1,
	}
	res := FromPage(p, FromPackageType)
	if len(res.Items) != 1 || res.Items[0].AllowedTransportTypes == nil || res.PageSize != 4 {
		t.Fatalf("unexpected page: %+v", res)
	}

	empty := FromPage(usecase.Page[entities.Pricing]{Page: 1, PageSize: 6, TotalPages: 1}, FromPricing)
	if empty.Items == nil {
		t.Fatalf("expected non-nil items")
	}
}

func TestFromDashboard(t *testing.T) {
	res := FromDashboard(usecase.Dashboard{
		Me:           entities.User{ID: "u1", IsAdmin: true},
		QuoteCount:   2,
		RecentQuotes: []entities.Quote{{ID: "q1"}, {ID: "q2"}},
	})
	if !res.Me.IsAdmin || res.QuoteCount != 2 || len(res.RecentQuotes) != 2 {
		t.Fatalf("unexpected dashboard: %+v", res)
	}
}
