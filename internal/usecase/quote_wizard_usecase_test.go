package usecase

import (
	"context"
	"errors"
	"testing"

	"freight_portal/internal/domain/entities"
	mock_interfaces "freight_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type statusErr struct {
	status int
	msg    string
}

func (e *statusErr) Error() string   { return e.msg }
func (e *statusErr) StatusCode() int { return e.status }

type wizardMocks struct {
	drafts    *mock_interfaces.MockIWizardDraftRepository
	quotes    *mock_interfaces.MockIQuoteGateway
	shipments *mock_interfaces.MockIShipmentGateway
	events    *mock_interfaces.MockIEventPublisher
}

func newWizard(t *testing.T) (*QuoteWizardUseCase, wizardMocks) {
	ctrl := gomock.NewController(t)
	m := wizardMocks{
		drafts:    mock_interfaces.NewMockIWizardDraftRepository(ctrl),
		quotes:    mock_interfaces.NewMockIQuoteGateway(ctrl),
		shipments: mock_interfaces.NewMockIShipmentGateway(ctrl),
		events:    mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	return NewQuoteWizardUseCase(m.drafts, m.quotes, m.shipments, m.events), m
}

// expectSaves records every saved draft and bumps its version like the store does.
func expectSaves(m wizardMocks, saved *[]entities.WizardDraft) {
	m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
		d.Version++
		*saved = append(*saved, d)
		return d, nil
	}).AnyTimes()
}

func contactsDraft() entities.WizardDraft {
	d := entities.NewWizardDraft("d-1", "user-1", fixedNow)
	d.Version = 3
	d.Step = entities.StepContacts
	d.Form = entities.WizardForm{
		Origin:                "Paris",
		Destination:           "Dakar",
		TransportType:         entities.TransportAir,
		Weight:                "12",
		ProductType:           "electronics",
		ContactPhone:          "+33 6 12 34 56 78",
		RecipientContactName:  "Awa",
		RecipientContactPhone: "+221 77 123 45 67",
		PickupOption:          entities.DropOffAgency,
		RecipientAddressID:    "addr-r",
	}
	d.SetEstimates([]entities.Estimate{{EstimatedPrice: 90, Currency: "EUR", Provider: "AirCo"}})
	return d
}

func TestQuoteWizardUseCase_Start(t *testing.T) {
	uc, m := newWizard(t)
	m.drafts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
		if d.ID == "" || d.OwnerID != "user-1" || d.Step != entities.StepItinerary {
			t.Fatalf("unexpected draft: %+v", d)
		}
		d.Version = 1
		return d, nil
	})

	d, err := uc.Start(context.Background(), " user-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Version != 1 {
		t.Fatalf("expected stored version, got %d", d.Version)
	}
}

func TestQuoteWizardUseCase_Get(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _ := newWizard(t)
		if _, err := uc.Get(context.Background(), "user-1", " "); !errors.Is(err, ErrInvalidDraftID) {
			t.Fatalf("expected ErrInvalidDraftID, got %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.WizardDraft{}, nil)
		if _, err := uc.Get(context.Background(), "user-1", "d-1"); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("other owner reads as missing", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.NewWizardDraft("d-1", "someone-else", fixedNow), nil)
		if _, err := uc.Get(context.Background(), "user-1", "d-1"); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})
}

func TestQuoteWizardUseCase_UpdateCargoInvalidatesEstimates(t *testing.T) {
	uc, m := newWizard(t)
	d := contactsDraft()
	m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)
	var saved []entities.WizardDraft
	expectSaves(m, &saved)

	got, err := uc.UpdateCargo(context.Background(), "user-1", "d-1", entities.CargoInput{TransportType: entities.TransportAir, Weight: "15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Estimates) != 0 || got.SelectedEstimate != nil {
		t.Fatalf("expected estimates cleared, got %+v", got.Estimates)
	}
	if got.Step != entities.StepCargo {
		t.Fatalf("expected rewind to cargo, got %s", got.Step)
	}
	if got.Version != d.Version+1 {
		t.Fatalf("expected version bump, got %d", got.Version)
	}
}

func TestQuoteWizardUseCase_UpdateItineraryInvalidatesEstimates(t *testing.T) {
	uc, m := newWizard(t)
	d := contactsDraft()
	m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)
	var saved []entities.WizardDraft
	expectSaves(m, &saved)

	got, err := uc.UpdateItinerary(context.Background(), "user-1", "d-1", entities.ItineraryInput{Origin: "Marseille", Destination: "Dakar"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Estimates) != 0 || got.SelectedEstimate != nil {
		t.Fatalf("expected estimates cleared, got %+v %v", got.Estimates, got.SelectedEstimate)
	}
	if got.Step != entities.StepCargo {
		t.Fatalf("expected rewind to cargo, got %s", got.Step)
	}
	if len(saved) != 1 || saved[0].Form.Origin != "Marseille" || len(saved[0].Estimates) != 0 {
		t.Fatalf("unexpected saved drafts: %+v", saved)
	}
}

func TestQuoteWizardUseCase_Advance(t *testing.T) {
	t.Run("violations", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.NewWizardDraft("d-1", "user-1", fixedNow), nil)

		_, err := uc.Advance(context.Background(), "user-1", "d-1")
		var verr *ValidationError
		if !errors.As(err, &verr) || !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Fields["origin"] != "required" || verr.Fields["destination"] != "required" {
			t.Fatalf("unexpected fields: %v", verr.Fields)
		}
	})

	t.Run("cargo without estimate", func(t *testing.T) {
		uc, m := newWizard(t)
		d := contactsDraft()
		d.Step = entities.StepCargo
		d.InvalidateEstimates()
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		if _, err := uc.Advance(context.Background(), "user-1", "d-1"); !errors.Is(err, entities.ErrEstimateRequired) {
			t.Fatalf("expected ErrEstimateRequired, got %v", err)
		}
	})
}

func TestQuoteWizardUseCase_RequestEstimates(t *testing.T) {
	cargo := func() entities.WizardDraft {
		d := contactsDraft()
		d.Step = entities.StepCargo
		d.InvalidateEstimates()
		return d
	}

	t.Run("sorted with cheapest selected", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(cargo(), nil)
		m.quotes.EXPECT().Estimate(gomock.Any(), "tok", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, payload map[string]any) ([]entities.Estimate, error) {
			if payload["weight"] != 12.0 || payload["transportType"] != "air" {
				t.Fatalf("unexpected payload: %v", payload)
			}
			return []entities.Estimate{{EstimatedPrice: 120, Provider: "B"}, {EstimatedPrice: 80, Provider: "A"}}, nil
		})
		var saved []entities.WizardDraft
		expectSaves(m, &saved)

		got, err := uc.RequestEstimates(context.Background(), "tok", "user-1", "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		est, ok := got.Selected()
		if !ok || est.Provider != "A" || got.Estimates[1].Provider != "B" {
			t.Fatalf("unexpected estimates: %+v", got.Estimates)
		}
	})

	t.Run("no tariff", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(cargo(), nil)
		m.quotes.EXPECT().Estimate(gomock.Any(), "tok", gomock.Any()).Return([]entities.Estimate{}, nil)
		var saved []entities.WizardDraft
		expectSaves(m, &saved)

		if _, err := uc.RequestEstimates(context.Background(), "tok", "user-1", "d-1"); !errors.Is(err, ErrNoTariff) {
			t.Fatalf("expected ErrNoTariff, got %v", err)
		}
	})

	t.Run("transport failure is not no tariff", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(cargo(), nil)
		boom := errors.New("unable to reach server")
		m.quotes.EXPECT().Estimate(gomock.Any(), "tok", gomock.Any()).Return(nil, boom)

		_, err := uc.RequestEstimates(context.Background(), "tok", "user-1", "d-1")
		if !errors.Is(err, boom) || errors.Is(err, ErrNoTariff) {
			t.Fatalf("expected transport error, got %v", err)
		}
	})

	t.Run("invalid cargo never reaches backend", func(t *testing.T) {
		uc, m := newWizard(t)
		d := cargo()
		d.Form.Weight = ""
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		if _, err := uc.RequestEstimates(context.Background(), "tok", "user-1", "d-1"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("itinerary step", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.NewWizardDraft("d-1", "user-1", fixedNow), nil)
		if _, err := uc.RequestEstimates(context.Background(), "tok", "user-1", "d-1"); !errors.Is(err, entities.ErrStepNotReached) {
			t.Fatalf("expected ErrStepNotReached, got %v", err)
		}
	})
}

func TestQuoteWizardUseCase_Submit(t *testing.T) {
	t.Run("requires token", func(t *testing.T) {
		uc, _ := newWizard(t)
		if _, err := uc.Submit(context.Background(), "", "user-1", "d-1"); !errors.Is(err, ErrSessionRequired) {
			t.Fatalf("expected ErrSessionRequired, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(contactsDraft(), nil)
		var saved []entities.WizardDraft
		expectSaves(m, &saved)
		m.quotes.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, payload map[string]any) (entities.Quote, error) {
			if payload["estimatedPrice"] != 90.0 || payload["provider"] != "AirCo" {
				t.Fatalf("unexpected payload: %v", payload)
			}
			return entities.Quote{ID: "q-1"}, nil
		})
		m.shipments.EXPECT().CreateFromQuote(gomock.Any(), "tok", "q-1").Return(entities.Shipment{ID: "s-1", TrackingCode: "TRK1"}, nil)
		var published []entities.EventType
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Event) error {
			published = append(published, e.Type)
			return nil
		}).Times(2)

		res, err := uc.Submit(context.Background(), "tok", "user-1", "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Draft.Step != entities.StepSubmitted || res.Draft.QuoteID != "q-1" || res.Draft.ShipmentID != "s-1" {
			t.Fatalf("unexpected draft: %+v", res.Draft)
		}
		if len(saved) != 2 {
			t.Fatalf("expected claim and final save, got %d", len(saved))
		}
		if published[0] != entities.EventQuoteSubmitted || published[1] != entities.EventShipmentCreated {
			t.Fatalf("unexpected events: %v", published)
		}
	})

	t.Run("shipment failure voids the quote", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(contactsDraft(), nil)
		var saved []entities.WizardDraft
		expectSaves(m, &saved)
		m.quotes.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).Return(entities.Quote{ID: "q-1"}, nil)
		m.shipments.EXPECT().CreateFromQuote(gomock.Any(), "tok", "q-1").Return(entities.Shipment{}, &statusErr{status: 500, msg: "boom"})
		m.quotes.EXPECT().Delete(gomock.Any(), "tok", "q-1").Return(nil)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Event) error {
			if e.Type != entities.EventQuoteCompensated || e.Key != "q-1" {
				t.Fatalf("unexpected event: %+v", e)
			}
			return nil
		})

		_, err := uc.Submit(context.Background(), "tok", "user-1", "d-1")
		if !errors.Is(err, ErrShipmentCreationFailed) {
			t.Fatalf("expected ErrShipmentCreationFailed, got %v", err)
		}
		last := saved[len(saved)-1]
		if last.Compensation != entities.CompensationVoided || last.QuoteID != "" || last.Step != entities.StepContacts {
			t.Fatalf("unexpected draft after compensation: %+v", last)
		}
	})

	t.Run("failed compensation orphans the quote", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(contactsDraft(), nil)
		var saved []entities.WizardDraft
		expectSaves(m, &saved)
		m.quotes.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).Return(entities.Quote{ID: "q-1"}, nil)
		m.shipments.EXPECT().CreateFromQuote(gomock.Any(), "tok", "q-1").Return(entities.Shipment{}, errors.New("unable to reach server"))
		m.quotes.EXPECT().Delete(gomock.Any(), "tok", "q-1").Return(errors.New("unable to reach server"))
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Event) error {
			if e.Type != entities.EventQuoteOrphaned {
				t.Fatalf("unexpected event: %+v", e)
			}
			return errors.New("broker down")
		})

		_, err := uc.Submit(context.Background(), "tok", "user-1", "d-1")
		if !errors.Is(err, ErrShipmentCreationFailed) {
			t.Fatalf("expected ErrShipmentCreationFailed, got %v", err)
		}
		last := saved[len(saved)-1]
		if last.Compensation != entities.CompensationOrphaned || last.QuoteID != "q-1" {
			t.Fatalf("unexpected draft after orphaning: %+v", last)
		}
	})

	t.Run("quote failure needs no compensation", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(contactsDraft(), nil)
		var saved []entities.WizardDraft
		expectSaves(m, &saved)
		m.quotes.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).Return(entities.Quote{}, &statusErr{status: 400, msg: "bad"})

		_, err := uc.Submit(context.Background(), "tok", "user-1", "d-1")
		if err == nil || errors.Is(err, ErrShipmentCreationFailed) {
			t.Fatalf("expected backend error, got %v", err)
		}
	})

	t.Run("final save retried on the reloaded draft", func(t *testing.T) {
		uc, m := newWizard(t)
		d := contactsDraft()
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)
		var saved []entities.WizardDraft
		gomock.InOrder(
			m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
				d.Version++
				return d, nil
			}),
			m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WizardDraft{}, entities.ErrDraftConflict),
		)
		reloaded := contactsDraft()
		reloaded.Version = 5
		reloaded.Form.Notes = "edited elsewhere"
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(reloaded, nil)
		m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
			saved = append(saved, d)
			d.Version++
			return d, nil
		})
		m.quotes.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).Return(entities.Quote{ID: "q-1"}, nil)
		m.shipments.EXPECT().CreateFromQuote(gomock.Any(), "tok", "q-1").Return(entities.Shipment{ID: "s-1"}, nil)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := uc.Submit(context.Background(), "tok", "user-1", "d-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved) != 1 || saved[0].Version != 5 || saved[0].Step != entities.StepSubmitted || saved[0].QuoteID != "q-1" {
			t.Fatalf("unexpected retried save: %+v", saved)
		}
		if res.Draft.Step != entities.StepSubmitted || res.Draft.Form.Notes != "edited elsewhere" {
			t.Fatalf("unexpected draft: %+v", res.Draft)
		}
	})

	t.Run("unrecorded submission reports created ids", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(contactsDraft(), nil).Times(2)
		gomock.InOrder(
			m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
				d.Version++
				return d, nil
			}),
			m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WizardDraft{}, errors.New("throttled")).Times(2),
		)
		m.quotes.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).Return(entities.Quote{ID: "q-1"}, nil)
		m.shipments.EXPECT().CreateFromQuote(gomock.Any(), "tok", "q-1").Return(entities.Shipment{ID: "s-1"}, nil)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := uc.Submit(context.Background(), "tok", "user-1", "d-1")
		var notRecorded *SubmissionNotRecordedError
		if !errors.As(err, &notRecorded) || !errors.Is(err, ErrSubmissionNotRecorded) {
			t.Fatalf("expected SubmissionNotRecordedError, got %v", err)
		}
		if notRecorded.QuoteID != "q-1" || notRecorded.ShipmentID != "s-1" {
			t.Fatalf("unexpected ids: %+v", notRecorded)
		}
		if res.Quote.ID != "q-1" || res.Shipment.ID != "s-1" {
			t.Fatalf("expected created records in result, got %+v", res)
		}
	})

	t.Run("reload finds another submission", func(t *testing.T) {
		uc, m := newWizard(t)
		other := contactsDraft()
		other.MarkSubmitted("q-other", "s-other")
		gomock.InOrder(
			m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(contactsDraft(), nil),
			m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(other, nil),
		)
		gomock.InOrder(
			m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
				d.Version++
				return d, nil
			}),
			m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WizardDraft{}, entities.ErrDraftConflict),
		)
		m.quotes.EXPECT().Create(gomock.Any(), "tok", gomock.Any()).Return(entities.Quote{ID: "q-1"}, nil)
		m.shipments.EXPECT().CreateFromQuote(gomock.Any(), "tok", "q-1").Return(entities.Shipment{ID: "s-1"}, nil)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		_, err := uc.Submit(context.Background(), "tok", "user-1", "d-1")
		if !errors.Is(err, ErrSubmissionNotRecorded) || !errors.Is(err, entities.ErrDraftSubmitted) {
			t.Fatalf("expected unrecorded submission over another one, got %v", err)
		}
	})

	t.Run("concurrent submit conflicts before any backend call", func(t *testing.T) {
		uc, m := newWizard(t)
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(contactsDraft(), nil)
		m.drafts.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.WizardDraft{}, entities.ErrDraftConflict)

		if _, err := uc.Submit(context.Background(), "tok", "user-1", "d-1"); !errors.Is(err, entities.ErrDraftConflict) {
			t.Fatalf("expected ErrDraftConflict, got %v", err)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		uc, m := newWizard(t)
		d := contactsDraft()
		d.MarkSubmitted("q-1", "s-1")
		m.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(d, nil)

		if _, err := uc.Submit(context.Background(), "tok", "user-1", "d-1"); !errors.Is(err, entities.ErrDraftSubmitted) {
			t.Fatalf("expected ErrDraftSubmitted, got %v", err)
		}
	})
}
