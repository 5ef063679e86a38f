package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDraftNotFound          = errors.New("wizard draft not found")
	ErrInvalidDraftID         = errors.New("invalid draft id")
	ErrNoTariff               = errors.New("no tariff matches the itinerary and cargo")
	ErrShipmentCreationFailed = errors.New("shipment creation failed")
	ErrSubmissionNotRecorded  = errors.New("submission created but not recorded on the draft")
)

const compensationTimeout = 10 * time.Second

// SubmissionNotRecordedError carries the ids of a quote and shipment that
// exist in the backend while the stored draft does not reference them.
type SubmissionNotRecordedError struct {
	QuoteID    string
	ShipmentID string
	Err        error
}

func (e *SubmissionNotRecordedError) Error() string {
	return fmt.Sprintf("%v quote=%s shipment=%s: %v", ErrSubmissionNotRecorded, e.QuoteID, e.ShipmentID, e.Err)
}

func (e *SubmissionNotRecordedError) Unwrap() []error { return []error{ErrSubmissionNotRecorded, e.Err} }

// IQuoteWizardUseCase drives the multi-step quote request.
//
// Drafts live in the portal's own store; the backend only sees the estimate
// call and the final quote + shipment creation.
type IQuoteWizardUseCase interface {
	Start(ctx context.Context, ownerID string) (entities.WizardDraft, error)
	Get(ctx context.Context, ownerID, draftID string) (entities.WizardDraft, error)
	UpdateItinerary(ctx context.Context, ownerID, draftID string, in entities.ItineraryInput) (entities.WizardDraft, error)
	UpdateCargo(ctx context.Context, ownerID, draftID string, in entities.CargoInput) (entities.WizardDraft, error)
	UpdateContacts(ctx context.Context, ownerID, draftID string, in entities.ContactsInput) (entities.WizardDraft, error)
	RequestEstimates(ctx context.Context, token, ownerID, draftID string) (entities.WizardDraft, error)
	SelectEstimate(ctx context.Context, ownerID, draftID string, index int) (entities.WizardDraft, error)
	Advance(ctx context.Context, ownerID, draftID string) (entities.WizardDraft, error)
	Back(ctx context.Context, ownerID, draftID string) (entities.WizardDraft, error)
	Submit(ctx context.Context, token, ownerID, draftID string) (SubmitResult, error)
}

// SubmitResult is what a successful submission created.
type SubmitResult struct {
	Draft    entities.WizardDraft
	Quote    entities.Quote
	Shipment entities.Shipment
}

type QuoteWizardUseCase struct {
	drafts    interfaces.IWizardDraftRepository
	quotes    interfaces.IQuoteGateway
	shipments interfaces.IShipmentGateway
	events    interfaces.IEventPublisher
	now       func() time.Time
}

var _ IQuoteWizardUseCase = (*QuoteWizardUseCase)(nil)

func NewQuoteWizardUseCase(drafts interfaces.IWizardDraftRepository, quotes interfaces.IQuoteGateway, shipments interfaces.IShipmentGateway, events interfaces.IEventPublisher) *QuoteWizardUseCase {
	return &QuoteWizardUseCase{drafts: drafts, quotes: quotes, shipments: shipments, events: events, now: time.Now}
}

func (u *QuoteWizardUseCase) Start(ctx context.Context, ownerID string) (entities.WizardDraft, error) {
	d := entities.NewWizardDraft(uuid.NewString(), trimmed(ownerID), u.now().UTC())
	created, err := u.drafts.Create(ctx, d)
	if err != nil {
		log.Printf("[wizard][usecase] create draft failed owner=%s err=%v", d.OwnerID, err)
		return entities.WizardDraft{}, err
	}
	log.Printf("[wizard][usecase] draft started id=%s owner=%s", created.ID, created.OwnerID)
	return created, nil
}

// Get loads a draft owned by ownerID. Someone else's draft reads as missing.
func (u *QuoteWizardUseCase) Get(ctx context.Context, ownerID, draftID string) (entities.WizardDraft, error) {
	draftID = trimmed(draftID)
	if draftID == "" {
		return entities.WizardDraft{}, ErrInvalidDraftID
	}
	d, err := u.drafts.GetByID(ctx, draftID)
	if err != nil {
		return entities.WizardDraft{}, err
	}
	if d.ID == "" || d.OwnerID != trimmed(ownerID) {
		return entities.WizardDraft{}, ErrDraftNotFound
	}
	return d, nil
}

func (u *QuoteWizardUseCase) UpdateItinerary(ctx context.Context, ownerID, draftID string, in entities.ItineraryInput) (entities.WizardDraft, error) {
	return u.mutate(ctx, ownerID, draftID, func(d *entities.WizardDraft) error {
		return d.UpdateItinerary(in)
	})
}

func (u *QuoteWizardUseCase) UpdateCargo(ctx context.Context, ownerID, draftID string, in entities.CargoInput) (entities.WizardDraft, error) {
	return u.mutate(ctx, ownerID, draftID, func(d *entities.WizardDraft) error {
		return d.UpdateCargo(in)
	})
}

func (u *QuoteWizardUseCase) UpdateContacts(ctx context.Context, ownerID, draftID string, in entities.ContactsInput) (entities.WizardDraft, error) {
	return u.mutate(ctx, ownerID, draftID, func(d *entities.WizardDraft) error {
		return d.UpdateContacts(in)
	})
}

func (u *QuoteWizardUseCase) SelectEstimate(ctx context.Context, ownerID, draftID string, index int) (entities.WizardDraft, error) {
	return u.mutate(ctx, ownerID, draftID, func(d *entities.WizardDraft) error {
		return d.SelectEstimate(index)
	})
}

func (u *QuoteWizardUseCase) Advance(ctx context.Context, ownerID, draftID string) (entities.WizardDraft, error) {
	return u.mutate(ctx, ownerID, draftID, func(d *entities.WizardDraft) error {
		v, err := d.Advance()
		if errors.Is(err, entities.ErrStepInvalid) {
			return invalid(v)
		}
		return err
	})
}

func (u *QuoteWizardUseCase) Back(ctx context.Context, ownerID, draftID string) (entities.WizardDraft, error) {
	return u.mutate(ctx, ownerID, draftID, func(d *entities.WizardDraft) error {
		return d.Back()
	})
}

// RequestEstimates validates itinerary and cargo, asks the backend for prices
// and stores them cheapest first with the cheapest selected. An empty answer
// clears any previous estimates and reports ErrNoTariff.
func (u *QuoteWizardUseCase) RequestEstimates(ctx context.Context, token, ownerID, draftID string) (entities.WizardDraft, error) {
	d, err := u.Get(ctx, ownerID, draftID)
	if err != nil {
		return entities.WizardDraft{}, err
	}
	switch d.Step {
	case entities.StepSubmitted:
		return entities.WizardDraft{}, entities.ErrDraftSubmitted
	case entities.StepItinerary:
		return entities.WizardDraft{}, entities.ErrStepNotReached
	}
	v := entities.ValidateItinerary(d.Form)
	v.Merge(entities.ValidateCargo(d.Form))
	if !v.Empty() {
		return entities.WizardDraft{}, invalid(v)
	}

	payload := d.Form.EstimatePayload()
	log.Printf("[wizard][usecase] estimate start draft=%s transport=%s", d.ID, d.Form.TransportType)
	estimates, err := u.quotes.Estimate(ctx, token, payload)
	if err != nil {
		log.Printf("[wizard][usecase] estimate failed draft=%s err=%v", d.ID, err)
		return entities.WizardDraft{}, err
	}

	d.SetEstimates(estimates)
	if len(d.Estimates) == 0 && d.Step == entities.StepContacts {
		d.Step = entities.StepCargo
	}
	saved, err := u.save(ctx, d)
	if err != nil {
		return entities.WizardDraft{}, err
	}
	if len(saved.Estimates) == 0 {
		log.Printf("[wizard][usecase] no tariff draft=%s", d.ID)
		return saved, ErrNoTariff
	}
	log.Printf("[wizard][usecase] estimate success draft=%s count=%d best=%.2f", d.ID, len(saved.Estimates), saved.Estimates[0].EstimatedPrice)
	return saved, nil
}

// Submit creates the quote then its shipment. When the shipment cannot be
// created the quote is deleted again; a failed delete leaves it orphaned.
// Either way the draft records the outcome and stays on the contacts step.
func (u *QuoteWizardUseCase) Submit(ctx context.Context, token, ownerID, draftID string) (SubmitResult, error) {
	if trimmed(token) == "" {
		return SubmitResult{}, ErrSessionRequired
	}
	d, err := u.Get(ctx, ownerID, draftID)
	if err != nil {
		return SubmitResult{}, err
	}
	est, v, err := d.ReadyToSubmit()
	if errors.Is(err, entities.ErrStepInvalid) {
		return SubmitResult{}, invalid(v)
	}
	if err != nil {
		return SubmitResult{}, err
	}

	// Claim the draft: a concurrent submit of the same version conflicts here.
	d.Compensation = entities.CompensationNone
	d, err = u.save(ctx, d)
	if err != nil {
		return SubmitResult{}, err
	}

	log.Printf("[wizard][usecase] submit start draft=%s price=%.2f provider=%s", d.ID, est.EstimatedPrice, est.Provider)
	quote, err := u.quotes.Create(ctx, token, d.Form.CreateQuotePayload(est))
	if err != nil {
		log.Printf("[wizard][usecase] quote create failed draft=%s err=%v", d.ID, err)
		return SubmitResult{}, err
	}

	shipment, err := u.shipments.CreateFromQuote(ctx, token, quote.ID)
	if err != nil {
		log.Printf("[wizard][usecase] shipment create failed draft=%s quote=%s err=%v", d.ID, quote.ID, err)
		u.compensate(ctx, token, d, quote.ID)
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrShipmentCreationFailed, err)
	}

	saved, recordErr := u.recordSubmission(ctx, d, quote.ID, shipment.ID)

	publish(ctx, u.events, entities.NewEvent(entities.EventQuoteSubmitted, quote.ID, map[string]any{
		"draftId":        d.ID,
		"ownerId":        d.OwnerID,
		"estimatedPrice": est.EstimatedPrice,
		"currency":       est.Currency,
		"provider":       est.Provider,
	}))
	publish(ctx, u.events, entities.NewEvent(entities.EventShipmentCreated, shipment.ID, map[string]any{
		"quoteId":      quote.ID,
		"trackingCode": shipment.TrackingCode,
	}))
	res := SubmitResult{Draft: saved, Quote: quote, Shipment: shipment}
	if recordErr != nil {
		return res, recordErr
	}
	log.Printf("[wizard][usecase] submit success draft=%s quote=%s shipment=%s", d.ID, quote.ID, shipment.ID)
	return res, nil
}

// recordSubmission stores the submitted state. A failed save is retried once
// on the freshly loaded draft; when that fails too the caller gets the ids of
// what was created so a retry does not duplicate them.
func (u *QuoteWizardUseCase) recordSubmission(ctx context.Context, d entities.WizardDraft, quoteID, shipmentID string) (entities.WizardDraft, error) {
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	d.MarkSubmitted(quoteID, shipmentID)
	saved, err := u.save(rctx, d)
	if err == nil {
		return saved, nil
	}
	log.Printf("[wizard][usecase] submitted draft not saved, reloading draft=%s quote=%s shipment=%s err=%v", d.ID, quoteID, shipmentID, err)

	current, getErr := u.drafts.GetByID(rctx, d.ID)
	switch {
	case getErr != nil:
		err = getErr
	case current.ID == "":
		err = ErrDraftNotFound
	case current.Step == entities.StepSubmitted && current.QuoteID != quoteID:
		err = entities.ErrDraftSubmitted
	default:
		current.MarkSubmitted(quoteID, shipmentID)
		if saved, err = u.save(rctx, current); err == nil {
			return saved, nil
		}
	}
	log.Printf("[wizard][usecase] submission not recorded draft=%s quote=%s shipment=%s err=%v", d.ID, quoteID, shipmentID, err)
	return d, &SubmissionNotRecordedError{QuoteID: quoteID, ShipmentID: shipmentID, Err: err}
}

func (u *QuoteWizardUseCase) compensate(ctx context.Context, token string, d entities.WizardDraft, quoteID string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	evt := entities.EventQuoteCompensated
	d.Compensation = entities.CompensationVoided
	d.QuoteID = ""
	if err := u.quotes.Delete(cctx, token, quoteID); err != nil {
		log.Printf("[wizard][usecase] compensation failed, quote orphaned draft=%s quote=%s err=%v", d.ID, quoteID, err)
		evt = entities.EventQuoteOrphaned
		d.Compensation = entities.CompensationOrphaned
		d.QuoteID = quoteID
	} else {
		log.Printf("[wizard][usecase] quote voided draft=%s quote=%s", d.ID, quoteID)
	}

	if _, err := u.save(cctx, d); err != nil {
		log.Printf("[wizard][usecase] compensation outcome not saved draft=%s err=%v", d.ID, err)
	}
	publish(cctx, u.events, entities.NewEvent(evt, quoteID, map[string]any{"draftId": d.ID, "ownerId": d.OwnerID}))
}

func (u *QuoteWizardUseCase) mutate(ctx context.Context, ownerID, draftID string, fn func(*entities.WizardDraft) error) (entities.WizardDraft, error) {
	d, err := u.Get(ctx, ownerID, draftID)
	if err != nil {
		return entities.WizardDraft{}, err
	}
	if err := fn(&d); err != nil {
		return entities.WizardDraft{}, err
	}
	return u.save(ctx, d)
}

func (u *QuoteWizardUseCase) save(ctx context.Context, d entities.WizardDraft) (entities.WizardDraft, error) {
	d.UpdatedAt = u.now().UTC()
	saved, err := u.drafts.Save(ctx, d)
	if err != nil {
		log.Printf("[wizard][usecase] save failed draft=%s version=%d err=%v", d.ID, d.Version, err)
		return entities.WizardDraft{}, err
	}
	return saved, nil
}
