package entities

import (
	"errors"
	"time"
)

// WizardStep is the explicit state of a quote draft.
//
//	itinerary -> cargo -> contacts -> submitted
//
// A step is only entered when every previous step validates; moving back is
// always allowed until submission.
type WizardStep string

const (
	StepItinerary WizardStep = "itinerary"
	StepCargo     WizardStep = "cargo"
	StepContacts  WizardStep = "contacts"
	StepSubmitted WizardStep = "submitted"
)

var (
	ErrStepInvalid       = errors.New("wizard step has invalid fields")
	ErrEstimateRequired  = errors.New("an estimate must be selected")
	ErrEstimateIndex     = errors.New("estimate index out of range")
	ErrDraftSubmitted    = errors.New("draft already submitted")
	ErrStepNotReached    = errors.New("wizard step not reached yet")
	ErrNoPreviousStep    = errors.New("already on the first step")
	ErrNotOnContactsStep = errors.New("draft is not on the contacts step")
	ErrDraftConflict     = errors.New("draft was modified concurrently")
)

// WizardForm mirrors the quote request form.
type WizardForm struct {
	Origin      string `json:"origin" dynamodbav:"origin"`
	Destination string `json:"destination" dynamodbav:"destination"`

	TransportType TransportType `json:"transportType" dynamodbav:"transport_type"`
	PackageTypeID string        `json:"packageTypeId,omitempty" dynamodbav:"package_type_id,omitempty"`
	Weight        Numeric       `json:"weight,omitempty" dynamodbav:"weight,omitempty"`
	Volume        Numeric       `json:"volume,omitempty" dynamodbav:"volume,omitempty"`
	Length        Numeric       `json:"length,omitempty" dynamodbav:"length,omitempty"`
	Width         Numeric       `json:"width,omitempty" dynamodbav:"width,omitempty"`
	Height        Numeric       `json:"height,omitempty" dynamodbav:"height,omitempty"`

	ProductType           string       `json:"productType,omitempty" dynamodbav:"product_type,omitempty"`
	ContactName           string       `json:"contactName,omitempty" dynamodbav:"contact_name,omitempty"`
	ContactPhone          string       `json:"contactPhone,omitempty" dynamodbav:"contact_phone,omitempty"`
	ContactEmail          string       `json:"contactEmail,omitempty" dynamodbav:"contact_email,omitempty"`
	RecipientContactName  string       `json:"recipientContactName,omitempty" dynamodbav:"recipient_contact_name,omitempty"`
	RecipientContactPhone string       `json:"recipientContactPhone,omitempty" dynamodbav:"recipient_contact_phone,omitempty"`
	RecipientContactEmail string       `json:"recipientContactEmail,omitempty" dynamodbav:"recipient_contact_email,omitempty"`
	PickupOption          PickupOption `json:"pickupOption,omitempty" dynamodbav:"pickup_option,omitempty"`
	ProductLocation       string       `json:"productLocation,omitempty" dynamodbav:"product_location,omitempty"`
	SenderAddressID       string       `json:"senderAddressId,omitempty" dynamodbav:"sender_address_id,omitempty"`
	RecipientAddressID    string       `json:"recipientAddressId,omitempty" dynamodbav:"recipient_address_id,omitempty"`
	BillingAddressID      string       `json:"billingAddressId,omitempty" dynamodbav:"billing_address_id,omitempty"`
	Notes                 string       `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
}

// ItineraryInput updates the first step.
type ItineraryInput struct {
	Origin      string
	Destination string
}

// CargoInput updates the cargo step.
type CargoInput struct {
	TransportType TransportType
	PackageTypeID string
	Weight        Numeric
	Volume        Numeric
	Length        Numeric
	Width         Numeric
	Height        Numeric
}

// ContactsInput updates the contacts step.
type ContactsInput struct {
	ProductType           string
	ContactName           string
	ContactPhone          string
	ContactEmail          string
	RecipientContactName  string
	RecipientContactPhone string
	RecipientContactEmail string
	PickupOption          PickupOption
	ProductLocation       string
	SenderAddressID       string
	RecipientAddressID    string
	BillingAddressID      string
	Notes                 string
}

type Compensation string

const (
	CompensationNone     Compensation = ""
	CompensationVoided   Compensation = "voided"
	CompensationOrphaned Compensation = "orphaned"
)

// WizardDraft is the server-side state of one quote wizard session. Version
// increments on every save; a stale save fails with ErrDraftConflict.
type WizardDraft struct {
	ID               string
	OwnerID          string
	Step             WizardStep
	Form             WizardForm
	Estimates        []Estimate
	SelectedEstimate *int
	QuoteID          string
	ShipmentID       string
	Compensation     Compensation
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewWizardDraft(id, ownerID string, now time.Time) WizardDraft {
	return WizardDraft{
		ID:        id,
		OwnerID:   ownerID,
		Step:      StepItinerary,
		Estimates: []Estimate{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s WizardStep) order() int {
	switch s {
	case StepItinerary:
		return 0
	case StepCargo:
		return 1
	case StepContacts:
		return 2
	case StepSubmitted:
		return 3
	}
	return -1
}

func (d *WizardDraft) editable(step WizardStep) error {
	if d.Step == StepSubmitted {
		return ErrDraftSubmitted
	}
	if d.Step.order() < step.order() {
		return ErrStepNotReached
	}
	return nil
}

// UpdateItinerary replaces the itinerary fields. Estimates are dropped when
// origin or destination changed.
func (d *WizardDraft) UpdateItinerary(in ItineraryInput) error {
	if err := d.editable(StepItinerary); err != nil {
		return err
	}
	changed := d.Form.Origin != in.Origin || d.Form.Destination != in.Destination
	d.Form.Origin = in.Origin
	d.Form.Destination = in.Destination
	if changed {
		d.InvalidateEstimates()
	}
	return nil
}

// UpdateCargo replaces the cargo fields. Estimates are dropped when any of
// them changed.
func (d *WizardDraft) UpdateCargo(in CargoInput) error {
	if err := d.editable(StepCargo); err != nil {
		return err
	}
	f := &d.Form
	changed := f.TransportType != in.TransportType ||
		f.PackageTypeID != in.PackageTypeID ||
		f.Weight != in.Weight ||
		f.Volume != in.Volume ||
		f.Length != in.Length ||
		f.Width != in.Width ||
		f.Height != in.Height
	f.TransportType = in.TransportType
	f.PackageTypeID = in.PackageTypeID
	f.Weight = in.Weight
	f.Volume = in.Volume
	f.Length = in.Length
	f.Width = in.Width
	f.Height = in.Height
	if changed {
		d.InvalidateEstimates()
	}
	return nil
}

// UpdateContacts replaces the contact fields. They never affect estimates.
func (d *WizardDraft) UpdateContacts(in ContactsInput) error {
	if err := d.editable(StepContacts); err != nil {
		return err
	}
	f := &d.Form
	f.ProductType = in.ProductType
	f.ContactName = in.ContactName
	f.ContactPhone = in.ContactPhone
	f.ContactEmail = in.ContactEmail
	f.RecipientContactName = in.RecipientContactName
	f.RecipientContactPhone = in.RecipientContactPhone
	f.RecipientContactEmail = in.RecipientContactEmail
	f.PickupOption = in.PickupOption
	f.ProductLocation = in.ProductLocation
	f.SenderAddressID = in.SenderAddressID
	f.RecipientAddressID = in.RecipientAddressID
	f.BillingAddressID = in.BillingAddressID
	f.Notes = in.Notes
	return nil
}

// InvalidateEstimates clears the fetched estimates. A draft past the cargo
// step is rewound to it so that re-estimation happens before going on.
func (d *WizardDraft) InvalidateEstimates() {
	d.Estimates = []Estimate{}
	d.SelectedEstimate = nil
	if d.Step == StepContacts {
		d.Step = StepCargo
	}
}

// SetEstimates stores estimates sorted by price and selects the cheapest.
func (d *WizardDraft) SetEstimates(estimates []Estimate) {
	d.Estimates = SortEstimates(estimates)
	d.SelectedEstimate = nil
	if len(d.Estimates) > 0 {
		first := 0
		d.SelectedEstimate = &first
	}
}

func (d *WizardDraft) SelectEstimate(index int) error {
	if d.Step == StepSubmitted {
		return ErrDraftSubmitted
	}
	if index < 0 || index >= len(d.Estimates) {
		return ErrEstimateIndex
	}
	d.SelectedEstimate = &index
	return nil
}

func (d WizardDraft) Selected() (Estimate, bool) {
	if d.SelectedEstimate == nil {
		return Estimate{}, false
	}
	i := *d.SelectedEstimate
	if i < 0 || i >= len(d.Estimates) {
		return Estimate{}, false
	}
	return d.Estimates[i], true
}

// Advance moves to the next step when the current one (and every previous one)
// validates. Violations are returned alongside ErrStepInvalid.
func (d *WizardDraft) Advance() (Violations, error) {
	switch d.Step {
	case StepItinerary:
		if v := ValidateItinerary(d.Form); !v.Empty() {
			return v, ErrStepInvalid
		}
		d.Step = StepCargo
	case StepCargo:
		v := ValidateItinerary(d.Form)
		v.Merge(ValidateCargo(d.Form))
		if !v.Empty() {
			return v, ErrStepInvalid
		}
		if _, ok := d.Selected(); !ok {
			return nil, ErrEstimateRequired
		}
		d.Step = StepContacts
	case StepContacts:
		return nil, ErrNotOnContactsStep
	default:
		return nil, ErrDraftSubmitted
	}
	return nil, nil
}

func (d *WizardDraft) Back() error {
	switch d.Step {
	case StepCargo:
		d.Step = StepItinerary
	case StepContacts:
		d.Step = StepCargo
	case StepSubmitted:
		return ErrDraftSubmitted
	default:
		return ErrNoPreviousStep
	}
	return nil
}

// ReadyToSubmit validates the whole form on the contacts step and returns the
// selected estimate.
func (d WizardDraft) ReadyToSubmit() (Estimate, Violations, error) {
	switch d.Step {
	case StepSubmitted:
		return Estimate{}, nil, ErrDraftSubmitted
	case StepContacts:
	default:
		return Estimate{}, nil, ErrNotOnContactsStep
	}
	v := ValidateItinerary(d.Form)
	v.Merge(ValidateCargo(d.Form))
	v.Merge(ValidateContacts(d.Form))
	if !v.Empty() {
		return Estimate{}, v, ErrStepInvalid
	}
	est, ok := d.Selected()
	if !ok {
		return Estimate{}, nil, ErrEstimateRequired
	}
	return est, nil, nil
}

func (d *WizardDraft) MarkSubmitted(quoteID, shipmentID string) {
	d.QuoteID = quoteID
	d.ShipmentID = shipmentID
	d.Step = StepSubmitted
}
