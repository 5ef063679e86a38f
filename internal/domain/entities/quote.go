package entities

import "time"

type TransportType string

const (
	TransportAir  TransportType = "air"
	TransportSea  TransportType = "sea"
	TransportRoad TransportType = "road"
)

var TransportTypes = []TransportType{TransportAir, TransportSea, TransportRoad}

func (t TransportType) IsValid() bool {
	switch t {
	case TransportAir, TransportSea, TransportRoad:
		return true
	}
	return false
}

// QuoteStatus represents the lifecycle of a quote.
//
//	pending -> confirmed | rejected
//	confirmed -> dispatched
//	dispatched -> paid
type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "pending"
	QuoteStatusConfirmed  QuoteStatus = "confirmed"
	QuoteStatusRejected   QuoteStatus = "rejected"
	QuoteStatusDispatched QuoteStatus = "dispatched"
	QuoteStatusPaid       QuoteStatus = "paid"
)

type QuotePaymentStatus string

const (
	QuotePaymentPending   QuotePaymentStatus = "pending"
	QuotePaymentConfirmed QuotePaymentStatus = "confirmed"
	QuotePaymentFailed    QuotePaymentStatus = "failed"
)

type PickupOption string

const (
	PickupAtSender PickupOption = "pickup"
	DropOffAgency  PickupOption = "dropoff"
)

var quoteTransitions = map[QuoteStatus][]QuoteStatus{
	QuoteStatusPending:    {QuoteStatusConfirmed, QuoteStatusRejected},
	QuoteStatusConfirmed:  {QuoteStatusDispatched},
	QuoteStatusDispatched: {QuoteStatusPaid},
}

// QuoteAction is an admin row action on a quote.
type QuoteAction string

const (
	QuoteActionConfirm        QuoteAction = "confirm"
	QuoteActionReject         QuoteAction = "reject"
	QuoteActionDispatch       QuoteAction = "dispatch"
	QuoteActionMarkPaid       QuoteAction = "mark-paid"
	QuoteActionCreateShipment QuoteAction = "create_shipment"
)

var actionTargets = map[QuoteAction]QuoteStatus{
	QuoteActionConfirm:  QuoteStatusConfirmed,
	QuoteActionReject:   QuoteStatusRejected,
	QuoteActionDispatch: QuoteStatusDispatched,
	QuoteActionMarkPaid: QuoteStatusPaid,
}

// TargetStatus returns the status a transition action leads to.
func (a QuoteAction) TargetStatus() (QuoteStatus, bool) {
	s, ok := actionTargets[a]
	return s, ok
}

// Quote is the canonical quote record as returned by the backend after normalisation.
type Quote struct {
	ID            string
	Origin        string
	Destination   string
	TransportType TransportType
	PackageTypeID string

	Weight *float64
	Volume *float64
	Length *float64
	Width  *float64
	Height *float64

	ProductType           string
	ContactName           string
	ContactPhone          string
	ContactEmail          string
	RecipientContactName  string
	RecipientContactPhone string
	RecipientContactEmail string
	PickupOption          PickupOption
	ProductLocation       string

	SenderAddressID    string
	RecipientAddressID string
	BillingAddressID   string

	EstimatedPrice float64
	Currency       string
	Provider       string

	Status        QuoteStatus
	PaymentStatus QuotePaymentStatus
	ShipmentID    string
	CreatedAt     time.Time
}

func (q Quote) CanTransition(to QuoteStatus) bool {
	for _, s := range quoteTransitions[q.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// CanCreateShipment reports whether the quote may be converted. A quote
// converts at most once.
func (q Quote) CanCreateShipment() bool {
	return q.Status == QuoteStatusConfirmed &&
		q.PaymentStatus == QuotePaymentConfirmed &&
		q.ShipmentID == ""
}

// Actions lists the admin actions available on the quote in its current state.
func (q Quote) Actions() []QuoteAction {
	var out []QuoteAction
	for _, a := range []QuoteAction{QuoteActionConfirm, QuoteActionReject, QuoteActionDispatch, QuoteActionMarkPaid} {
		if to, _ := a.TargetStatus(); q.CanTransition(to) {
			out = append(out, a)
		}
	}
	if q.CanCreateShipment() {
		out = append(out, QuoteActionCreateShipment)
	}
	return out
}
