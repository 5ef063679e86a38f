package entities

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	contactPhonePattern = regexp.MustCompile(`^\+?[0-9 .-]{7,16}$`)
	validate            = validator.New()
)

// ValidateItinerary checks the first wizard step.
func ValidateItinerary(f WizardForm) Violations {
	v := Violations{}
	required("origin", f.Origin, v)
	required("destination", f.Destination, v)
	return v
}

// ValidateCargo checks the cargo step: a transport is mandatory, every
// provided number must be > 0, and unless a package type is selected the
// transport-specific dimensions must be given.
func ValidateCargo(f WizardForm) Violations {
	v := Violations{}
	if !f.TransportType.IsValid() {
		v.Add("transportType", "required")
	}

	for _, field := range f.dimensionFields() {
		if !field.value.Present() {
			continue
		}
		val, ok := field.value.Float()
		switch {
		case !ok:
			v.Add(field.name, "invalid_number")
		case val <= 0:
			v.Add(field.name, "must_be_positive")
		}
	}

	if strings.TrimSpace(f.PackageTypeID) != "" {
		return v
	}

	switch f.TransportType {
	case TransportAir:
		if !f.Weight.Positive() {
			v.Add("weight", "required")
		}
	case TransportSea:
		if !f.Volume.Positive() && !(f.Length.Positive() && f.Width.Positive() && f.Height.Positive()) {
			v.Add("volume", "volume_or_dimensions_required")
		}
	case TransportRoad:
		if !f.Weight.Positive() && !f.Volume.Positive() {
			v.Add("weight", "weight_or_volume_required")
		}
	}
	return v
}

// ValidateContacts checks the contacts/addresses step.
func ValidateContacts(f WizardForm) Violations {
	v := Violations{}
	required("productType", f.ProductType, v)
	phone("contactPhone", f.ContactPhone, v)
	required("recipientContactName", f.RecipientContactName, v)
	phone("recipientContactPhone", f.RecipientContactPhone, v)

	if f.PickupOption == PickupAtSender {
		required("productLocation", f.ProductLocation, v)
		required("senderAddressId", f.SenderAddressID, v)
	}
	required("recipientAddressId", f.RecipientAddressID, v)

	if email := strings.TrimSpace(f.RecipientContactEmail); email != "" {
		if err := validate.Var(email, "email"); err != nil {
			v.Add("recipientContactEmail", "invalid_email")
		}
	}
	return v
}

func phone(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, "required")
		return
	}
	if !contactPhonePattern.MatchString(value) {
		v.Add(field, "invalid_phone")
	}
}

type namedNumeric struct {
	name  string
	value Numeric
}

func (f WizardForm) dimensionFields() []namedNumeric {
	return []namedNumeric{
		{"weight", f.Weight},
		{"volume", f.Volume},
		{"length", f.Length},
		{"width", f.Width},
		{"height", f.Height},
	}
}
