package entities

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	countryPattern      = regexp.MustCompile(`^[A-Za-z]{2,}$`)
	addressPhonePattern = regexp.MustCompile(`^[+0-9 ()./-]{6,24}$`)
)

// AddressInput is the address form as typed. GPS fields are free text and
// parsed permissively.
type AddressInput struct {
	Type        AddressType
	Label       string
	ContactName string
	Phone       string
	Line1       string
	Line2       string
	City        string
	PostalCode  string
	Country     string
	IsActive    *bool

	Latitude   string
	Longitude  string
	Accuracy   string
	Provider   string
	CapturedAt string
}

// ValidateAddress gates the address form before anything is sent.
func ValidateAddress(in AddressInput) Violations {
	v := Violations{}
	if !in.Type.IsValid() {
		v.Add("type", "invalid_type")
	}
	required("label", in.Label, v)
	required("line1", in.Line1, v)
	required("city", in.City, v)
	required("postalCode", in.PostalCode, v)
	if c := strings.TrimSpace(in.Country); c != "" && !countryPattern.MatchString(c) {
		v.Add("country", "invalid_country")
	} else if c == "" {
		v.Add("country", "required")
	}
	if p := strings.TrimSpace(in.Phone); p != "" && !addressPhonePattern.MatchString(p) {
		v.Add("phone", "invalid_phone")
	}
	return v
}

// GPS returns the GPS block only when latitude and longitude both parse as
// finite numbers.
func (in AddressInput) GPS() *GPSLocation {
	lat, okLat := finite(in.Latitude)
	lng, okLng := finite(in.Longitude)
	if !okLat || !okLng {
		return nil
	}
	gps := &GPSLocation{Latitude: lat, Longitude: lng}
	if acc, ok := finite(in.Accuracy); ok {
		gps.Accuracy = &acc
	}
	gps.Provider = strings.TrimSpace(in.Provider)
	if raw := strings.TrimSpace(in.CapturedAt); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			gps.CapturedAt = &ts
		}
	}
	return gps
}

// Payload builds the create/update body sent to the backend.
func (in AddressInput) Payload() map[string]any {
	p := map[string]any{
		"type":       string(in.Type),
		"label":      strings.TrimSpace(in.Label),
		"line1":      strings.TrimSpace(in.Line1),
		"city":       strings.TrimSpace(in.City),
		"postalCode": strings.TrimSpace(in.PostalCode),
		"country":    strings.ToUpper(strings.TrimSpace(in.Country)),
	}
	for k, val := range map[string]string{
		"contactName": in.ContactName,
		"phone":       in.Phone,
		"line2":       in.Line2,
	} {
		if val = strings.TrimSpace(val); val != "" {
			p[k] = val
		}
	}
	if in.IsActive != nil {
		p["isActive"] = *in.IsActive
	}
	if gps := in.GPS(); gps != nil {
		g := map[string]any{
			"latitude":  gps.Latitude,
			"longitude": gps.Longitude,
		}
		if gps.Accuracy != nil {
			g["accuracy"] = *gps.Accuracy
		}
		if gps.Provider != "" {
			g["provider"] = gps.Provider
		}
		if gps.CapturedAt != nil {
			g["capturedAt"] = gps.CapturedAt.UTC().Format(time.RFC3339)
		}
		p["gps"] = g
	}
	return p
}

func finite(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
