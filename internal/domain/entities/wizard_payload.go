package entities

import (
	"math"
	"strings"
)

// EstimatePayload builds the body sent to the estimate endpoint. Only the
// dimensions relevant to the transport are included.
func (f WizardForm) EstimatePayload() map[string]any {
	p := map[string]any{
		"origin":        strings.TrimSpace(f.Origin),
		"destination":   strings.TrimSpace(f.Destination),
		"transportType": string(f.TransportType),
	}
	if id := strings.TrimSpace(f.PackageTypeID); id != "" {
		p["packageTypeId"] = id
	}
	switch f.TransportType {
	case TransportAir:
		putPositive(p, "weight", f.Weight)
	case TransportSea:
		putPositive(p, "volume", f.Volume)
		putPositive(p, "length", f.Length)
		putPositive(p, "width", f.Width)
		putPositive(p, "height", f.Height)
	case TransportRoad:
		putPositive(p, "weight", f.Weight)
		putPositive(p, "volume", f.Volume)
	}
	return p
}

// CreateQuotePayload merges the form with the selected estimate. Sea freight
// without an explicit volume gets one derived from L x W x H in centimetres.
func (f WizardForm) CreateQuotePayload(est Estimate) map[string]any {
	p := map[string]any{
		"origin":                strings.TrimSpace(f.Origin),
		"destination":           strings.TrimSpace(f.Destination),
		"transportType":         string(f.TransportType),
		"productType":           strings.TrimSpace(f.ProductType),
		"contactName":           strings.TrimSpace(f.ContactName),
		"contactPhone":          strings.TrimSpace(f.ContactPhone),
		"contactEmail":          strings.TrimSpace(f.ContactEmail),
		"recipientContactName":  strings.TrimSpace(f.RecipientContactName),
		"recipientContactPhone": strings.TrimSpace(f.RecipientContactPhone),
		"recipientContactEmail": strings.TrimSpace(f.RecipientContactEmail),
		"pickupOption":          string(f.PickupOption),
		"estimatedPrice":        est.EstimatedPrice,
		"currency":              est.Currency,
		"provider":              est.Provider,
	}
	optional := map[string]string{
		"packageTypeId":      f.PackageTypeID,
		"productLocation":    f.ProductLocation,
		"senderAddressId":    f.SenderAddressID,
		"recipientAddressId": f.RecipientAddressID,
		"billingAddressId":   f.BillingAddressID,
		"notes":              f.Notes,
	}
	for k, v := range optional {
		if v = strings.TrimSpace(v); v != "" {
			p[k] = v
		}
	}
	if f.PickupOption == "" {
		delete(p, "pickupOption")
	}

	switch f.TransportType {
	case TransportAir:
		putPositive(p, "weight", f.Weight)
	case TransportSea:
		if f.Volume.Positive() {
			putPositive(p, "volume", f.Volume)
		} else if v, ok := f.derivedVolume(); ok {
			p["volume"] = v
		}
	case TransportRoad:
		putPositive(p, "weight", f.Weight)
		putPositive(p, "volume", f.Volume)
	}
	return p
}

// derivedVolume converts length, width and height in cm to m3.
func (f WizardForm) derivedVolume() (float64, bool) {
	l, okL := f.Length.Float()
	w, okW := f.Width.Float()
	h, okH := f.Height.Float()
	if !okL || !okW || !okH || l <= 0 || w <= 0 || h <= 0 {
		return 0, false
	}
	v := l * w * h / 1_000_000
	if math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func putPositive(p map[string]any, key string, n Numeric) {
	if v, ok := n.Float(); ok && v > 0 {
		p[key] = v
	}
}
