package backend

import (
	"math"
	"strconv"
	"strings"
	"time"

	"freight_portal/internal/domain/entities"
)

// Backend records arrive with several spellings for the same field. Every
// record passes once through a normalizeXxx function here; nothing past this
// file reads raw payloads.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// listOf accepts a bare array or an object wrapping one under any of keys.
func listOf(v any, keys ...string) []map[string]any {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case map[string]any:
		for _, k := range append(keys, "data", "items", "results") {
			if arr, ok := t[k].([]any); ok {
				items = arr
				break
			}
		}
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m := asMap(it); m != nil {
			out = append(out, m)
		}
	}
	return out
}

func hasList(v any, keys ...string) bool {
	if _, ok := v.([]any); ok {
		return true
	}
	m := asMap(v)
	for _, k := range keys {
		if _, ok := m[k].([]any); ok {
			return true
		}
	}
	return false
}

// unwrap returns the record itself or the one nested under keys/data.
func unwrap(v any, keys ...string) map[string]any {
	m := asMap(v)
	if m == nil {
		return nil
	}
	for _, k := range append(keys, "data") {
		if inner := asMap(m[k]); inner != nil {
			return inner
		}
	}
	return m
}

func pickString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// pickID reads an id either directly or from a nested object.
func pickID(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if inner := asMap(m[k]); inner != nil {
			if id := pickString(inner, "id", "_id"); id != "" {
				return id
			}
			continue
		}
		if s := pickString(m, k); s != "" {
			return s
		}
	}
	return ""
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", "."), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func pickFloat(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if f, ok := toFloat(m[k]); ok {
			return f, true
		}
	}
	return 0, false
}

func pickFloatPtr(m map[string]any, keys ...string) *float64 {
	if f, ok := pickFloat(m, keys...); ok {
		return &f
	}
	return nil
}

func pickBool(m map[string]any, def bool, keys ...string) bool {
	for _, k := range keys {
		switch v := m[k].(type) {
		case bool:
			return v
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
				return b
			}
		}
	}
	return def
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func pickTime(m map[string]any, keys ...string) time.Time {
	for _, k := range keys {
		s, ok := m[k].(string)
		if !ok {
			continue
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func pickTimePtr(m map[string]any, keys ...string) *time.Time {
	if t := pickTime(m, keys...); !t.IsZero() {
		return &t
	}
	return nil
}

func pickStrings(m map[string]any, keys ...string) []string {
	for _, k := range keys {
		arr, ok := m[k].([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(arr))
		for _, it := range arr {
			switch v := it.(type) {
			case string:
				if s := strings.TrimSpace(v); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if s := pickString(v, "name", "label", "code", "id"); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

func transport(m map[string]any, keys ...string) entities.TransportType {
	return entities.TransportType(strings.ToLower(pickString(m, keys...)))
}

func normalizeQuote(m map[string]any) entities.Quote {
	price, _ := pickFloat(m, "estimatedPrice", "price", "amount")
	status := strings.ToLower(pickString(m, "status"))
	if status == "" {
		status = string(entities.QuoteStatusPending)
	}
	payment := strings.ToLower(pickString(m, "paymentStatus", "payment_status"))
	if payment == "" {
		payment = string(entities.QuotePaymentPending)
	}
	return entities.Quote{
		ID:                    pickString(m, "id", "_id"),
		Origin:                pickString(m, "origin", "from"),
		Destination:           pickString(m, "destination", "to"),
		TransportType:         transport(m, "transportType", "transport", "mode"),
		PackageTypeID:         pickID(m, "packageTypeId", "packageType"),
		Weight:                pickFloatPtr(m, "weight"),
		Volume:                pickFloatPtr(m, "volume"),
		Length:                pickFloatPtr(m, "length"),
		Width:                 pickFloatPtr(m, "width"),
		Height:                pickFloatPtr(m, "height"),
		ProductType:           pickString(m, "productType"),
		ContactName:           pickString(m, "contactName"),
		ContactPhone:          pickString(m, "contactPhone"),
		ContactEmail:          pickString(m, "contactEmail", "email"),
		RecipientContactName:  pickString(m, "recipientContactName"),
		RecipientContactPhone: pickString(m, "recipientContactPhone"),
		RecipientContactEmail: pickString(m, "recipientContactEmail"),
		PickupOption:          entities.PickupOption(strings.ToLower(pickString(m, "pickupOption"))),
		ProductLocation:       pickString(m, "productLocation"),
		SenderAddressID:       pickID(m, "senderAddressId", "senderAddress"),
		RecipientAddressID:    pickID(m, "recipientAddressId", "recipientAddress"),
		BillingAddressID:      pickID(m, "billingAddressId", "billingAddress"),
		EstimatedPrice:        price,
		Currency:              pickString(m, "currency"),
		Provider:              pickString(m, "provider"),
		Status:                entities.QuoteStatus(status),
		PaymentStatus:         entities.QuotePaymentStatus(payment),
		ShipmentID:            pickID(m, "shipmentId", "shipment"),
		CreatedAt:             pickTime(m, "createdAt", "created_at"),
	}
}

// normalizeEstimate drops entries without a numeric price.
func normalizeEstimate(m map[string]any) (entities.Estimate, bool) {
	price, ok := pickFloat(m, "estimatedPrice", "price", "amount", "total")
	if !ok {
		return entities.Estimate{}, false
	}
	return entities.Estimate{
		EstimatedPrice: price,
		Currency:       pickString(m, "currency"),
		Provider:       pickString(m, "provider", "carrier"),
		AppliedRule:    pickString(m, "appliedRule", "rule"),
	}, true
}

var estimateListKeys = []string{"estimates", "quotes", "offers", "data", "items", "results"}

// normalizeEstimates reads a list reply, or a single estimate object. An
// envelope carrying an empty list yields no estimates.
func normalizeEstimates(v any) []entities.Estimate {
	items := listOf(v, estimateListKeys...)
	if len(items) == 0 && !hasList(v, estimateListKeys...) {
		if m := unwrap(v, "estimate"); m != nil {
			items = []map[string]any{m}
		}
	}
	out := make([]entities.Estimate, 0, len(items))
	for _, it := range items {
		if e, ok := normalizeEstimate(it); ok {
			out = append(out, e)
		}
	}
	return out
}

func normalizeAddress(m map[string]any) entities.Address {
	a := entities.Address{
		ID:          pickString(m, "id", "_id"),
		Type:        entities.AddressType(strings.ToLower(pickString(m, "type", "addressType"))),
		Label:       pickString(m, "label", "name"),
		ContactName: pickString(m, "contactName"),
		Phone:       pickString(m, "phone", "contactPhone"),
		Line1:       pickString(m, "line1", "addressLine1", "street"),
		Line2:       pickString(m, "line2", "addressLine2"),
		City:        pickString(m, "city"),
		PostalCode:  pickString(m, "postalCode", "postal_code", "zip"),
		Country:     pickString(m, "country"),
		IsActive:    pickBool(m, true, "isActive", "active"),
	}
	gps := asMap(m["gps"])
	if gps == nil {
		gps = asMap(m["location"])
	}
	if gps == nil {
		gps = m
	}
	lat, okLat := pickFloat(gps, "latitude", "lat")
	lng, okLng := pickFloat(gps, "longitude", "lng", "lon")
	if okLat && okLng {
		a.GPS = &entities.GPSLocation{
			Latitude:   lat,
			Longitude:  lng,
			Accuracy:   pickFloatPtr(gps, "accuracy"),
			Provider:   pickString(gps, "provider"),
			CapturedAt: pickTimePtr(gps, "capturedAt"),
		}
	}
	return a
}

func normalizeShipment(m map[string]any) entities.Shipment {
	s := entities.Shipment{
		ID:            pickString(m, "id", "_id"),
		QuoteID:       pickID(m, "quoteId", "quote"),
		TrackingCode:  pickString(m, "trackingCode", "trackingNumber", "tracking"),
		Status:        entities.ShipmentStatus(pickString(m, "status")),
		Origin:        pickString(m, "origin", "from"),
		Destination:   pickString(m, "destination", "to"),
		TransportType: transport(m, "transportType", "transport", "mode"),
		CreatedAt:     pickTime(m, "createdAt", "created_at"),
	}
	for _, key := range []string{"statusHistory", "history"} {
		if _, ok := m[key].([]any); !ok {
			continue
		}
		for _, h := range listOf(m[key]) {
			s.StatusHistory = append(s.StatusHistory, entities.StatusEvent{
				Status:    entities.ShipmentStatus(pickString(h, "status")),
				Timestamp: pickTime(h, "timestamp", "date", "createdAt"),
				Comment:   pickString(h, "comment", "note"),
			})
		}
		break
	}
	return s
}

func normalizePackageType(m map[string]any) entities.PackageType {
	price, _ := pickFloat(m, "flatPrice", "price")
	p := entities.PackageType{
		ID:          pickString(m, "id", "_id"),
		Name:        pickString(m, "name", "label"),
		Description: pickString(m, "description"),
		FlatPrice:   price,
		CreatedAt:   pickTime(m, "createdAt", "created_at"),
	}
	for _, t := range pickStrings(m, "allowedTransportTypes", "transportTypes") {
		p.AllowedTransportTypes = append(p.AllowedTransportTypes, entities.TransportType(strings.ToLower(t)))
	}
	return p
}

func normalizePricing(m map[string]any) entities.Pricing {
	p := entities.Pricing{
		ID:                   pickString(m, "id", "_id"),
		Origin:               pickString(m, "origin", "from"),
		Destination:          pickString(m, "destination", "to"),
		OriginAddressID:      pickID(m, "originAddressId", "originAddress"),
		DestinationAddressID: pickID(m, "destinationAddressId", "destinationAddress"),
		Currency:             pickString(m, "currency"),
		Rates:                map[entities.TransportType]entities.TransportPricing{},
		CreatedAt:            pickTime(m, "createdAt", "created_at"),
	}
	rates := asMap(m["rates"])
	if rates == nil {
		rates = asMap(m["transportPrices"])
	}
	for key, raw := range rates {
		r := asMap(raw)
		if r == nil {
			continue
		}
		t := entities.TransportType(strings.ToLower(key))
		if !t.IsValid() {
			continue
		}
		p.Rates[t] = normalizeTransportPricing(r)
	}
	return p
}

func normalizeTransportPricing(m map[string]any) entities.TransportPricing {
	unit, _ := pickFloat(m, "unitRate", "rate", "price")
	tp := entities.TransportPricing{
		Mode:     entities.PricingMode(strings.ToLower(pickString(m, "mode", "type"))),
		UnitRate: unit,
	}
	if tp.Mode == "" {
		tp.Mode = entities.PricingFlat
	}
	ranges := m["dimensionRanges"]
	if ranges == nil {
		ranges = m["ranges"]
	}
	for _, r := range listOf(ranges) {
		lo, _ := pickFloat(r, "min")
		hi, _ := pickFloat(r, "max")
		price, _ := pickFloat(r, "price")
		tp.DimensionRanges = append(tp.DimensionRanges, entities.DimensionRange{Min: lo, Max: hi, Price: price})
	}
	tp.PackagePrices = floatMap(m["packagePrices"])
	tp.ContainerRates = floatMap(m["containerRates"])
	return tp
}

func floatMap(v any) map[string]float64 {
	m := asMap(v)
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, raw := range m {
		if f, ok := toFloat(raw); ok {
			out[k] = f
		}
	}
	return out
}

func normalizeUser(m map[string]any) entities.User {
	name := pickString(m, "name", "fullName")
	if name == "" {
		name = strings.TrimSpace(pickString(m, "firstName") + " " + pickString(m, "lastName"))
	}
	role := strings.ToLower(pickString(m, "role"))
	return entities.User{
		ID:      pickString(m, "id", "_id"),
		Email:   pickString(m, "email"),
		Name:    name,
		Role:    role,
		IsAdmin: pickBool(m, role == "admin", "isAdmin"),
	}
}

func normalizeMetadata(m map[string]any) entities.QuoteMetadata {
	md := entities.QuoteMetadata{
		Origins:      nonNil(pickStrings(m, "origins", "from")),
		Destinations: nonNil(pickStrings(m, "destinations", "to")),
	}
	for _, t := range pickStrings(m, "transportTypes", "transports") {
		if tt := entities.TransportType(strings.ToLower(t)); tt.IsValid() {
			md.TransportTypes = append(md.TransportTypes, tt)
		}
	}
	if len(md.TransportTypes) == 0 {
		md.TransportTypes = append([]entities.TransportType(nil), entities.TransportTypes...)
	}
	for _, key := range []string{"marketPoints", "agencies"} {
		for _, p := range listOf(m[key]) {
			md.MarketPoints = append(md.MarketPoints, entities.MarketPoint{
				ID:      pickString(p, "id", "_id"),
				Name:    pickString(p, "name", "label"),
				Kind:    entities.MarketPointKind(strings.ToLower(pickString(p, "kind", "type"))),
				Country: pickString(p, "country"),
				City:    pickString(p, "city"),
			})
		}
	}
	return md
}

func normalizeSchedule(m map[string]any) entities.Schedule {
	return entities.Schedule{
		ID:            pickString(m, "id", "_id"),
		Origin:        pickString(m, "origin", "from"),
		Destination:   pickString(m, "destination", "to"),
		TransportType: transport(m, "transportType", "transport", "mode"),
		Carrier:       pickString(m, "carrier", "provider"),
		Departure:     pickTimePtr(m, "departure", "departureDate", "etd"),
		Arrival:       pickTimePtr(m, "arrival", "arrivalDate", "eta"),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
