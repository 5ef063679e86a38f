package usecase

import (
	"testing"
	"time"

	"freight_portal/internal/domain/entities"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleQuotes() []entities.Quote {
	return []entities.Quote{
		{ID: "q-1", Origin: "Paris", Destination: "Dakar", TransportType: entities.TransportAir, Provider: "AirCo", Status: entities.QuoteStatusPending, EstimatedPrice: 300, CreatedAt: fixedNow.AddDate(0, 0, -3)},
		{ID: "q-2", Origin: "Lyon", Destination: "Abidjan", TransportType: entities.TransportSea, Provider: "SeaLine", Status: entities.QuoteStatusConfirmed, EstimatedPrice: 120, CreatedAt: fixedNow.AddDate(0, 0, -2)},
		{ID: "q-3", Origin: "Paris", Destination: "Bamako", TransportType: entities.TransportRoad, Provider: "AirCo", Status: entities.QuoteStatusPending, EstimatedPrice: 80, ContactName: "Moussa", CreatedAt: fixedNow.AddDate(0, 0, -1)},
	}
}

func TestPaginate(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	p := paginate(items, 3, 10)
	if p.Page != 3 || p.TotalPages != 3 || p.Total != 23 || len(p.Items) != 3 || p.Items[0] != 20 {
		t.Fatalf("unexpected page: %+v", p)
	}
	if p := paginate(items, 99, 10); p.Page != 3 {
		t.Fatalf("expected clamp to last page, got %d", p.Page)
	}
	if p := paginate(items, 0, 10); p.Page != 1 || p.Items[0] != 0 {
		t.Fatalf("expected clamp to first page, got %+v", p)
	}
	if p := paginate([]int{}, 2, 10); p.Page != 1 || p.TotalPages != 1 || len(p.Items) != 0 {
		t.Fatalf("unexpected empty page: %+v", p)
	}
}

func TestQuoteListSpec(t *testing.T) {
	tests := []struct {
		name string
		q    ListQuery
		want []string
	}{
		{"default newest first", ListQuery{}, []string{"q-3", "q-2", "q-1"}},
		{"status", ListQuery{Status: "PENDING"}, []string{"q-3", "q-1"}},
		{"transport", ListQuery{Transport: "sea"}, []string{"q-2"}},
		{"provider", ListQuery{Provider: "airco"}, []string{"q-3", "q-1"}},
		{"search", ListQuery{Search: "mous"}, []string{"q-3"}},
		{"search destination", ListQuery{Search: "abid"}, []string{"q-2"}},
		{"price ascending", ListQuery{Sort: "estimatedPrice", Order: "asc"}, []string{"q-3", "q-2", "q-1"}},
		{"price descending", ListQuery{Sort: "estimatedPrice", Order: "desc"}, []string{"q-1", "q-2", "q-3"}},
		{"unknown sort falls back", ListQuery{Sort: "bogus"}, []string{"q-3", "q-2", "q-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := quoteListSpec.apply(sampleQuotes(), tt.q, QuotesPageSize)
			if len(page.Items) != len(tt.want) {
				t.Fatalf("expected %v, got %+v", tt.want, page.Items)
			}
			for i, id := range tt.want {
				if page.Items[i].ID != id {
					t.Fatalf("position %d: expected %s, got %s", i, id, page.Items[i].ID)
				}
			}
		})
	}
}

func TestInRange(t *testing.T) {
	from := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)

	if !inRange(time.Date(2025, 3, 13, 18, 0, 0, 0, time.UTC), &from, &to) {
		t.Fatalf("expected end date to include the whole day")
	}
	if inRange(time.Date(2025, 3, 11, 23, 0, 0, 0, time.UTC), &from, nil) {
		t.Fatalf("expected date before from to be excluded")
	}
	if inRange(time.Time{}, &from, nil) {
		t.Fatalf("expected zero date to be excluded when a range is set")
	}
	if !inRange(time.Time{}, nil, nil) {
		t.Fatalf("expected no range to accept anything")
	}
}
