package usecase

import (
	"sort"
	"strings"
	"time"
)

// Page sizes of the admin tables.
const (
	QuotesPageSize       = 10
	ShipmentsPageSize    = 8
	PricingPageSize      = 6
	PackageTypesPageSize = 4
)

// ListQuery is the admin table state carried in the query string.
type ListQuery struct {
	Page      int
	Search    string
	Status    string
	Transport string
	Provider  string
	From      *time.Time
	To        *time.Time
	Sort      string
	Order     string
}

func (q ListQuery) descending() bool {
	return strings.EqualFold(q.Order, "desc")
}

// Page is one page of a filtered, sorted collection. Page is 1-based and
// clamped to the available range.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// listSpec describes how one collection is filtered and sorted in memory.
type listSpec[T any] struct {
	searchFields func(T) []string
	status       func(T) string
	transports   func(T) []string
	provider     func(T) string
	date         func(T) time.Time
	sortKeys     map[string]func(a, b T) int
	defaultSort  string
	defaultDesc  bool
}

func (s listSpec[T]) apply(items []T, q ListQuery, pageSize int) Page[T] {
	filtered := make([]T, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, it := range items {
		if search != "" && s.searchFields != nil && !containsAny(s.searchFields(it), search) {
			continue
		}
		if q.Status != "" && s.status != nil && !strings.EqualFold(s.status(it), strings.TrimSpace(q.Status)) {
			continue
		}
		if q.Transport != "" && s.transports != nil && !matchesAny(s.transports(it), q.Transport) {
			continue
		}
		if q.Provider != "" && s.provider != nil && !strings.EqualFold(s.provider(it), strings.TrimSpace(q.Provider)) {
			continue
		}
		if s.date != nil && !inRange(s.date(it), q.From, q.To) {
			continue
		}
		filtered = append(filtered, it)
	}

	key := strings.TrimSpace(q.Sort)
	desc := q.descending()
	if _, ok := s.sortKeys[key]; !ok {
		key = s.defaultSort
		if q.Order == "" {
			desc = s.defaultDesc
		}
	}
	if cmp, ok := s.sortKeys[key]; ok {
		sort.SliceStable(filtered, func(i, j int) bool {
			c := cmp(filtered[i], filtered[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	return paginate(filtered, q.Page, pageSize)
}

func paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)
	pages := 1
	if total > 0 {
		pages = (total + size - 1) / size
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	out := make([]T, 0, end-start)
	out = append(out, items[start:end]...)
	return Page[T]{Items: out, Page: page, PageSize: size, Total: total, TotalPages: pages}
}

func containsAny(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchesAny(values []string, want string) bool {
	want = strings.TrimSpace(want)
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// inRange treats To as inclusive of its whole day.
func inRange(t time.Time, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	if t.IsZero() {
		return false
	}
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil {
		end := *to
		if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0 {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		if t.After(end) {
			return false
		}
	}
	return true
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareTimes(a, b time.Time) int {
	return a.Compare(b)
}
