package request

import (
	"time"

	"freight_portal/internal/usecase"
)

const dateLayout = "2006-01-02"

// ListRequest is the admin table state read from the query string.
type ListRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Transport string `form:"transport" binding:"omitempty,oneof=air sea road"`
	Provider  string `form:"provider"`
	Sort      string `form:"sort"`
	Order     string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (r ListRequest) ToQuery() usecase.ListQuery {
	return usecase.ListQuery{
		Page:      r.Page,
		Search:    r.Search,
		Status:    r.Status,
		Transport: r.Transport,
		Provider:  r.Provider,
		From:      parseDate(r.From),
		To:        parseDate(r.To),
		Sort:      r.Sort,
		Order:     r.Order,
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
