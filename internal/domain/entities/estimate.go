package entities

import "sort"

// Estimate is one candidate price/provider pairing returned by the pricing
// endpoint. It is never persisted by the backend.
type Estimate struct {
	EstimatedPrice float64 `json:"estimatedPrice" dynamodbav:"estimated_price"`
	Currency       string  `json:"currency" dynamodbav:"currency"`
	Provider       string  `json:"provider,omitempty" dynamodbav:"provider,omitempty"`
	AppliedRule    string  `json:"appliedRule,omitempty" dynamodbav:"applied_rule,omitempty"`
}

// SortEstimates orders estimates by ascending price, keeping the backend's
// order among equal prices.
func SortEstimates(estimates []Estimate) []Estimate {
	out := make([]Estimate, len(estimates))
	copy(out, estimates)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedPrice < out[j].EstimatedPrice
	})
	return out
}
