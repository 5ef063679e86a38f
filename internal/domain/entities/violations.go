package entities

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Violations maps a form field to a message code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add keeps the first violation reported for a field.
func (v Violations) Add(field, code string) {
	if _, ok := v[field]; !ok {
		v[field] = code
	}
}

func (v Violations) Merge(other Violations) {
	for k, c := range other {
		v.Add(k, c)
	}
}

func required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "required")
	}
}

// Numeric is a number typed into a form. It is kept as text so that an empty
// input stays distinguishable from zero; JSON numbers and strings both decode.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*n = Numeric(strings.TrimSpace(text))
		return nil
	}
	*n = Numeric(s)
	return nil
}

func (n Numeric) Present() bool { return strings.TrimSpace(string(n)) != "" }

// Float parses the value, accepting a decimal comma. Non-finite values fail.
func (n Numeric) Float() (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(string(n)), ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Positive reports whether the value is present, numeric and > 0.
func (n Numeric) Positive() bool {
	f, ok := n.Float()
	return ok && f > 0
}

func NumericOf(f float64) Numeric {
	return Numeric(strconv.FormatFloat(f, 'f', -1, 64))
}
