package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Amount parses a money value from JSON as a number (12.5) or a string
// ("12.50", "12,50"). Inputs are user-entered and untrusted: null, empty or
// malformed values coerce to "absent" instead of failing the request, and the
// normalization layer turns absent into 0.
type Amount struct{ cents *int64 }

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		a.cents = nil
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			a.cents = nil
			return nil
		}
		s = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
		if s == "" {
			a.cents = nil
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		a.cents = nil
		return nil
	}
	c := int64(math.Round(f * 100))
	a.cents = &c
	return nil
}

// CentsPtr returns the parsed value in cents, nil when absent or malformed.
func (a Amount) CentsPtr() *int64 { return a.cents }

// Quantity parses a quantity from JSON as a number or numeric string, with
// the same coerce-don't-fail behavior as Amount.
type Quantity struct{ v *float64 }

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		q.v = nil
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			q.v = nil
			return nil
		}
		s = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
		if s == "" {
			q.v = nil
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		q.v = nil
		return nil
	}
	q.v = &f
	return nil
}

// Ptr returns the parsed quantity, nil when absent or malformed.
func (q Quantity) Ptr() *float64 { return q.v }

// DateOnly parses a date from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC.
type DateOnly struct{ t *time.Time }

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("date: use YYYY-MM-DD or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d DateOnly) Ptr() *time.Time { return d.t }

// FormatCents renders a cent amount as a decimal string with two places,
// e.g. 2000 -> "20.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
