package domain

import "math"

// Prices are stored as integer cents. Normalization happens once, at the
// ingestion boundary: missing/negative values become safe defaults here and
// nowhere else, so "missing vs zero vs malformed" is decided in one place.

// NormalizeCents clamps a possibly-missing price to a defined value:
// nil or negative means 0.
func NormalizeCents(cents *int64) int64 {
	if cents == nil || *cents < 0 {
		return 0
	}
	return *cents
}

// NormalizeQuantity applies the uniform quantity default: missing means 1
// (at least one of the item), negative clamps to 0. An explicit 0 stays 0.
func NormalizeQuantity(q *float64) float64 {
	if q == nil {
		return 1
	}
	if *q < 0 || math.IsNaN(*q) || math.IsInf(*q, 0) {
		return 0
	}
	return *q
}

// MulCents multiplies a cent amount by a quantity, rounding to whole cents.
func MulCents(cents int64, quantity float64) int64 {
	if cents <= 0 || quantity <= 0 {
		return 0
	}
	return int64(math.Round(float64(cents) * quantity))
}
