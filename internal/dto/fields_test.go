package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *int64
	}{
		{"number", `12.5`, ptr(int64(1250))},
		{"integer", `10`, ptr(int64(1000))},
		{"string dot", `"12.50"`, ptr(int64(1250))},
		{"string comma", `"12,50"`, ptr(int64(1250))},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"garbage string", `"abc"`, nil},
		{"negative kept for normalizer", `-3`, ptr(int64(-300))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := a.CentsPtr()
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("got %d, want %d", *got, *tc.want)
			}
		})
	}
}

func TestQuantityUnmarshal(t *testing.T) {
	var q Quantity
	if err := json.Unmarshal([]byte(`2.5`), &q); err != nil || q.Ptr() == nil || *q.Ptr() != 2.5 {
		t.Fatalf("number quantity: %v %v", err, q.Ptr())
	}
	if err := json.Unmarshal([]byte(`"três"`), &q); err != nil || q.Ptr() != nil {
		t.Fatalf("non-numeric quantity must coerce to absent, got %v %v", err, q.Ptr())
	}
	if err := json.Unmarshal([]byte(`null`), &q); err != nil || q.Ptr() != nil {
		t.Fatalf("null quantity must be absent")
	}
}

func TestDateOnlyUnmarshal(t *testing.T) {
	var d DateOnly
	if err := json.Unmarshal([]byte(`"2025-01-10"`), &d); err != nil {
		t.Fatalf("date-only: %v", err)
	}
	want := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	if d.Ptr() == nil || !d.Ptr().Equal(want) {
		t.Fatalf("got %v, want %v", d.Ptr(), want)
	}
	if err := json.Unmarshal([]byte(`"2025-01-10T15:04:05Z"`), &d); err != nil || d.Ptr() == nil {
		t.Fatalf("RFC3339: %v", err)
	}
	if err := json.Unmarshal([]byte(`"not a date"`), &d); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
	if err := json.Unmarshal([]byte(`null`), &d); err != nil || d.Ptr() != nil {
		t.Fatalf("null date must be absent")
	}
}

func TestFormatCents(t *testing.T) {
	cases := map[int64]string{
		2000:  "20.00",
		3500:  "35.00",
		5:     "0.05",
		0:     "0.00",
		-150:  "-1.50",
		12345: "123.45",
	}
	for in, want := range cases {
		if got := FormatCents(in); got != want {
			t.Fatalf("FormatCents(%d) = %s, want %s", in, got, want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
