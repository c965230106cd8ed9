package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/domain"
)

func TestGroupTotalsByCategory(t *testing.T) {
	items := []domain.Item{
		{Category: domain.CategoryBebidas, PriceCents: 1000, Quantity: 1, Unit: domain.UnitPiece},
		{Category: domain.CategoryHortifruti, PriceCents: 500, Quantity: 1, Unit: domain.UnitPiece},
		{Category: domain.CategoryBebidas, PriceCents: 2000, Quantity: 1, Unit: domain.UnitPiece},
		{Category: domain.CategoryOther, PriceCents: 500, Quantity: 1, Unit: domain.UnitPiece},
	}
	buckets := GroupTotals(items, ByCategory)

	if len(buckets) != 3 {
		t.Fatalf("bucket count = %d, want 3", len(buckets))
	}
	// Insertion order of first occurrence.
	if buckets[0].Key != "Bebidas" || buckets[1].Key != "Hortifruti" || buckets[2].Key != "Outros" {
		t.Fatalf("bucket order wrong: %+v", buckets)
	}
	if buckets[0].TotalCents != 3000 {
		t.Fatalf("Bebidas total = %d, want 3000", buckets[0].TotalCents)
	}
	if buckets[0].Percent != 75 {
		t.Fatalf("Bebidas percent = %v, want 75", buckets[0].Percent)
	}

	var sum float64
	for _, b := range buckets {
		sum += b.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("percentages sum to %v, want 100", sum)
	}
}

func TestGroupTotalsMissingSupermarket(t *testing.T) {
	items := []domain.Item{
		{Supermarket: "Atacadão", PriceCents: 100, Quantity: 1, Unit: domain.UnitPiece},
		{PriceCents: 200, Quantity: 1, Unit: domain.UnitPiece},
	}
	buckets := GroupTotals(items, BySupermarket)
	if len(buckets) != 2 || buckets[1].Key != domain.SupermarketUnknown {
		t.Fatalf("missing supermarket bucket: %+v", buckets)
	}
}

func TestGroupTotalsZeroGrandTotal(t *testing.T) {
	items := []domain.Item{
		{Category: domain.CategoryBebidas},
		{Category: domain.CategoryPadaria},
	}
	for _, b := range GroupTotals(items, ByCategory) {
		if b.Percent != 0 {
			t.Fatalf("percent with zero total = %v, want 0", b.Percent)
		}
	}
}

func TestGroupTotalsEmpty(t *testing.T) {
	if got := GroupTotals(nil, ByCategory); len(got) != 0 {
		t.Fatalf("GroupTotals(nil) = %+v, want empty", got)
	}
}

func TestGroupTotalsByMonth(t *testing.T) {
	dates := map[int64]time.Time{
		1: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		2: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
	}
	items := []domain.Item{
		{ListID: 1, PriceCents: 1000, Quantity: 1, Unit: domain.UnitPiece},
		{ListID: 2, PriceCents: 500, Quantity: 1, Unit: domain.UnitPiece},
		{ListID: 1, PriceCents: 500, Quantity: 1, Unit: domain.UnitPiece},
	}
	buckets := GroupTotals(items, ByMonth(dates))
	if len(buckets) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(buckets))
	}
	if buckets[0].Key != "2025-01" || buckets[0].TotalCents != 1500 {
		t.Fatalf("january bucket wrong: %+v", buckets[0])
	}
	if buckets[1].Key != "2025-02" || buckets[1].TotalCents != 500 {
		t.Fatalf("february bucket wrong: %+v", buckets[1])
	}
}
