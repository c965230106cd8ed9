package domain

import "testing"

func TestParseUnitSynonyms(t *testing.T) {
	cases := map[string]Unit{
		"un":       UnitPiece,
		"Unidade":  UnitPiece,
		"UNIT":     UnitPiece,
		"cx":       UnitBox,
		"Caixa":    UnitBox,
		"box":      UnitBox,
		"pct":      UnitPackage,
		"pacote":   UnitPackage,
		"package":  UnitPackage,
		"kg":       UnitKilogram,
		"quilo":    UnitKilogram,
		"g":        UnitGram,
		"l":        UnitLiter,
		"litro":    UnitLiter,
		"ml":       UnitMilliliter,
		"  un  ":   UnitPiece,
		"un.":      UnitPiece,
		"":         UnitUnknown,
		"punhado":  UnitUnknown,
		"dúzia":    UnitUnknown,
	}
	for raw, want := range cases {
		if got := ParseUnit(raw); got != want {
			t.Fatalf("ParseUnit(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestMultipliable(t *testing.T) {
	for _, u := range []Unit{UnitPiece, UnitBox, UnitPackage} {
		if !u.Multipliable() {
			t.Fatalf("%s should be multipliable", u)
		}
	}
	for _, u := range []Unit{UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitUnknown} {
		if u.Multipliable() {
			t.Fatalf("%s should not be multipliable", u)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if got := ParseCategory("bebidas"); got != CategoryBebidas {
		t.Fatalf("ParseCategory(bebidas) = %q", got)
	}
	if got := ParseCategory("Laticinios"); got != CategoryLaticinios {
		t.Fatalf("unaccented spelling should still parse, got %q", got)
	}
	if got := ParseCategory(""); got != CategoryOther {
		t.Fatalf("empty category should fall back to Outros, got %q", got)
	}
	if got := ParseCategory("eletrônicos"); got != CategoryOther {
		t.Fatalf("unknown category should fall back to Outros, got %q", got)
	}
}
