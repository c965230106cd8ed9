package domain

import "strings"

// Unit is the closed set of measurement units an item can carry.
// User input arrives in several spellings (abbreviated and full, pt-BR and
// English); ParseUnit collapses all of them here once, so the rest of the
// code never compares raw strings.
type Unit string

const (
	UnitPiece      Unit = "un"
	UnitBox        Unit = "cx"
	UnitPackage    Unit = "pct"
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitUnknown    Unit = ""
)

var unitSynonyms = map[string]Unit{
	"un":         UnitPiece,
	"unid":       UnitPiece,
	"unidade":    UnitPiece,
	"unidades":   UnitPiece,
	"unit":       UnitPiece,
	"cx":         UnitBox,
	"caixa":      UnitBox,
	"caixas":     UnitBox,
	"box":        UnitBox,
	"pct":        UnitPackage,
	"pacote":     UnitPackage,
	"pacotes":    UnitPackage,
	"package":    UnitPackage,
	"kg":         UnitKilogram,
	"quilo":      UnitKilogram,
	"kilo":       UnitKilogram,
	"g":          UnitGram,
	"grama":      UnitGram,
	"gramas":     UnitGram,
	"l":          UnitLiter,
	"lt":         UnitLiter,
	"litro":      UnitLiter,
	"litros":     UnitLiter,
	"liter":      UnitLiter,
	"ml":         UnitMilliliter,
	"mililitro":  UnitMilliliter,
	"milliliter": UnitMilliliter,
}

// ParseUnit canonicalizes a raw unit string. Anything unrecognized maps to
// UnitUnknown rather than failing.
func ParseUnit(raw string) Unit {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return UnitUnknown
	}
	s = strings.TrimSuffix(s, ".")
	if u, ok := unitSynonyms[s]; ok {
		return u
	}
	return UnitUnknown
}

// Multipliable reports whether price is per-unit and must be multiplied by
// quantity. For weight/volume units price is already the total paid.
func (u Unit) Multipliable() bool {
	switch u {
	case UnitPiece, UnitBox, UnitPackage:
		return true
	}
	return false
}

func (u Unit) String() string { return string(u) }
