package domain

import "strings"

// Category is the closed set of item categories. Labels are the pt-BR ones
// users see; CategoryOther is the fallback bucket for anything missing or
// unrecognized.
type Category string

const (
	CategoryHortifruti Category = "Hortifruti"
	CategoryPadaria    Category = "Padaria"
	CategoryAcougue    Category = "Açougue"
	CategoryLaticinios Category = "Laticínios"
	CategoryMercearia  Category = "Mercearia"
	CategoryBebidas    Category = "Bebidas"
	CategoryCongelados Category = "Congelados"
	CategoryLimpeza    Category = "Limpeza"
	CategoryHigiene    Category = "Higiene"
	CategoryPet        Category = "Pet"
	CategoryOther      Category = "Outros"
)

// SupermarketUnknown is the grouping bucket for items without a supermarket.
const SupermarketUnknown = "Não informado"

var categories = map[string]Category{
	"hortifruti": CategoryHortifruti,
	"padaria":    CategoryPadaria,
	"açougue":    CategoryAcougue,
	"acougue":    CategoryAcougue,
	"laticínios": CategoryLaticinios,
	"laticinios": CategoryLaticinios,
	"mercearia":  CategoryMercearia,
	"bebidas":    CategoryBebidas,
	"congelados": CategoryCongelados,
	"limpeza":    CategoryLimpeza,
	"higiene":    CategoryHigiene,
	"pet":        CategoryPet,
	"outros":     CategoryOther,
}

// ParseCategory maps a raw category label to the closed set. Empty or unknown
// input falls back to CategoryOther, never an error.
func ParseCategory(raw string) Category {
	s := strings.ToLower(strings.TrimSpace(raw))
	if c, ok := categories[s]; ok {
		return c
	}
	return CategoryOther
}

// Categories returns all selectable categories in display order.
func Categories() []Category {
	return []Category{
		CategoryHortifruti, CategoryPadaria, CategoryAcougue, CategoryLaticinios,
		CategoryMercearia, CategoryBebidas, CategoryCongelados, CategoryLimpeza,
		CategoryHigiene, CategoryPet, CategoryOther,
	}
}

func (c Category) String() string { return string(c) }
