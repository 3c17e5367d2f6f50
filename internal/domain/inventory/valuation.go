package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

// AllCategories es el filtro centinela que acepta cualquier categoría.
const AllCategories = "All"

// TotalValue = PricePerUnit * Quantity, sin redondeo.
func TotalValue(item *entity.Item) decimal.Decimal {
	return item.PricePerUnit.Mul(decimal.NewFromInt(item.Quantity))
}

// CategoryTotals agrupa el valor total por categoría. El orden de las claves no es significativo.
func CategoryTotals(items []*entity.Item) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, it := range items {
		totals[it.Category] = totals[it.Category].Add(TotalValue(it))
	}
	return totals
}

// NetWorth suma el valor total de todos los items; 0 para una lista vacía.
func NetWorth(items []*entity.Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(TotalValue(it))
	}
	return sum
}

// Filter devuelve los items cuya categoría coincide exactamente con category (o category es "All")
// y cuyo nombre contiene search sin distinguir mayúsculas. No modifica items.
func Filter(items []*entity.Item, search, category string) []*entity.Item {
	needle := strings.ToLower(search)
	out := make([]*entity.Item, 0, len(items))
	for _, it := range items {
		if category != AllCategories && it.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// UniqueCategories devuelve "All" seguido de las categorías distintas en orden de aparición.
func UniqueCategories(items []*entity.Item) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{AllCategories}
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}
