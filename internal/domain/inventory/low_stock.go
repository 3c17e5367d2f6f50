package inventory

import "github.com/jhoicas/inventario-hogar/internal/domain/entity"

// DefaultLowStockLimit es el umbral aplicado cuando el Item no define LowStockLimit.
const DefaultLowStockLimit int64 = 1

// Etiquetas de alerta para presentación.
const (
	AlertOutOfStock = "out_of_stock"
	AlertLowStock   = "low_stock"
)

// EffectiveLimit devuelve el umbral vigente del item.
func EffectiveLimit(item *entity.Item) int64 {
	if item.LowStockLimit != nil {
		return *item.LowStockLimit
	}
	return DefaultLowStockLimit
}

// IsLowStock decide si el item debe marcarse como stock bajo o agotado.
// Con umbral 0 solo se marca cuando la cantidad es exactamente 0.
// Cantidades negativas quedan marcadas con cualquier umbral distinto de 0.
func IsLowStock(item *entity.Item) bool {
	limit := EffectiveLimit(item)
	if limit == 0 {
		return item.Quantity == 0
	}
	return item.Quantity <= limit
}

// AlertLabel devuelve la etiqueta de alerta de un item marcado: umbral 0 => agotado.
// Devuelve "" si el item no está en stock bajo.
func AlertLabel(item *entity.Item) string {
	if !IsLowStock(item) {
		return ""
	}
	if EffectiveLimit(item) == 0 {
		return AlertOutOfStock
	}
	return AlertLowStock
}

// FlagLowStock devuelve el subconjunto de items marcados, en el mismo orden.
func FlagLowStock(items []*entity.Item) []*entity.Item {
	var out []*entity.Item
	for _, it := range items {
		if IsLowStock(it) {
			out = append(out, it)
		}
	}
	return out
}
