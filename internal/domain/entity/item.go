package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Item (informativas, no participan en cálculos).
const (
	UnitNone    = "None"
	UnitPieces  = "Pieces"
	UnitPacks   = "Packs"
	UnitBoxes   = "Boxes"
	UnitBottles = "Bottles"
	UnitLitres  = "Litres"
	UnitKg      = "Kg"
	UnitGrams   = "Grams"
	UnitCartons = "Cartons"
	UnitBowls   = "Bowls"
	UnitCups    = "Cups"
	UnitPlates  = "Plates"
	UnitSachets = "Sachets"
	UnitUnits   = "Units"
	UnitOthers  = "Others"
)

// Units lista las unidades en el orden en que se ofrecen al usuario.
var Units = []string{
	UnitNone, UnitPieces, UnitPacks, UnitBoxes, UnitBottles, UnitLitres, UnitKg, UnitGrams,
	UnitCartons, UnitBowls, UnitCups, UnitPlates, UnitSachets, UnitUnits, UnitOthers,
}

// IsValidUnit indica si u es una unidad conocida.
func IsValidUnit(u string) bool {
	for _, v := range Units {
		if v == u {
			return true
		}
	}
	return false
}

// Item representa un artículo del inventario de un tenant.
// El valor total y la alerta de stock bajo se derivan en cada lectura; no se persisten.
type Item struct {
	ID            string
	TenantID      string
	Name          string
	Category      string // referencia blanda a Category.Name
	Quantity      int64
	Unit          string
	PricePerUnit  decimal.Decimal
	LowStockLimit *int64 // nil => umbral por defecto
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
