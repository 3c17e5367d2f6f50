package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo. Quantity es obligatorio; Unit por defecto "None".
type CreateItemRequest struct {
	Name          string           `json:"name" validate:"required,max=200"`
	Category      string           `json:"category" validate:"required"`
	Quantity      *int64           `json:"quantity" validate:"required,min=0"`
	Unit          string           `json:"unit"`
	PricePerUnit  *decimal.Decimal `json:"price_per_unit"`
	LowStockLimit *int64           `json:"low_stock_limit" validate:"omitempty,min=0"`
}

// UpdateItemRequest entrada para actualizar un artículo (campos nil no se modifican).
// ClearLowStockLimit vuelve al umbral por defecto.
type UpdateItemRequest struct {
	Name               *string          `json:"name"`
	Category           *string          `json:"category"`
	Quantity           *int64           `json:"quantity"`
	Unit               *string          `json:"unit"`
	PricePerUnit       *decimal.Decimal `json:"price_per_unit"`
	LowStockLimit      *int64           `json:"low_stock_limit"`
	ClearLowStockLimit bool             `json:"clear_low_stock_limit"`
}

// UseItemRequest consume una unidad si la cantidad actual sigue siendo ExpectedQuantity.
type UseItemRequest struct {
	ExpectedQuantity *int64 `json:"expected_quantity" validate:"required"`
}

// ItemResponse salida de un artículo con sus valores derivados.
type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int64           `json:"quantity"`
	Unit          string          `json:"unit"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	LowStockLimit *int64          `json:"low_stock_limit"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStock      bool            `json:"low_stock"`
	Alert         string          `json:"alert,omitempty"` // low_stock | out_of_stock
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse lista filtrada de artículos.
type ItemListResponse struct {
	Items    []ItemResponse  `json:"items"`
	Total    int             `json:"total"`
	NetWorth decimal.Decimal `json:"net_worth"`
}

// RowFailure fila rechazada durante una importación. En CSV, Row es el número de línea del archivo.
type RowFailure struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult resultado de una carga masiva: creados, omitidos y fallidos por separado.
type ImportResult struct {
	Created     int          `json:"created"`
	Skipped     int          `json:"skipped"`
	Failed      int          `json:"failed"`
	SkippedRows []int        `json:"skipped_rows,omitempty"`
	Failures    []RowFailure `json:"failures,omitempty"`
}
