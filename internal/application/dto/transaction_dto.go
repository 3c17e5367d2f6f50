package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha calendario en la API.
const DateLayout = "2006-01-02"

// CreateTransactionRequest entrada para registrar un ingreso o gasto. Date vacío => hoy.
type CreateTransactionRequest struct {
	Type        string           `json:"type" validate:"required,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionListResponse transacciones ordenadas por fecha descendente con su resumen.
type TransactionListResponse struct {
	Items   []TransactionResponse `json:"items"`
	Summary LedgerSummary         `json:"summary"`
}
