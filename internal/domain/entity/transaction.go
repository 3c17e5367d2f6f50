package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction es un movimiento del libro de ingresos/gastos (no ligado a Items).
type Transaction struct {
	ID          string
	TenantID    string
	Type        string // income, expense
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time // fecha calendario (00:00 UTC)
	CreatedAt   time.Time
}
