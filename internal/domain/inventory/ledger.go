package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

// LedgerSummary resume ingresos y gastos de un conjunto de transacciones.
type LedgerSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal
}

// SummarizeLedger calcula totales de ingresos, gastos y balance neto.
func SummarizeLedger(txs []*entity.Transaction) LedgerSummary {
	s := LedgerSummary{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for _, t := range txs {
		switch t.Type {
		case entity.TransactionIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case entity.TransactionExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// SortLedger ordena in-place por fecha descendente y, a igual fecha, por creación descendente.
func SortLedger(txs []*entity.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}
