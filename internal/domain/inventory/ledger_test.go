package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
)

func tx(id, typ, amount string, date time.Time, created time.Time) *entity.Transaction {
	return &entity.Transaction{ID: id, Type: typ, Amount: decimal.RequireFromString(amount), Date: date, CreatedAt: created}
}

func TestSummarizeLedger(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s := inventory.SummarizeLedger([]*entity.Transaction{
		tx("1", entity.TransactionIncome, "1000", d, d),
		tx("2", entity.TransactionExpense, "250.50", d, d),
		tx("3", entity.TransactionIncome, "20", d, d),
	})
	assert.True(t, decimal.NewFromInt(1020).Equal(s.TotalIncome))
	assert.True(t, decimal.RequireFromString("250.50").Equal(s.TotalExpense))
	assert.True(t, decimal.RequireFromString("769.50").Equal(s.NetBalance))

	empty := inventory.SummarizeLedger(nil)
	assert.True(t, empty.NetBalance.IsZero())
}

func TestSortLedger_FechaDescYCreacionDesc(t *testing.T) {
	d1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	c := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	txs := []*entity.Transaction{
		tx("a", entity.TransactionIncome, "1", d1, c),
		tx("b", entity.TransactionIncome, "1", d2, c),
		tx("c", entity.TransactionIncome, "1", d2, c.Add(time.Hour)),
	}
	inventory.SortLedger(txs)
	assert.Equal(t, "c", txs[0].ID)
	assert.Equal(t, "b", txs[1].ID)
	assert.Equal(t, "a", txs[2].ID)
}
