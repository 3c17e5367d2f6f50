package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/application/usecase"
	"github.com/jhoicas/inventario-hogar/internal/domain"
)

func TestTransactionCreate_Validaciones(t *testing.T) {
	uc := usecase.NewTransactionUseCase(&memTxRepo{})
	amount := decimal.NewFromInt(10)
	cases := map[string]dto.CreateTransactionRequest{
		"tipo":      {Type: "transfer", Amount: &amount, Category: "Food"},
		"sin monto": {Type: "income", Category: "Food"},
		"negativo":  {Type: "income", Amount: ptr(decimal.NewFromInt(-1)), Category: "Food"},
		"categoria": {Type: "income", Amount: &amount},
		"fecha":     {Type: "income", Amount: &amount, Category: "Food", Date: "03/01/2024"},
	}
	for name, in := range cases {
		_, err := uc.Create(context.Background(), tenantA, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestTransactionList_OrdenYResumen(t *testing.T) {
	repo := &memTxRepo{}
	uc := usecase.NewTransactionUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, tenantA, dto.CreateTransactionRequest{Type: "income", Amount: ptr(decimal.NewFromInt(500)), Category: "Salary", Date: "2024-03-01"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, tenantA, dto.CreateTransactionRequest{Type: "expense", Amount: ptr(decimal.NewFromInt(120)), Category: "Food", Date: "2024-03-05"})
	require.NoError(t, err)
	today, err := uc.Create(ctx, tenantA, dto.CreateTransactionRequest{Type: "expense", Amount: ptr(decimal.NewFromInt(30)), Category: "Food"})
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format(dto.DateLayout), today.Date)

	list, err := uc.List(ctx, tenantA)
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, today.ID, list.Items[0].ID)
	assert.Equal(t, "2024-03-05", list.Items[1].Date)
	assert.Equal(t, "2024-03-01", list.Items[2].Date)
	assert.True(t, decimal.NewFromInt(500).Equal(list.Summary.TotalIncome))
	assert.True(t, decimal.NewFromInt(150).Equal(list.Summary.TotalExpense))
	assert.True(t, decimal.NewFromInt(350).Equal(list.Summary.NetBalance))
}
