package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/infrastructure/pdf"
)

func TestGenerateInventoryReport_GeneraPDF(t *testing.T) {
	owner := &entity.User{ID: "u1", Name: "Ada Obi", Email: "ada@example.com"}
	limit := int64(0)
	items := []*entity.Item{
		{Name: "Milk", Category: "Dairy", Quantity: 5, Unit: entity.UnitLitres, PricePerUnit: decimal.NewFromInt(250)},
		{Name: "Sugar", Category: "Pantry", Quantity: 0, Unit: entity.UnitKg, PricePerUnit: decimal.RequireFromString("1200.50"), LowStockLimit: &limit},
	}

	out, err := pdf.NewMarotoReportGenerator().GenerateInventoryReport(context.Background(), owner, items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInventoryReport_SinArticulos(t *testing.T) {
	owner := &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.com"}

	out, err := pdf.NewMarotoReportGenerator().GenerateInventoryReport(context.Background(), owner, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
