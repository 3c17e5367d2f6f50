package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/application/analytics"
	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/application/usecase"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

func newCategoryFixture(t *testing.T) (*usecase.CategoryUseCase, *usecase.ItemUseCase, *analytics.DashboardUseCase, string) {
	t.Helper()
	cats := usecase.NewCategoryUseCase(newMemCategoryRepo())
	created, err := cats.Create(context.Background(), tenantA, dto.CategoryRequest{Name: "Dairy"})
	require.NoError(t, err)

	itemUC, itemRepo, _ := newItemUC(&entity.Item{
		ID: "milk", TenantID: tenantA, Name: "Milk", Category: "Dairy",
		Quantity: 2, Unit: entity.UnitLitres, PricePerUnit: decimal.NewFromInt(500),
	})
	dash := analytics.NewDashboardUseCase(itemRepo, &memTxRepo{})
	return cats, itemUC, dash, created.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_ArticulosConservanCategoria(t *testing.T) {
	cats, itemUC, dash, id := newCategoryFixture(t)
	ctx := context.Background()

	require.NoError(t, cats.Delete(ctx, tenantA, id))

	list, err := cats.List(ctx, tenantA)
	require.NoError(t, err)
	assert.Empty(t, list)

	items, err := itemUC.List(ctx, tenantA, "", "")
	require.NoError(t, err)
	require.Len(t, items.Items, 1)
	assert.Equal(t, "Dairy", items.Items[0].Category)

	summary, err := dash.GetSummary(ctx, tenantA, "", "")
	require.NoError(t, err)
	require.Contains(t, summary.CategoryTotals, "Dairy")
	assert.True(t, decimal.NewFromInt(1000).Equal(summary.CategoryTotals["Dairy"]))
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	cats, _, _, _ := newCategoryFixture(t)
	err := cats.Delete(context.Background(), tenantA, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete_OtroTenant(t *testing.T) {
	cats, _, _, id := newCategoryFixture(t)
	err := cats.Delete(context.Background(), "tenant-b", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rename
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRename_NoReescribeArticulos(t *testing.T) {
	cats, itemUC, _, id := newCategoryFixture(t)
	ctx := context.Background()

	renamed, err := cats.Rename(ctx, tenantA, id, dto.CategoryRequest{Name: "  Lácteos "})
	require.NoError(t, err)
	assert.Equal(t, "Lácteos", renamed.Name)

	item, err := itemUC.GetByID(ctx, tenantA, "milk")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Dairy", item.Category)
}

func TestCategoryRename_Inexistente(t *testing.T) {
	cats, _, _, _ := newCategoryFixture(t)
	_, err := cats.Rename(context.Background(), tenantA, "no-existe", dto.CategoryRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRename_NombreVacio(t *testing.T) {
	cats, _, _, id := newCategoryFixture(t)
	_, err := cats.Rename(context.Background(), tenantA, id, dto.CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_NombreVacio(t *testing.T) {
	cats := usecase.NewCategoryUseCase(newMemCategoryRepo())
	_, err := cats.Create(context.Background(), tenantA, dto.CategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
