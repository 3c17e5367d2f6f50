package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
)

func limit(v int64) *int64 { return &v }

func TestIsLowStock_SinUmbralUsaUno(t *testing.T) {
	for q, want := range map[int64]bool{-1: true, 0: true, 1: true, 2: false, 50: false} {
		item := &entity.Item{Name: "Milk", Quantity: q}
		assert.Equal(t, want, inventory.IsLowStock(item), "quantity=%d", q)
	}
}

func TestIsLowStock_UmbralCeroSoloAgotado(t *testing.T) {
	assert.True(t, inventory.IsLowStock(&entity.Item{Quantity: 0, LowStockLimit: limit(0)}))
	assert.False(t, inventory.IsLowStock(&entity.Item{Quantity: 1, LowStockLimit: limit(0)}))
	assert.False(t, inventory.IsLowStock(&entity.Item{Quantity: 30, LowStockLimit: limit(0)}))
}

func TestIsLowStock_UmbralPositivoInclusivo(t *testing.T) {
	for _, l := range []int64{1, 5, 10, 250} {
		assert.True(t, inventory.IsLowStock(&entity.Item{Quantity: l, LowStockLimit: limit(l)}), "L=%d", l)
		assert.False(t, inventory.IsLowStock(&entity.Item{Quantity: l + 1, LowStockLimit: limit(l)}), "L+1=%d", l+1)
	}
}

func TestAlertLabel(t *testing.T) {
	assert.Equal(t, inventory.AlertOutOfStock, inventory.AlertLabel(&entity.Item{Quantity: 0, LowStockLimit: limit(0)}))
	assert.Equal(t, inventory.AlertLowStock, inventory.AlertLabel(&entity.Item{Quantity: 0}))
	assert.Equal(t, inventory.AlertLowStock, inventory.AlertLabel(&entity.Item{Quantity: 3, LowStockLimit: limit(5)}))
	assert.Empty(t, inventory.AlertLabel(&entity.Item{Quantity: 6, LowStockLimit: limit(5)}))
}

func TestFlagLowStock_MantieneOrden(t *testing.T) {
	items := []*entity.Item{
		{Name: "Rice", Quantity: 0, LowStockLimit: limit(0)},
		{Name: "Beans", Quantity: 5, LowStockLimit: limit(10)},
		{Name: "Salt", Quantity: 20, LowStockLimit: limit(10)},
		{Name: "Oil", Quantity: 1},
	}
	flagged := inventory.FlagLowStock(items)
	if assert.Len(t, flagged, 3) {
		assert.Equal(t, "Rice", flagged[0].Name)
		assert.Equal(t, "Beans", flagged[1].Name)
		assert.Equal(t, "Oil", flagged[2].Name)
	}
	assert.Empty(t, inventory.FlagLowStock(nil))
}
