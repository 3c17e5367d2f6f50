// Package analytics contiene los casos de uso del Dashboard: valoración del inventario,
// alertas de stock bajo y resumen del libro de ingresos/gastos.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/application/usecase"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
	"github.com/jhoicas/inventario-hogar/internal/domain/repository"
	"github.com/jhoicas/inventario-hogar/pkg/money"
)

// DashboardUseCase arma la vista agregada de un tenant. Todo se recalcula desde cero en cada lectura.
type DashboardUseCase struct {
	itemRepo repository.ItemRepository
	txRepo   repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, txRepo: txRepo}
}

// GetSummary construye el DashboardResponse del tenant.
//
// Dos lecturas en paralelo:
//  1. ListByTenant(items)        → valoración, categorías y stock bajo
//  2. ListByTenant(transactions) → resumen del libro
//
// Los totales por categoría, el patrimonio y las alertas usan el inventario completo;
// search y category solo filtran la lista Items.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tenantID, search, category string) (*dto.DashboardResponse, error) {
	type itemsResult struct {
		items []*entity.Item
		err   error
	}
	type txsResult struct {
		txs []*entity.Transaction
		err error
	}

	itemsCh := make(chan itemsResult, 1)
	txsCh := make(chan txsResult, 1)

	go func() {
		items, err := uc.itemRepo.ListByTenant(ctx, tenantID)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		txs, err := uc.txRepo.ListByTenant(ctx, tenantID)
		txsCh <- txsResult{txs, err}
	}()

	ir := <-itemsCh
	tr := <-txsCh

	if ir.err != nil {
		return nil, fmt.Errorf("dashboard: artículos: %w", ir.err)
	}
	if tr.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones: %w", tr.err)
	}

	if category == "" {
		category = inventory.AllCategories
	}
	filtered := inventory.Filter(ir.items, search, category)
	lowStock := inventory.FlagLowStock(ir.items)
	netWorth := inventory.NetWorth(ir.items)

	return &dto.DashboardResponse{
		Items:             toItemResponses(filtered),
		Categories:        inventory.UniqueCategories(ir.items),
		CategoryTotals:    inventory.CategoryTotals(ir.items),
		NetWorth:          netWorth,
		NetWorthFormatted: money.FormatWithSymbol(netWorth),
		LowStockCount:     len(lowStock),
		LowStockItems:     toItemResponses(lowStock),
		Ledger:            usecase.ToLedgerSummary(inventory.SummarizeLedger(tr.txs)),
	}, nil
}

func toItemResponses(items []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.ToItemResponse(it))
	}
	return out
}
