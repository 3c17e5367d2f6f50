package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de valoración del inventario de un tenant.
type ReportUseCase struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
	gen      ports.InventoryReportGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(itemRepo repository.ItemRepository, userRepo repository.UserRepository, gen ports.InventoryReportGenerator) *ReportUseCase {
	return &ReportUseCase{itemRepo: itemRepo, userRepo: userRepo, gen: gen}
}

// InventoryReport devuelve los bytes del PDF. Los artículos se ordenan por categoría y nombre.
func (uc *ReportUseCase) InventoryReport(ctx context.Context, tenantID string) ([]byte, error) {
	owner, err := uc.userRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	items, err := uc.itemRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	pdf, err := uc.gen.GenerateInventoryReport(ctx, owner, items)
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	return pdf, nil
}
