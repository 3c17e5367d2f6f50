package ports

import (
	"context"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

// InventoryReportGenerator genera el reporte de valoración del inventario de un tenant.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, owner *entity.User, items []*entity.Item) ([]byte, error)
}
