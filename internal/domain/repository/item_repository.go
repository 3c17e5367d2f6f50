package repository

import (
	"context"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Todas las operaciones están acotadas al tenant recibido.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Item, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// UpdateQuantity aplica newQty solo si la cantidad persistida sigue siendo expected.
	// Devuelve domain.ErrConflict si cambió y domain.ErrNotFound si el item no existe.
	UpdateQuantity(ctx context.Context, tenantID, id string, expected, newQty int64) error
	Delete(ctx context.Context, tenantID, id string) error
}
