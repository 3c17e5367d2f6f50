package repository

import (
	"context"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, tenantID, id string) (*entity.Category, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Category, error)
	Rename(ctx context.Context, tenantID, id, name string) error
	Delete(ctx context.Context, tenantID, id string) error
}
