package repository

import (
	"context"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia del libro de ingresos/gastos.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Transaction, error)
}
