package notification

import (
	"context"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
	"github.com/jhoicas/inventario-hogar/internal/domain/repository"
)

// PreviewUseCase muestra al tenant el correo de alerta que recibiría, sin enviarlo.
type PreviewUseCase struct {
	users repository.UserRepository
	items ItemLister
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(users repository.UserRepository, items ItemLister) *PreviewUseCase {
	return &PreviewUseCase{users: users, items: items}
}

// Preview aplica la misma regla que el job al inventario actual del tenant.
func (uc *PreviewUseCase) Preview(ctx context.Context, tenantID string) (*dto.LowStockPreviewResponse, error) {
	u, err := uc.users.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	items, err := uc.items.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	flagged := inventory.FlagLowStock(items)
	t := entity.Tenant{ID: u.ID, Name: u.Name, NotificationEmail: u.Email}
	msg := BuildLowStockMessage(t, flagged)
	return &dto.LowStockPreviewResponse{
		To:        t.NotificationEmail,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Items:     len(flagged),
		WouldSend: len(flagged) > 0 && t.NotificationEmail != "",
	}, nil
}
