package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
	"github.com/jhoicas/inventario-hogar/internal/domain/repository"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

// ItemUseCase casos de uso CRUD para artículos y el consumo atómico de una unidad.
type ItemUseCase struct {
	repo   repository.ItemRepository
	events ports.EventPublisher
	log    *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, events ports.EventPublisher, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{repo: repo, events: events, log: log}
}

// List devuelve los artículos del tenant filtrados por nombre y categoría ("" equivale a "All").
func (uc *ItemUseCase) List(ctx context.Context, tenantID, search, category string) (*dto.ItemListResponse, error) {
	items, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = inventory.AllCategories
	}
	filtered := inventory.Filter(items, search, category)
	out := make([]dto.ItemResponse, 0, len(filtered))
	for _, it := range filtered {
		out = append(out, ToItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out), NetWorth: inventory.NetWorth(filtered)}, nil
}

// Create valida y persiste un artículo nuevo. Publica item.created.
func (uc *ItemUseCase) Create(ctx context.Context, tenantID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity == nil {
		return nil, fmt.Errorf("%w: quantity es obligatorio", domain.ErrInvalidInput)
	}
	price := decimal.Zero
	if in.PricePerUnit != nil {
		price = *in.PricePerUnit
	}
	now := time.Now()
	item := &entity.Item{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		Name:          strings.TrimSpace(in.Name),
		Category:      strings.TrimSpace(in.Category),
		Quantity:      *in.Quantity,
		Unit:          strings.TrimSpace(in.Unit),
		PricePerUnit:  price,
		LowStockLimit: in.LowStockLimit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if item.Unit == "" {
		item.Unit = entity.UnitNone
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.publish(ctx, ports.EventItemCreated, item)
	resp := ToItemResponse(item)
	return &resp, nil
}

// GetByID obtiene un artículo del tenant. Devuelve nil, nil si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, tenantID, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// Update aplica los campos presentes en in. Devuelve nil, nil si el artículo no existe.
func (uc *ItemUseCase) Update(ctx context.Context, tenantID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.PricePerUnit != nil {
		item.PricePerUnit = *in.PricePerUnit
	}
	if in.ClearLowStockLimit {
		item.LowStockLimit = nil
	} else if in.LowStockLimit != nil {
		item.LowStockLimit = in.LowStockLimit
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

// Delete elimina un artículo. Publica item.deleted.
func (uc *ItemUseCase) Delete(ctx context.Context, tenantID, id string) error {
	item, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	uc.publish(ctx, ports.EventItemDeleted, item)
	return nil
}

// UseOne descuenta una unidad solo si la cantidad persistida sigue siendo expected.
// Dos llamadas concurrentes con el mismo expected: una gana y la otra recibe domain.ErrConflict.
func (uc *ItemUseCase) UseOne(ctx context.Context, tenantID, id string, expected int64) (*dto.ItemResponse, error) {
	if expected <= 0 {
		return nil, fmt.Errorf("%w: no hay unidades para consumir", domain.ErrInvalidInput)
	}
	if err := uc.repo.UpdateQuantity(ctx, tenantID, id, expected, expected-1); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToItemResponse(item)
	return &resp, nil
}

func (uc *ItemUseCase) publish(ctx context.Context, key string, item *entity.Item) {
	payload := map[string]any{
		"tenant_id": item.TenantID,
		"item_id":   item.ID,
		"name":      item.Name,
		"category":  item.Category,
		"quantity":  item.Quantity,
	}
	if err := uc.events.Publish(ctx, key, payload); err != nil {
		uc.log.Warn().Err(err).Str("event", key).Str("item_id", item.ID).Msg("no se pudo publicar el evento")
	}
}

// validateItem cierra en escritura los valores que la regla de stock bajo no espera (negativos).
func validateItem(item *entity.Item) error {
	switch {
	case item.Name == "":
		return fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	case item.Category == "":
		return fmt.Errorf("%w: category es obligatorio", domain.ErrInvalidInput)
	case item.Quantity < 0:
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	case item.PricePerUnit.IsNegative():
		return fmt.Errorf("%w: price_per_unit no puede ser negativo", domain.ErrInvalidInput)
	case item.LowStockLimit != nil && *item.LowStockLimit < 0:
		return fmt.Errorf("%w: low_stock_limit no puede ser negativo", domain.ErrInvalidInput)
	case !entity.IsValidUnit(item.Unit):
		return fmt.Errorf("%w: unidad desconocida %q", domain.ErrInvalidInput, item.Unit)
	}
	return nil
}

// ToItemResponse mapea un Item a su salida con valor total y alerta derivados.
func ToItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Category:      it.Category,
		Quantity:      it.Quantity,
		Unit:          it.Unit,
		PricePerUnit:  it.PricePerUnit,
		LowStockLimit: it.LowStockLimit,
		TotalValue:    inventory.TotalValue(it),
		LowStock:      inventory.IsLowStock(it),
		Alert:         inventory.AlertLabel(it),
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
