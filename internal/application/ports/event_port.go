package ports

import "context"

// Claves de enrutamiento de los eventos de inventario.
const (
	EventItemCreated = "item.created"
	EventItemDeleted = "item.deleted"
	EventStockLow    = "stock.low"
)

// EventPublisher publica eventos de dominio (best effort). payload se serializa como JSON.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
