package entity

import "time"

// Estados válidos para User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa la cuenta de un tenant. Su ID es el TenantID de Items, Categories y Transactions.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	LogoURL      string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Tenant es la proyección del directorio usada por el job de notificaciones.
type Tenant struct {
	ID                string
	Name              string
	NotificationEmail string // vacío si no tiene email registrado
}
