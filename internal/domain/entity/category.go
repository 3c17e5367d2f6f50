package entity

import "time"

// Category representa una categoría de artículos de un tenant.
// Borrarla no afecta a los Items que la referencian.
type Category struct {
	ID        string
	TenantID  string
	Name      string
	CreatedAt time.Time
}
