package notification

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

// LowStockSubject asunto del correo de alerta.
const LowStockSubject = "🚨 Alerta de stock bajo"

// Message correo listo para enviar.
type Message struct {
	Subject string
	Body    string
}

// BuildLowStockMessage arma un único correo con el nombre y la cantidad de cada artículo marcado.
func BuildLowStockMessage(t entity.Tenant, flagged []*entity.Item) Message {
	var b strings.Builder
	if t.Name != "" {
		fmt.Fprintf(&b, "Hola %s,\n\n", t.Name)
	} else {
		b.WriteString("Hola,\n\n")
	}
	b.WriteString("Los siguientes artículos tienen stock bajo o están agotados:\n\n")
	for _, it := range flagged {
		fmt.Fprintf(&b, "- %s (Cant: %d)\n", it.Name, it.Quantity)
	}
	b.WriteString("\nRevisa tu inventario para reponerlos.\n")
	return Message{Subject: LowStockSubject, Body: b.String()}
}
