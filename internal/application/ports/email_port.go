package ports

import "context"

// EmailSender define el puerto de salida para el envío de correos transaccionales.
// El contexto acota la duración del envío.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
