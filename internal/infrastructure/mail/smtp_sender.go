package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/pkg/config"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

var (
	_ ports.EmailSender = (*SMTPSender)(nil)
	_ ports.EmailSender = (*LogSender)(nil)
)

// SMTPSender envía correos de texto plano vía SMTP usando gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender construye el sender a partir de la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// NewSender devuelve SMTPSender si hay host configurado; si no, LogSender.
func NewSender(cfg config.SMTPConfig, log *logger.Logger) ports.EmailSender {
	if cfg.Enabled() {
		return NewSMTPSender(cfg)
	}
	return NewLogSender(log)
}

// BuildMessage arma el mensaje MIME de texto plano.
func BuildMessage(from, to, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return m
}

// Send envía el correo. gomail no acepta contexto: el envío corre en una goroutine
// y Send retorna en cuanto ctx se cancela (el envío en curso no se aborta).
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("mail: destinatario vacío")
	}
	m := BuildMessage(s.from, to, subject, body)

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail: enviar a %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail: enviar a %s: %w", to, ctx.Err())
	}
}

// LogSender registra los correos en el log en vez de enviarlos (desarrollo).
type LogSender struct {
	log *logger.Logger
}

// NewLogSender construye el sender de log.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.Component("mail")}
}

// Send escribe el correo en el log.
func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info().Str("to", to).Str("subject", subject).Str("body", body).Msg("correo (sin SMTP configurado)")
	return nil
}
