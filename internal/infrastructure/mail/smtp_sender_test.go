package mail_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/infrastructure/mail"
	"github.com/jhoicas/inventario-hogar/pkg/config"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

func TestBuildMessage_Cabeceras(t *testing.T) {
	m := mail.BuildMessage("alertas@example.com", "ada@example.com", "Alerta", "- Milk (Cant: 0)")

	assert.Equal(t, []string{"alertas@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"ada@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Alerta"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Milk (Cant: 0)")
}

func TestNewSender_SinHostUsaLog(t *testing.T) {
	s := mail.NewSender(config.SMTPConfig{}, logger.Nop())
	_, ok := s.(*mail.LogSender)
	assert.True(t, ok)

	s = mail.NewSender(config.SMTPConfig{Host: "smtp.example.com", Port: 587}, logger.Nop())
	_, ok = s.(*mail.SMTPSender)
	assert.True(t, ok)
}

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	s := mail.NewLogSender(logger.NewWithWriter(&buf, "info"))

	require.NoError(t, s.Send(context.Background(), "ada@example.com", "Alerta", "cuerpo"))
	assert.Contains(t, buf.String(), `"to":"ada@example.com"`)
	assert.Contains(t, buf.String(), `"component":"mail"`)
}

func TestLogSender_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mail.NewLogSender(logger.Nop()).Send(ctx, "ada@example.com", "Alerta", "cuerpo")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSMTPSender_DestinatarioVacio(t *testing.T) {
	s := mail.NewSMTPSender(config.SMTPConfig{Host: "smtp.example.com", Port: 587})
	assert.Error(t, s.Send(context.Background(), "", "Alerta", "cuerpo"))
}
