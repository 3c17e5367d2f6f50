// Package events publica eventos de inventario en un exchange topic de RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/pkg/config"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

const exchangeType = "topic"

var (
	_ ports.EventPublisher = (*AMQPPublisher)(nil)
	_ ports.EventPublisher = NopPublisher{}
)

// Envelope cuerpo JSON de cada evento publicado.
type Envelope struct {
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// AMQPPublisher publica en un exchange durable. El canal AMQP no es seguro para uso
// concurrente, por eso cada Publish toma el mutex.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	appID    string
	now      func() time.Time
}

// NewAMQPPublisher conecta, abre un canal y declara el exchange.
func NewAMQPPublisher(url, exchange, appID string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: conectar a RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: abrir canal: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declarar exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange, appID: appID, now: time.Now}, nil
}

// NewPublisher devuelve un AMQPPublisher si hay URL configurada; si no (o si falla la
// conexión) un NopPublisher. Los eventos son best effort: la API arranca igual.
func NewPublisher(cfg config.AMQPConfig, appID string, log *logger.Logger) (ports.EventPublisher, func()) {
	if cfg.URL == "" {
		return NopPublisher{}, func() {}
	}
	p, err := NewAMQPPublisher(cfg.URL, cfg.Exchange, appID)
	if err != nil {
		log.Warn().Err(err).Msg("eventos deshabilitados")
		return NopPublisher{}, func() {}
	}
	log.Info().Str("exchange", cfg.Exchange).Msg("publicador de eventos conectado")
	return p, p.Close
}

// Publish serializa payload dentro de un Envelope y lo publica con routingKey.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	msg, err := NewPublishing(p.appID, routingKey, payload, p.now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return fmt.Errorf("events: canal cerrado")
	}
	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("events: publicar %s: %w", routingKey, err)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// NewPublishing arma el mensaje AMQP persistente con el Envelope en JSON.
func NewPublishing(appID, routingKey string, payload any, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(Envelope{EventType: routingKey, OccurredAt: at.UTC(), Payload: payload})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("events: serializar %s: %w", routingKey, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		AppId:        appID,
		Timestamp:    at.UTC(),
		Body:         body,
	}, nil
}

// NopPublisher descarta los eventos.
type NopPublisher struct{}

// Publish no hace nada.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }
