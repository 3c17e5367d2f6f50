// Package notification implementa el job periódico de alertas de stock bajo:
// por cada tenant evalúa su inventario y envía un único correo con los artículos marcados.
package notification

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
	"github.com/jhoicas/inventario-hogar/internal/domain/repository"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

// Resultado del procesamiento de un tenant.
const (
	OutcomeNotified = "notified"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

// Etapas en las que puede fallar un tenant.
const (
	StageFetch = "fetch"
	StageSend  = "send"
)

// ItemLister es la parte del ItemRepository que usa el job.
type ItemLister interface {
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Item, error)
}

// Recorder recibe el resumen de cada ejecución (métricas).
type Recorder interface {
	ObserveRun(summary RunSummary)
}

// Config parámetros del job.
type Config struct {
	Concurrency   int           // tenants procesados en paralelo (>= 1)
	TenantTimeout time.Duration // 0 => sin límite por tenant
}

// TenantFailure fallo aislado de un tenant.
type TenantFailure struct {
	TenantID string
	Stage    string // fetch, send
	Err      error
}

// RunSummary resultado de una ejecución. Solo se usa para log y métricas.
type RunSummary struct {
	Tenants  int
	Notified int
	Skipped  int
	Failed   int
	Failures []TenantFailure
	Duration time.Duration
}

// Job evalúa el stock bajo de todos los tenants. No guarda estado entre ejecuciones.
type Job struct {
	tenants  repository.TenantDirectory
	items    ItemLister
	mailer   ports.EmailSender
	events   ports.EventPublisher
	recorder Recorder
	cfg      Config
	log      *logger.Logger
}

// NewJob construye el job. recorder puede ser nil.
func NewJob(
	tenants repository.TenantDirectory,
	items ItemLister,
	mailer ports.EmailSender,
	events ports.EventPublisher,
	recorder Recorder,
	cfg Config,
	log *logger.Logger,
) *Job {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Job{
		tenants:  tenants,
		items:    items,
		mailer:   mailer,
		events:   events,
		recorder: recorder,
		cfg:      cfg,
		log:      log.Component("low_stock_job"),
	}
}

type tenantResult struct {
	outcome string
	stage   string
	err     error
}

// Run ejecuta una pasada completa. Solo devuelve error si no se pudo listar los tenants;
// los fallos de cada tenant quedan en el resumen y no detienen a los demás.
func (j *Job) Run(ctx context.Context) (RunSummary, error) {
	start := time.Now()
	var summary RunSummary

	tenants, err := j.tenants.ListTenants(ctx)
	if err != nil {
		summary.Duration = time.Since(start)
		j.log.Error().Err(err).Msg("no se pudo listar los tenants")
		return summary, fmt.Errorf("listar tenants: %w", err)
	}
	summary.Tenants = len(tenants)

	results := make([]tenantResult, len(tenants))
	var g errgroup.Group
	g.SetLimit(j.cfg.Concurrency)
	for i, t := range tenants {
		g.Go(func() error {
			results[i] = j.processTenant(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	for i, r := range results {
		switch r.outcome {
		case OutcomeNotified:
			summary.Notified++
		case OutcomeSkipped:
			summary.Skipped++
		case OutcomeFailed:
			summary.Failed++
			summary.Failures = append(summary.Failures, TenantFailure{TenantID: tenants[i].ID, Stage: r.stage, Err: r.err})
		}
	}
	summary.Duration = time.Since(start)

	if j.recorder != nil {
		j.recorder.ObserveRun(summary)
	}
	j.log.Info().
		Int("tenants", summary.Tenants).
		Int("notified", summary.Notified).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Dur("duration", summary.Duration).
		Msg("job de stock bajo finalizado")
	return summary, nil
}

func (j *Job) processTenant(ctx context.Context, t entity.Tenant) tenantResult {
	if j.cfg.TenantTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.cfg.TenantTimeout)
		defer cancel()
	}
	log := j.log.With().Str("tenant_id", t.ID).Logger()

	items, err := j.items.ListByTenant(ctx, t.ID)
	if err != nil {
		log.Error().Err(err).Msg("no se pudo leer el inventario del tenant")
		return tenantResult{outcome: OutcomeFailed, stage: StageFetch, err: err}
	}
	flagged := inventory.FlagLowStock(items)
	if len(flagged) == 0 {
		return tenantResult{outcome: OutcomeSkipped}
	}
	if t.NotificationEmail == "" {
		log.Debug().Int("items", len(flagged)).Msg("tenant sin email de notificación")
		return tenantResult{outcome: OutcomeSkipped}
	}

	msg := BuildLowStockMessage(t, flagged)
	if err := j.mailer.Send(ctx, t.NotificationEmail, msg.Subject, msg.Body); err != nil {
		log.Error().Err(err).Int("items", len(flagged)).Msg("no se pudo enviar la alerta de stock bajo")
		return tenantResult{outcome: OutcomeFailed, stage: StageSend, err: err}
	}
	log.Info().Int("items", len(flagged)).Msg("alerta de stock bajo enviada")

	if err := j.events.Publish(ctx, ports.EventStockLow, stockLowEvent(t, flagged)); err != nil {
		log.Warn().Err(err).Msg("no se pudo publicar stock.low")
	}
	return tenantResult{outcome: OutcomeNotified}
}

func stockLowEvent(t entity.Tenant, flagged []*entity.Item) map[string]any {
	items := make([]map[string]any, 0, len(flagged))
	for _, it := range flagged {
		items = append(items, map[string]any{"item_id": it.ID, "name": it.Name, "quantity": it.Quantity})
	}
	return map[string]any{"tenant_id": t.ID, "items": items}
}
