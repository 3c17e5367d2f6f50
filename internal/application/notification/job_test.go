package notification_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/application/notification"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type staticTenants struct {
	tenants []entity.Tenant
	err     error
}

func (s staticTenants) ListTenants(context.Context) ([]entity.Tenant, error) { return s.tenants, s.err }

type itemsByTenant struct {
	items map[string][]*entity.Item
	errs  map[string]error
	calls atomic.Int32
}

func (s *itemsByTenant) ListByTenant(_ context.Context, tenantID string) ([]*entity.Item, error) {
	s.calls.Add(1)
	if err := s.errs[tenantID]; err != nil {
		return nil, err
	}
	return s.items[tenantID], nil
}

type sent struct{ to, subject, body string }

type fakeMailer struct {
	mu     sync.Mutex
	sent   []sent
	failTo map[string]error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failTo[to]; err != nil {
		return err
	}
	m.sent = append(m.sent, sent{to, subject, body})
	return nil
}

type countingPublisher struct{ n atomic.Int32 }

func (p *countingPublisher) Publish(context.Context, string, any) error {
	p.n.Add(1)
	return nil
}

type captureRecorder struct{ runs []notification.RunSummary }

func (r *captureRecorder) ObserveRun(s notification.RunSummary) { r.runs = append(r.runs, s) }

func limit(v int64) *int64 { return &v }

func newJob(tenants staticTenants, items *itemsByTenant, mailer *fakeMailer, pub *countingPublisher, rec *captureRecorder) *notification.Job {
	return notification.NewJob(tenants, items, mailer, pub, rec, notification.Config{Concurrency: 3, TenantTimeout: time.Second}, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Con limit 0 solo se marca el agotado; el correo contiene su nombre y cantidad 0.
func TestRun_SoloArticuloAgotadoConUmbralCero(t *testing.T) {
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {
			{ID: "a", Name: "Rice", Quantity: 0, LowStockLimit: limit(0)},
			{ID: "b", Name: "Beans", Quantity: 5, LowStockLimit: limit(4)},
			{ID: "c", Name: "Salt", Quantity: 1, LowStockLimit: limit(0)},
		},
	}}
	mailer := &fakeMailer{}
	job := newJob(staticTenants{tenants: []entity.Tenant{{ID: "t1", Name: "Ada", NotificationEmail: "ada@example.com"}}}, items, mailer, &countingPublisher{}, &captureRecorder{})

	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Notified)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].to)
	assert.Equal(t, notification.LowStockSubject, mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Rice (Cant: 0)")
	assert.NotContains(t, mailer.sent[0].body, "Beans")
	assert.NotContains(t, mailer.sent[0].body, "Salt")
}

// quantity 5 <= limit 10 también queda marcado por la regla inclusiva.
// La regla es quantity <= umbral efectivo (inventory.IsLowStock); este caso no es una regresión.
func TestRun_EscenarioUmbralesMixtos(t *testing.T) {
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {
			{ID: "a", Name: "Rice", Quantity: 0, LowStockLimit: limit(0)},
			{ID: "b", Name: "Beans", Quantity: 5, LowStockLimit: limit(10)},
		},
	}}
	mailer := &fakeMailer{}
	job := newJob(staticTenants{tenants: []entity.Tenant{{ID: "t1", NotificationEmail: "t1@example.com"}}}, items, mailer, &countingPublisher{}, &captureRecorder{})

	_, err := job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].body, "Rice (Cant: 0)")
	assert.Contains(t, mailer.sent[0].body, "Beans (Cant: 5)")
}

func TestRun_FalloDeLecturaNoAfectaOtrosTenants(t *testing.T) {
	tenants := staticTenants{tenants: []entity.Tenant{
		{ID: "t1", NotificationEmail: "t1@example.com"},
		{ID: "t2", NotificationEmail: "t2@example.com"},
		{ID: "t3", NotificationEmail: "t3@example.com"},
	}}
	items := &itemsByTenant{
		items: map[string][]*entity.Item{
			"t1": {{Name: "Milk", Quantity: 1}},
			"t3": {{Name: "Soap", Quantity: 0}},
		},
		errs: map[string]error{"t2": errors.New("timeout de lectura")},
	}
	mailer := &fakeMailer{}
	rec := &captureRecorder{}
	pub := &countingPublisher{}
	job := newJob(tenants, items, mailer, pub, rec)

	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Tenants)
	assert.Equal(t, 2, summary.Notified)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "t2", summary.Failures[0].TenantID)
	assert.Equal(t, notification.StageFetch, summary.Failures[0].Stage)
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, int32(2), pub.n.Load())
	require.Len(t, rec.runs, 1)
	assert.Equal(t, 1, rec.runs[0].Failed)
}

func TestRun_FalloDeEnvioAislado(t *testing.T) {
	tenants := staticTenants{tenants: []entity.Tenant{
		{ID: "t1", NotificationEmail: "t1@example.com"},
		{ID: "t2", NotificationEmail: "t2@example.com"},
	}}
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {{Name: "Milk", Quantity: 0}},
		"t2": {{Name: "Soap", Quantity: 0}},
	}}
	mailer := &fakeMailer{failTo: map[string]error{"t1@example.com": errors.New("smtp 550")}}
	job := newJob(tenants, items, mailer, &countingPublisher{}, &captureRecorder{})

	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Notified)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, notification.StageSend, summary.Failures[0].Stage)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "t2@example.com", mailer.sent[0].to)
}

func TestRun_OmiteSinEmailOSinAlertas(t *testing.T) {
	tenants := staticTenants{tenants: []entity.Tenant{
		{ID: "t1"},
		{ID: "t2", NotificationEmail: "t2@example.com"},
	}}
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {{Name: "Milk", Quantity: 0}},
		"t2": {{Name: "Soap", Quantity: 40}},
	}}
	mailer := &fakeMailer{}
	job := newJob(tenants, items, mailer, &countingPublisher{}, &captureRecorder{})

	summary, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Skipped)
	assert.Empty(t, mailer.sent)
}

func TestRun_ErrorDelDirectorio(t *testing.T) {
	items := &itemsByTenant{}
	job := newJob(staticTenants{err: errors.New("sin conexión")}, items, &fakeMailer{}, &countingPublisher{}, &captureRecorder{})
	_, err := job.Run(context.Background())
	assert.Error(t, err)
	assert.Zero(t, items.calls.Load())
}

func TestBuildLowStockMessage(t *testing.T) {
	msg := notification.BuildLowStockMessage(entity.Tenant{Name: "Ada"}, []*entity.Item{
		{Name: "Milk", Quantity: 1}, {Name: "Rice", Quantity: 0},
	})
	assert.Equal(t, notification.LowStockSubject, msg.Subject)
	assert.Contains(t, msg.Body, "Hola Ada,")
	assert.Contains(t, msg.Body, "- Milk (Cant: 1)\n- Rice (Cant: 0)\n")
}
