package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/application/notification"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
)

type usersByID map[string]*entity.User

func (u usersByID) Create(context.Context, *entity.User) error { return nil }
func (u usersByID) GetByID(_ context.Context, id string) (*entity.User, error) {
	return u[id], nil
}
func (u usersByID) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (u usersByID) Update(context.Context, *entity.User) error               { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Preview
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_CuerpoIgualAlDelJob(t *testing.T) {
	users := usersByID{"t1": {ID: "t1", Name: "Ada", Email: "ada@example.com"}}
	flagged := &entity.Item{ID: "a", Name: "Rice", Quantity: 0, LowStockLimit: limit(0)}
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {flagged, {ID: "b", Name: "Beans", Quantity: 7}},
	}}

	out, err := notification.NewPreviewUseCase(users, items).Preview(context.Background(), "t1")
	require.NoError(t, err)

	want := notification.BuildLowStockMessage(
		entity.Tenant{ID: "t1", Name: "Ada", NotificationEmail: "ada@example.com"},
		[]*entity.Item{flagged},
	)
	assert.Equal(t, "ada@example.com", out.To)
	assert.Equal(t, want.Subject, out.Subject)
	assert.Equal(t, want.Body, out.Body)
	assert.Equal(t, 1, out.Items)
	assert.True(t, out.WouldSend)
}

func TestPreview_SinAlertasNoEnviaria(t *testing.T) {
	users := usersByID{"t1": {ID: "t1", Email: "ada@example.com"}}
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {{ID: "b", Name: "Beans", Quantity: 7}},
	}}

	out, err := notification.NewPreviewUseCase(users, items).Preview(context.Background(), "t1")
	require.NoError(t, err)
	assert.Zero(t, out.Items)
	assert.False(t, out.WouldSend)
}

func TestPreview_SinEmailNoEnviaria(t *testing.T) {
	users := usersByID{"t1": {ID: "t1", Name: "Ada"}}
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {{ID: "a", Name: "Rice", Quantity: 0}},
	}}

	out, err := notification.NewPreviewUseCase(users, items).Preview(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Items)
	assert.Empty(t, out.To)
	assert.False(t, out.WouldSend)
}

func TestPreview_TenantInexistente(t *testing.T) {
	items := &itemsByTenant{}
	_, err := notification.NewPreviewUseCase(usersByID{}, items).Preview(context.Background(), "t1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Zero(t, items.calls.Load())
}

// La vista previa no envía nada; el job envía después el mismo correo.
func TestPreview_NoEnviaYCoincideConElJob(t *testing.T) {
	users := usersByID{"t1": {ID: "t1", Name: "Ada", Email: "ada@example.com"}}
	items := &itemsByTenant{items: map[string][]*entity.Item{
		"t1": {{ID: "a", Name: "Rice", Quantity: 0}},
	}}
	mailer := &fakeMailer{}
	job := newJob(staticTenants{tenants: []entity.Tenant{{ID: "t1", Name: "Ada", NotificationEmail: "ada@example.com"}}}, items, mailer, &countingPublisher{}, &captureRecorder{})

	out, err := notification.NewPreviewUseCase(users, items).Preview(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, out.WouldSend)
	assert.Empty(t, mailer.sent)

	_, err = job.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, out.Body, mailer.sent[0].body)
	assert.Equal(t, out.To, mailer.sent[0].to)
}
