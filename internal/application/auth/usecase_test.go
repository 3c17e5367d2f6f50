package auth_test

import (
	"context"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/application/auth"
	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	pkgjwt "github.com/jhoicas/inventario-hogar/pkg/jwt"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

type memUsers struct {
	byID map[string]*entity.User
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error { r.byID[u.ID] = u; return nil }
func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID[id], nil
}
func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUsers) Update(_ context.Context, u *entity.User) error { r.byID[u.ID] = u; return nil }

type sentMail struct{ to, subject, body string }

type captureMailer struct{ sent []sentMail }

func (m *captureMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

const secret = "auth-test-secret"

func newAuth() (*auth.AuthUseCase, *memUsers, *captureMailer) {
	users := &memUsers{byID: map[string]*entity.User{}}
	mailer := &captureMailer{}
	uc := auth.NewAuthUseCase(users, mailer, auth.JWTConfig{
		Secret: secret, ExpMinutes: 5, Issuer: "test", ResetExpMinutes: 10, ResetURL: "https://app.example.com/reset",
	}, logger.Nop())
	return uc, users, mailer
}

func TestRegisterLogin_Flujo(t *testing.T) {
	uc, _, _ := newAuth()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ada Okafor", Email: " Ada@Example.com ", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "AO", u.Initials)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Otra", Email: "ada@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "secreta123"})
	require.NoError(t, err)
	uid, email, err := pkgjwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
	assert.Equal(t, "ada@example.com", email)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc, _, _ := newAuth()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Name: "A", Email: "a@b.c", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPasswordReset_EnviaEnlaceYCambiaPassword(t *testing.T) {
	uc, _, mailer := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secreta123"})
	require.NoError(t, err)

	require.NoError(t, uc.RequestPasswordReset(ctx, dto.PasswordResetRequest{Email: "ada@example.com"}))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "ada@example.com", mailer.sent[0].to)

	link := regexp.MustCompile(`https://app\.example\.com/reset\?token=\S+`).FindString(mailer.sent[0].body)
	require.NotEmpty(t, link)
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	token := parsed.Query().Get("token")

	require.NoError(t, uc.ConfirmPasswordReset(ctx, dto.PasswordResetConfirmRequest{Token: token, Password: "nueva-clave-1"}))
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "nueva-clave-1"})
	assert.NoError(t, err)

	err = uc.ConfirmPasswordReset(ctx, dto.PasswordResetConfirmRequest{Token: "basura", Password: "nueva-clave-2"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPasswordReset_EmailDesconocidoNoEsError(t *testing.T) {
	uc, _, mailer := newAuth()
	assert.NoError(t, uc.RequestPasswordReset(context.Background(), dto.PasswordResetRequest{Email: "nadie@example.com"}))
	assert.Empty(t, mailer.sent)
}
