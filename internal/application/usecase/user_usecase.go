package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/repository"
)

// MaxLogoSize tamaño máximo del logo subido (2 MB).
const MaxLogoSize = 2 << 20

// ProfileUseCase casos de uso del perfil del tenant (nombre y logo).
type ProfileUseCase struct {
	repo    repository.UserRepository
	storage ports.FileStorage
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.UserRepository, storage ports.FileStorage) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, storage: storage}
}

// Get devuelve el perfil del usuario autenticado.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	u, err := uc.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// UpdateName cambia el nombre visible.
func (uc *ProfileUseCase) UpdateName(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	u, err := uc.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// UploadLogo guarda la imagen en logos/<usuario>/ y registra su URL en el perfil.
func (uc *ProfileUseCase) UploadLogo(ctx context.Context, userID, filename, contentType string, size int64, r io.Reader) (*dto.UserResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: el logo debe ser una imagen", domain.ErrInvalidInput)
	}
	if size <= 0 || size > MaxLogoSize {
		return nil, fmt.Errorf("%w: el logo debe pesar como máximo 2 MB", domain.ErrInvalidInput)
	}
	u, err := uc.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("logos/%s/%s%s", userID, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	url, err := uc.storage.Save(ctx, key, io.LimitReader(r, MaxLogoSize))
	if err != nil {
		return nil, fmt.Errorf("guardar logo: %w", err)
	}
	u.LogoURL = url
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

func (uc *ProfileUseCase) find(ctx context.Context, userID string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

// Initials devuelve la primera letra (en mayúscula) de hasta dos palabras del nombre.
func Initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	var b strings.Builder
	for _, part := range parts {
		b.WriteRune(unicode.ToUpper([]rune(part)[0]))
	}
	return b.String()
}

// ToUserResponse mapea un User a su salida (sin hash de contraseña).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Initials:  Initials(u.Name),
		LogoURL:   u.LogoURL,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
