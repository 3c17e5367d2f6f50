// Package storage guarda archivos subidos en el sistema de archivos local.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/internal/domain"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage escribe bajo dir y publica los archivos en publicURL (servido como estático).
type LocalStorage struct {
	dir       string
	publicURL string
}

// NewLocalStorage construye el almacenamiento.
func NewLocalStorage(dir, publicURL string) *LocalStorage {
	return &LocalStorage{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}
}

// Dir directorio raíz.
func (s *LocalStorage) Dir() string { return s.dir }

// Save copia r en dir/key y devuelve publicURL/key.
func (s *LocalStorage) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := filepath.ToSlash(filepath.Clean(key))
	if key == "" || strings.HasPrefix(clean, "/") || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: clave de archivo inválida", domain.ErrInvalidInput)
	}

	path := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: cerrar archivo: %w", err)
	}
	return s.publicURL + "/" + clean, nil
}
