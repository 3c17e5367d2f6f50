package ports

import (
	"context"
	"io"
)

// FileStorage guarda archivos subidos (logos) y devuelve la URL pública.
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader) (url string, err error)
}
