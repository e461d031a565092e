package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/ports"
)

var _ ports.FileStore = (*LocalFileStore)(nil)

// LocalFileStore guarda las fotos de perfil en un directorio local y las expone
// bajo un prefijo público servido como estático (/uploads).
type LocalFileStore struct {
	dir          string
	publicPrefix string
}

// NewLocalFileStore crea el directorio si no existe.
func NewLocalFileStore(dir, publicPrefix string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalFileStore{dir: dir, publicPrefix: publicPrefix}, nil
}

// Save escribe el contenido con un nombre único (UUID + extensión original
// saneada) y devuelve la referencia relativa, ej. /uploads/3f2a....png.
func (s *LocalFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name := uuid.New().String() + sanitizeExt(filename)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return path.Join(s.publicPrefix, name), nil
}

// sanitizeExt conserva solo extensiones alfanuméricas cortas; cualquier otra cosa
// se descarta para no propagar nombres de archivo arbitrarios del cliente.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
