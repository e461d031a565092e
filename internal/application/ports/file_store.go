package ports

import (
	"context"
	"io"
)

// FileStore define el puerto de salida para el almacenamiento de archivos binarios
// (fotos de perfil). Cualquier adaptador (disco local, S3, mock) debe implementar
// esta interfaz; la aplicación solo conoce este contrato, no la implementación.
type FileStore interface {
	// Save persiste el contenido bajo un nombre derivado de filename y devuelve
	// la referencia relativa con la que el archivo queda accesible (ej. /uploads/xxx.png).
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
