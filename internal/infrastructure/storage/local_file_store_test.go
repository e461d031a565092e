package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhoicas/Empleados-api/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore_Save(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewLocalFileStore(dir, "/uploads")
	require.NoError(t, err)

	ref, err := fs.Save(context.Background(), "foto.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".png"), "la extensión se conserva en minúsculas")

	// El archivo queda en disco con el contenido intacto.
	onDisk := filepath.Join(dir, filepath.Base(ref))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestLocalFileStore_ExtensionRara(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewLocalFileStore(dir, "/uploads")
	require.NoError(t, err)

	// Nombres con extensiones sospechosas no propagan la extensión.
	ref, err := fs.Save(context.Background(), "../../etc/passwd.sh;rm", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, ref, "..")
	assert.NotContains(t, filepath.Ext(ref), ";")
}

func TestLocalFileStore_NombresUnicos(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewLocalFileStore(dir, "/uploads")
	require.NoError(t, err)

	a, err := fs.Save(context.Background(), "igual.png", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := fs.Save(context.Background(), "igual.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "dos subidas del mismo nombre no deben pisarse")
}
