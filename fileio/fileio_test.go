package fileio_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/bookpictures/fileio"
)

func TestOpenMissing(t *testing.T) {
	_, err := fileio.Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, fileio.ErrInputNotFound)

	_, err = fileio.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, fileio.ErrInputNotFound)
}

func TestReadDirectoryIsUnreadable(t *testing.T) {
	_, err := fileio.ReadFile(t.TempDir())
	assert.ErrorIs(t, err, fileio.ErrInputUnreadable)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	err := fileio.WriteFile(path, func(w io.Writer) error {
		_, err := fmt.Fprint(w, "hello")
		return err
	})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestWriteFileKeepsTargetOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	boom := errors.New("boom")
	err := fileio.WriteFile(path, func(w io.Writer) error {
		_, _ = fmt.Fprint(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := fileio.WriteFile(path, func(io.Writer) error { return nil })
	assert.ErrorIs(t, err, fileio.ErrOutputWriteFailed)
}
