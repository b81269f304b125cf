// Package fileio opens input files and writes output files with typed errors.
//
// Outputs are written to a temporary file next to the target and renamed into
// place once the writer succeeded, so a failed run never leaves a truncated
// or partial output behind.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrInputNotFound is returned when an input path does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrInputUnreadable is returned when an input exists but cannot be read or decoded.
	ErrInputUnreadable = errors.New("input unreadable")
	// ErrOutputWriteFailed is returned when an output cannot be created, written or renamed into place.
	ErrOutputWriteFailed = errors.New("output write failed")
)

// Open opens path for reading.
func Open(path string) (*os.File, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, inputError(path, err)
	}
	return f, nil
}

// ReadFile returns the contents of path.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, inputError(path, err)
	}
	return b, nil
}

// Unreadable wraps a decode or read failure of path.
func Unreadable(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInputUnreadable, path, err)
}

func inputError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return Unreadable(path, err)
}

// WriteFile streams the output of write into path. The target is replaced
// only if write returns nil.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	path = filepath.Clean(path)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, path, err)
	}
	return nil
}
