// Package file stores every key as a whole file inside one directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidKey = errors.New("invalid key")

type Storage struct {
	dir string
	ext string
}

// New creates a Storage rooted at dir, creating the directory if needed.
// ext is appended to every key to build its file name, e.g. ".json".
func New(dir, ext string) (*Storage, error) {
	const op = "storage.file.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: mkdir %s: %w", op, dir, err)
	}

	return &Storage{dir: dir, ext: ext}, nil
}

func (s *Storage) Get(_ context.Context, key string) (string, bool, error) {
	const op = "storage.file.Get"

	fn, err := s.path(key)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: read %s: %w", op, fn, err)
	}

	return string(data), true, nil
}

// Set replaces the file for key. The value is written to a temporary file
// first and renamed over the old one.
func (s *Storage) Set(_ context.Context, key, value string) error {
	const op = "storage.file.Set"

	fn, err := s.path(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tmp := fn + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("%s: write %s: %w", op, tmp, err)
	}

	if err := os.Rename(tmp, fn); err != nil {
		return fmt.Errorf("%s: rename %s: %w", op, tmp, err)
	}

	return nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	const op = "storage.file.Delete"

	fn, err := s.path(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Remove(fn); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: remove %s: %w", op, fn, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return filepath.Join(s.dir, key+s.ext), nil
}
