package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps each key in <dir>/<key>.json, replaced atomically on save.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("file store: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}
	// The new directory entry must survive a crash as well as the files in it.
	for _, d := range []string{dir, filepath.Dir(dir)} {
		if err := syncDir(d); err != nil {
			return nil, fmt.Errorf("file store: %w", err)
		}
	}
	return &FileStore{dir: dir}, nil
}

// Path is the directory holding the key files.
func (s *FileStore) Path() string { return s.dir }

func (s *FileStore) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("file store: invalid key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	path, err := s.keyPath(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("file store load %s: %w", key, err)
	}
	return data, true, nil
}

func (s *FileStore) Save(ctx context.Context, key string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := s.replace(path, blob); err != nil {
		return fmt.Errorf("file store save %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) WatchPath(key string) string {
	path, _ := s.keyPath(key)
	return path
}

func (s *FileStore) Close() error { return nil }

// replace stages blob in a sibling temp file and renames it over path, so a
// reader sees either the old journal or the new one.
func (s *FileStore) replace(path string, blob []byte) error {
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	staged := tmp.Name()

	err = stage(tmp, blob)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(staged, path)
	}
	if err != nil {
		_ = os.Remove(staged)
		return err
	}
	return syncDir(s.dir)
}

func stage(f *os.File, blob []byte) error {
	if _, err := f.Write(blob); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	return f.Sync()
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	err = d.Sync()
	if cerr := d.Close(); err == nil {
		err = cerr
	}
	return err
}
