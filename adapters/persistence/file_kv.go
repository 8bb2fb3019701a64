package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// fileKV stores each key as <dir>/<key>.json. Writes go to a temp file in the
// same directory and are renamed over the target.
type fileKV struct {
	fs  afero.Fs
	dir string
}

func NewFileKV(fs afero.Fs, dir string) (KeyValue, error) {
	if dir == "" {
		return nil, fmt.Errorf("file storage dir is empty")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
	}
	return &fileKV{fs: fs, dir: dir}, nil
}

func (f *fileKV) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *fileKV) Get(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(f.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %q: %w", p, err)
	}
	return data, nil
}

func (f *fileKV) Set(_ context.Context, key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	tmp, err := afero.TempFile(f.fs, f.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		f.fs.Remove(tmpName)
		return fmt.Errorf("write %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		f.fs.Remove(tmpName)
		return fmt.Errorf("close %q: %w", tmpName, err)
	}
	if err := f.fs.Rename(tmpName, p); err != nil {
		f.fs.Remove(tmpName)
		return fmt.Errorf("rename %q: %w", p, err)
	}
	return nil
}

func (f *fileKV) Delete(_ context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := f.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %q: %w", p, err)
	}
	return nil
}

func (f *fileKV) Close() error { return nil }
