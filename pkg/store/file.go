package store

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/shelfserve/internal/utils"
)

// FileKV stores each key as a JSON blob file in a directory.
// Saves go through a temp file and rename so a crash mid-write never
// leaves a half-written table behind.
type FileKV struct {
	dir string
}

// NewFileKV creates the backing directory if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the blob for a key. Missing file maps to ErrNotFound.
func (f *FileKV) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Save replaces the blob for a key.
func (f *FileKV) Save(key string, value []byte) error {
	target := f.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
