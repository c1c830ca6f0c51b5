package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvSlot keeps the board as a file under a base directory. It is the
// default, local-only backend.
type DiskvSlot struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskvSlot creates a slot rooted at basePath. The diskv read cache is
// disabled so values written by another tally process are always seen, and
// writes go through a temp file so readers never observe a partial value.
func NewDiskvSlot(basePath string) *DiskvSlot {
	return &DiskvSlot{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      0,
			TempDir:           filepath.Join(basePath, ".tmp"),
		}),
		basePath: basePath,
	}
}

// BasePath is the directory holding the slot files.
func (s *DiskvSlot) BasePath() string {
	return s.basePath
}

// PathFor returns the file a key is stored in.
func (s *DiskvSlot) PathFor(key string) string {
	pk := keyToPathTransform(key)
	return filepath.Join(append([]string{s.basePath}, append(pk.Path, pk.FileName)...)...)
}

func (s *DiskvSlot) Get(_ context.Context, key string) ([]byte, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (s *DiskvSlot) Put(_ context.Context, key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvSlot) Close() error {
	return nil
}

// keyToPathTransform maps `scorecounter:v1` to scorecounter/v1 so the key is
// a valid file name on every platform.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, ":")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s:%s", strings.Join(pathKey.Path, ":"), pathKey.FileName)
}
