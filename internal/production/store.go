package production

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/comalice/turingx/internal/primitives"
)

// ProgramStore saves and loads program definitions by ID.
// Only definitions are stored; run state is never persisted.
type ProgramStore interface {
	Save(ctx context.Context, cfg primitives.ProgramConfig) error
	Load(ctx context.Context, id string) (primitives.ProgramConfig, error)
	List(ctx context.Context) ([]string, error)
}

// FileStore is a directory of program files in one format.
type FileStore struct {
	dir    string
	format Format
	ext    string
}

var _ ProgramStore = (*FileStore)(nil)

// NewJSONStore creates a JSON FileStore, ensuring the directory exists.
func NewJSONStore(dir string) (*FileStore, error) {
	return newFileStore(dir, FormatJSON, ".json")
}

// NewYAMLStore creates a YAML FileStore, ensuring the directory exists.
func NewYAMLStore(dir string) (*FileStore, error) {
	return newFileStore(dir, FormatYAML, ".yaml")
}

func newFileStore(dir string, format Format, ext string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, format: format, ext: ext}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+s.ext)
}

func (s *FileStore) Save(ctx context.Context, cfg primitives.ProgramConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := EncodeProgram(cfg, s.format)
	if err != nil {
		return err
	}
	fn := s.path(cfg.ID)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, id string) (primitives.ProgramConfig, error) {
	if err := ctx.Err(); err != nil {
		return primitives.ProgramConfig{}, err
	}
	fn := s.path(id)
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return primitives.ProgramConfig{}, fmt.Errorf("program %q: %w", id, os.ErrNotExist)
		}
		return primitives.ProgramConfig{}, fmt.Errorf("read %s: %w", fn, err)
	}
	cfg, err := DecodeProgram(data, s.format, fn)
	if err != nil {
		return primitives.ProgramConfig{}, err
	}
	if cfg.ID != id {
		return primitives.ProgramConfig{}, fmt.Errorf("%s: id %q does not match file name: %w", fn, cfg.ID, primitives.ErrInvalidConfig)
	}
	return cfg, nil
}

// List returns the stored program IDs in lexical order.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.dir, err)
	}
	ids := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() || filepath.Ext(e.Name()) != s.ext {
			return "", false
		}
		return strings.TrimSuffix(e.Name(), s.ext), true
	})
	sort.Strings(ids)
	return ids, nil
}
