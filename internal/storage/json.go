package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/dmitrijs2005/mindfulmoments/internal/filex"
)

const filePerm = 0o600

// JSONFile stores a table as one JSON object in the file at path.
type JSONFile[T any] struct {
	path string
}

var _ Table[int] = (*JSONFile[int])(nil)

// NewJSONFile returns a table backed by the JSON file at path. The file is
// not touched until the first Load or Save.
func NewJSONFile[T any](path string) *JSONFile[T] {
	return &JSONFile[T]{path: path}
}

func (f *JSONFile[T]) Location() string {
	return f.path
}

// Load reads the file. A missing file yields an empty table and a fresh "{}"
// file is written in its place; an empty file yields an empty table; content
// that is not a JSON object of T values yields common.ErrCorrupted.
func (f *JSONFile[T]) Load(ctx context.Context) (map[string]T, error) {
	data, err := f.read()
	if errors.Is(err, fs.ErrNotExist) {
		empty := map[string]T{}
		if err := f.Save(ctx, empty); err != nil {
			return nil, fmt.Errorf("%w: create %s: %w", common.ErrLoad, f.path, err)
		}
		return empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", common.ErrLoad, f.path, err)
	}

	table := map[string]T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return table, nil
	}
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrCorrupted, f.path, err)
	}
	if table == nil {
		// the file held a JSON null
		table = map[string]T{}
	}
	return table, nil
}

func (f *JSONFile[T]) read() ([]byte, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// Save writes data to a temporary file next to the target and renames it
// over the target, so a failed Save leaves the previous content in place.
func (f *JSONFile[T]) Save(ctx context.Context, data map[string]T) error {
	if data == nil {
		data = map[string]T{}
	}
	payload, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", common.ErrSave, f.path, err)
	}
	if err := f.writeAtomic(payload); err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrSave, f.path, err)
	}
	return nil
}

func (f *JSONFile[T]) writeAtomic(payload []byte) (err error) {
	if err := filex.EnsureParentDir(f.path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(payload); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
