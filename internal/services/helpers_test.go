package services

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/mindfulmoments/internal/logging"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
	"github.com/dmitrijs2005/mindfulmoments/internal/storage"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var errDiskFull = errors.New("disk full")

// fakeTable is an in-memory storage.Table with switchable failures.
type fakeTable[T any] struct {
	data    map[string]T
	loadErr error
	saveErr error

	loads int
	saves int
}

func newFakeTable[T any]() *fakeTable[T] {
	return &fakeTable[T]{data: map[string]T{}}
}

func (f *fakeTable[T]) Load(ctx context.Context) (map[string]T, error) {
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return maps.Clone(f.data), nil
}

func (f *fakeTable[T]) Save(ctx context.Context, data map[string]T) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = maps.Clone(data)
	return nil
}

func (f *fakeTable[T]) Location() string { return "fake" }

func testHasher(t *testing.T) *BcryptHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func newJSONCredentialStore(t *testing.T, dir string) *CredentialStore {
	t.Helper()
	table := storage.NewJSONFile[models.AccountRecord](filepath.Join(dir, "user_accounts.json"))
	s, err := NewCredentialStore(context.Background(), table, testHasher(t), logging.Nop())
	require.NoError(t, err)
	return s
}

func newJSONEntryStore(t *testing.T, dir string) *EntryStore {
	t.Helper()
	table := storage.NewJSONFile[[]models.JournalEntry](filepath.Join(dir, "journal_entries.json"))
	s, err := NewEntryStore(context.Background(), table, logging.Nop())
	require.NoError(t, err)
	return s
}
