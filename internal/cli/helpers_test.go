package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/mindfulmoments/internal/logging"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
	"github.com/dmitrijs2005/mindfulmoments/internal/services"
	"github.com/dmitrijs2005/mindfulmoments/internal/storage"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

// stubNoTerminal makes GetPassword read from the line reader.
func stubNoTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

type testEnv struct {
	app     *App
	out     *bytes.Buffer
	creds   *services.CredentialStore
	entries *services.EntryStore
}

func newStores(t *testing.T) (*services.CredentialStore, *services.EntryStore) {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	hasher, err := services.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	creds, err := services.NewCredentialStore(ctx,
		storage.NewJSONFile[models.AccountRecord](filepath.Join(dir, "user_accounts.json")), hasher, logging.Nop())
	require.NoError(t, err)

	entries, err := services.NewEntryStore(ctx,
		storage.NewJSONFile[[]models.JournalEntry](filepath.Join(dir, "journal_entries.json")), logging.Nop())
	require.NoError(t, err)

	return creds, entries
}

// newTestEnv builds an App reading the given lines as user input.
func newTestEnv(t *testing.T, lines ...string) *testEnv {
	t.Helper()
	stubNoTerminal(t)

	creds, entries := newStores(t)
	return newTestEnvWith(t, creds, entries, lines...)
}

func newTestEnvWith(t *testing.T, creds CredentialStore, entries EntryStore, lines ...string) *testEnv {
	t.Helper()
	stubNoTerminal(t)

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}
	out := &bytes.Buffer{}

	app := NewApp(creds, entries, logging.Nop(), strings.NewReader(input), out)
	app.now = func() time.Time { return fixedNow }
	app.pick = func(int) int { return 0 }

	env := &testEnv{app: app, out: out}
	env.creds, _ = creds.(*services.CredentialStore)
	env.entries, _ = entries.(*services.EntryStore)
	return env
}

func register(t *testing.T, creds *services.CredentialStore, username, password string) {
	t.Helper()
	_, err := creds.Register(context.Background(), username, password)
	require.NoError(t, err)
}
