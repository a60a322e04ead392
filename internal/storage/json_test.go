package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	items, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name())
	}
	return names
}

func TestJSONFile_Load_MissingFileCreatesEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_storage", "user_accounts.json")
	f := NewJSONFile[models.AccountRecord](path)

	got, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "a fresh file must be created")
	assert.JSONEq(t, `{}`, string(data))
}

func TestJSONFile_Load_EmptyContent(t *testing.T) {
	for name, content := range map[string]string{
		"zero bytes": "",
		"whitespace": " \n\t\n",
		"json null":  "null",
		"empty obj":  "{}",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "t.json")
			writeFile(t, path, content)

			got, err := NewJSONFile[models.AccountRecord](path).Load(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestJSONFile_Load_CorruptedContent(t *testing.T) {
	for name, content := range map[string]string{
		"truncated":   `{"alice01": {"hashed_password": "$2a`,
		"not json":    `this is not json`,
		"wrong shape": `[1, 2, 3]`,
		"bad value":   `{"alice01": 42}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "t.json")
			writeFile(t, path, content)

			got, err := NewJSONFile[models.AccountRecord](path).Load(context.Background())
			require.ErrorIs(t, err, common.ErrCorrupted)
			assert.NotErrorIs(t, err, common.ErrLoad)
			assert.Nil(t, got)

			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, content, string(data), "corrupt file must be left untouched")
		})
	}
}

func TestJSONFile_Load_ReadErrorIsNotCorruption(t *testing.T) {
	dir := t.TempDir()

	_, err := NewJSONFile[models.AccountRecord](dir).Load(context.Background())
	require.ErrorIs(t, err, common.ErrLoad)
	assert.NotErrorIs(t, err, common.ErrCorrupted)
}

func TestJSONFile_SaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal_entries.json")
	f := NewJSONFile[[]models.JournalEntry](path)
	ctx := context.Background()

	table := map[string][]models.JournalEntry{
		"alice01": {
			{Timestamp: "2025-01-01T08:00:00Z", Mood: models.MoodGood, Wins: "w1", Challenges: "c1", Gratitude: "g1", Goals: "o1"},
			{Timestamp: "2025-01-02T08:00:00Z", Mood: models.MoodSad, Wins: "w2", Challenges: "c2", Gratitude: "g2", Goals: "o2"},
		},
		"bob02": {},
	}
	require.NoError(t, f.Save(ctx, table))

	got, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, table, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp": "2025-01-01T08:00:00Z"`)
	assert.Equal(t, []string{"journal_entries.json"}, listDir(t, dir), "no temp files may be left behind")

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), fi.Mode().Perm())
}

func TestJSONFile_Save_NilTableWritesEmptyObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.json")
	require.NoError(t, NewJSONFile[models.AccountRecord](path).Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestJSONFile_Save_OverwritesWholeTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.json")
	f := NewJSONFile[models.AccountRecord](path)
	ctx := context.Background()

	require.NoError(t, f.Save(ctx, map[string]models.AccountRecord{"alice01": {HashedPassword: "h1"}}))
	require.NoError(t, f.Save(ctx, map[string]models.AccountRecord{"bob02": {HashedPassword: "h2"}}))

	got, err := f.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.AccountRecord{"bob02": {HashedPassword: "h2"}}, got)
}

func TestJSONFile_Save_FailureKeepsPreviousContent(t *testing.T) {
	dir := t.TempDir()
	// a non-empty directory at the target path makes the final rename fail
	target := filepath.Join(dir, "user_accounts.json")
	require.NoError(t, os.Mkdir(target, 0o700))
	writeFile(t, filepath.Join(target, "keep"), "previous")

	err := NewJSONFile[models.AccountRecord](target).Save(context.Background(),
		map[string]models.AccountRecord{"alice01": {HashedPassword: "h"}})
	require.ErrorIs(t, err, common.ErrSave)

	data, readErr := os.ReadFile(filepath.Join(target, "keep"))
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(data))

	for _, name := range listDir(t, dir) {
		assert.False(t, strings.HasSuffix(name, ".tmp"), "temp file %s left behind", name)
	}
}

func TestJSONFile_Save_UnwritableParent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	writeFile(t, blocker, "x")

	err := NewJSONFile[models.AccountRecord](filepath.Join(blocker, "t.json")).Save(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrSave)
}

func TestJSONFile_Location(t *testing.T) {
	assert.Equal(t, "/tmp/x.json", NewJSONFile[int]("/tmp/x.json").Location())
}
