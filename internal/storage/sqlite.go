package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/dmitrijs2005/mindfulmoments/internal/dbx"
	"github.com/dmitrijs2005/mindfulmoments/internal/filex"
	"github.com/dmitrijs2005/mindfulmoments/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Namespaces used by the journal inside the records table.
const (
	NamespaceUsers   = "users"
	NamespaceEntries = "entries"
)

// OpenSQLite opens (creating if needed) the database at path and applies the
// embedded migrations. The pool is limited to one connection.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// SQLiteTable stores a table as the rows of one namespace of the records
// table, each value JSON-encoded.
type SQLiteTable[T any] struct {
	db        *sql.DB
	namespace string
}

var _ Table[int] = (*SQLiteTable[int])(nil)

func NewSQLiteTable[T any](db *sql.DB, namespace string) *SQLiteTable[T] {
	return &SQLiteTable[T]{db: db, namespace: namespace}
}

func (s *SQLiteTable[T]) Location() string {
	return "sqlite:" + s.namespace
}

// Load reads every row of the namespace. A value that is not valid JSON for
// T yields common.ErrCorrupted.
func (s *SQLiteTable[T]) Load(ctx context.Context) (map[string]T, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM records WHERE namespace = ? ORDER BY key`, s.namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: select %s: %w", common.ErrLoad, s.namespace, err)
	}
	defer rows.Close()

	table := map[string]T{}
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", common.ErrLoad, s.namespace, err)
		}
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("%w: %s[%s]: %w", common.ErrCorrupted, s.namespace, key, err)
		}
		table[key] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate %s: %w", common.ErrLoad, s.namespace, err)
	}
	return table, nil
}

// Save replaces the namespace with data inside one transaction.
func (s *SQLiteTable[T]) Save(ctx context.Context, data map[string]T) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE namespace = ?`, s.namespace); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		for _, k := range keys {
			raw, err := json.Marshal(data[k])
			if err != nil {
				return fmt.Errorf("encode %s: %w", k, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO records (namespace, key, value) VALUES (?, ?, ?)`,
				s.namespace, k, string(raw)); err != nil {
				return fmt.Errorf("insert %s: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrSave, s.namespace, err)
	}
	return nil
}
