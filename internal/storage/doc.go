// Package storage is the journal's persistence adapter.
//
// A Table holds one keyed collection (credentials or entries) and only ever
// moves it whole: Load reads the complete table, Save replaces it. There are
// no partial updates and no cross-process locking; the last Save wins.
//
// Two implementations share that contract:
//
//   - JSONFile: a single indented JSON object on disk, replaced atomically
//     (temp file + rename) on every Save.
//   - SQLiteTable: one namespace of the records table in a local SQLite
//     database, replaced inside a single transaction on every Save.
//
// Failure kinds are reported with the sentinels from internal/common:
// ErrCorrupted for content that cannot be decoded, ErrLoad and ErrSave for
// I/O failures.
package storage
