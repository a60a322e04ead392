// Package services holds the journal's two stores: the CredentialStore, which
// owns user accounts and password verification, and the EntryStore, which owns
// the per-user journal entries. Both keep their whole table in memory and
// write it back through a storage.Table after every mutation.
package services
