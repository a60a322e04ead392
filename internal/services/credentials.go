package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/dmitrijs2005/mindfulmoments/internal/logging"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
	"github.com/dmitrijs2005/mindfulmoments/internal/storage"
)

// CredentialStore owns the username -> password hash table.
//
// Lookups are served from memory. Every mutation rewrites the whole table
// through the backing storage.Table and then reloads it, so memory always
// mirrors what is on disk after a successful write. Usernames are matched
// exactly; callers normalise them beforehand.
type CredentialStore struct {
	table  storage.Table[models.AccountRecord]
	hasher PasswordHasher
	log    logging.Logger

	accounts map[string]models.AccountRecord
}

// NewCredentialStore loads the credential table. A corrupted or unreadable
// table is returned as an error rather than treated as empty.
func NewCredentialStore(ctx context.Context, table storage.Table[models.AccountRecord], hasher PasswordHasher, log logging.Logger) (*CredentialStore, error) {
	accounts, err := table.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if accounts == nil {
		accounts = map[string]models.AccountRecord{}
	}
	return &CredentialStore{
		table:    table,
		hasher:   hasher,
		log:      log.With("table", table.Location()),
		accounts: accounts,
	}, nil
}

func (s *CredentialStore) Exists(username string) bool {
	_, ok := s.accounts[username]
	return ok
}

// Get returns the account for username or common.ErrNotFound.
func (s *CredentialStore) Get(username string) (*models.UserAccount, error) {
	rec, ok := s.accounts[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}
	return models.AccountFromRecord(username, rec), nil
}

// Register creates a new account. An existing username is never overwritten.
func (s *CredentialStore) Register(ctx context.Context, username, password string) (*models.UserAccount, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}
	if s.Exists(username) {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrAlreadyExists)
	}

	hash, err := s.Hash(password)
	if err != nil {
		return nil, err
	}

	acc := &models.UserAccount{Username: username, PasswordHash: hash}
	if !s.Add(ctx, acc) {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrAddFailed)
	}

	s.log.Info(ctx, "account registered", "user", username)
	return acc, nil
}

// Add inserts or replaces acc, persists the table and reloads it. It reports
// false when the write or the reload fails; the cause is logged and the
// in-memory table is left as it was before the call.
func (s *CredentialStore) Add(ctx context.Context, acc *models.UserAccount) bool {
	if acc == nil || acc.Username == "" {
		s.log.Error(ctx, "refusing to add account without username")
		return false
	}

	prev, existed := s.accounts[acc.Username]
	s.accounts[acc.Username] = acc.Record()

	rollback := func() {
		if existed {
			s.accounts[acc.Username] = prev
		} else {
			delete(s.accounts, acc.Username)
		}
	}

	if err := s.table.Save(ctx, s.accounts); err != nil {
		rollback()
		s.log.Error(ctx, "failed to save credentials", "user", acc.Username, "error", err)
		return false
	}
	s.log.Debug(ctx, "credentials saved", "user", acc.Username)

	reloaded, err := s.table.Load(ctx)
	if err != nil {
		rollback()
		s.log.Error(ctx, "failed to reload credentials after save", "user", acc.Username, "error", err)
		return false
	}
	if reloaded == nil {
		reloaded = map[string]models.AccountRecord{}
	}
	s.accounts = reloaded

	if !s.Exists(acc.Username) {
		s.log.Error(ctx, "account missing after save", "user", acc.Username)
		return false
	}
	return true
}

// Authenticate checks password against acc. A wrong password yields false
// with a nil error.
func (s *CredentialStore) Authenticate(acc *models.UserAccount, password string) (bool, error) {
	if acc == nil {
		return false, fmt.Errorf("authenticate: %w", common.ErrNotFound)
	}
	return s.hasher.Compare(acc.PasswordHash, password)
}

// Hash returns a salted hash of password.
func (s *CredentialStore) Hash(password string) (string, error) {
	return s.hasher.Hash(password)
}
