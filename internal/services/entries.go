package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/dmitrijs2005/mindfulmoments/internal/logging"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
	"github.com/dmitrijs2005/mindfulmoments/internal/storage"
	"github.com/go-playground/validator/v10"
)

// EntryStore owns the journal entries, partitioned by owning username.
//
// Entry operations require a bound session user (see Bind) and only reach
// that user's partition. Entries are append-only and kept in insertion order.
type EntryStore struct {
	table    storage.Table[[]models.JournalEntry]
	log      logging.Logger
	validate *validator.Validate

	entries map[string][]models.JournalEntry
	current *models.UserAccount
}

// NewEntryStore loads the entry table.
func NewEntryStore(ctx context.Context, table storage.Table[[]models.JournalEntry], log logging.Logger) (*EntryStore, error) {
	entries, err := table.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load journal entries: %w", err)
	}
	if entries == nil {
		entries = map[string][]models.JournalEntry{}
	}
	return &EntryStore{
		table:    table,
		log:      log.With("table", table.Location()),
		validate: newEntryValidator(),
		entries:  entries,
	}, nil
}

func newEntryValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return models.Mood(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("timestamp", func(fl validator.FieldLevel) bool {
		_, err := models.ParseTimestamp(fl.Field().String())
		return err == nil
	})
	return v
}

// Bind makes user the session user.
func (s *EntryStore) Bind(user *models.UserAccount) {
	s.current = user
}

func (s *EntryStore) Unbind() {
	s.current = nil
}

// Current returns the session user, or nil.
func (s *EntryStore) Current() *models.UserAccount {
	return s.current
}

func (s *EntryStore) requireSession(op string) error {
	if s.current == nil {
		return fmt.Errorf("%s: %w", op, common.ErrNoSession)
	}
	return nil
}

// EntriesFor returns a copy of username's entries in insertion order, or an
// empty slice when there are none. Only the session user's entries can be
// read; any other username is reported as not found.
func (s *EntryStore) EntriesFor(ctx context.Context, username string) ([]models.JournalEntry, error) {
	if err := s.requireSession("list entries"); err != nil {
		return nil, err
	}
	if username != s.current.Username {
		return nil, fmt.Errorf("list entries for %q: %w", username, common.ErrNotFound)
	}

	stored := s.entries[username]
	out := make([]models.JournalEntry, len(stored))
	for i, e := range stored {
		e.Owner = username
		out[i] = e
	}
	return out, nil
}

// Append adds entry to username's list and persists the whole table. Invalid
// entries and a missing session are reported as errors, as is a username
// other than the session user's. A failed write is reported as false with the
// in-memory list rolled back.
func (s *EntryStore) Append(ctx context.Context, username string, entry models.JournalEntry) (bool, error) {
	if err := s.requireSession("append entry"); err != nil {
		return false, err
	}
	if username == "" {
		return false, fmt.Errorf("%w: entry owner is required", common.ErrValidation)
	}
	if username != s.current.Username {
		return false, fmt.Errorf("append entry for %q: %w", username, common.ErrNoSession)
	}
	if err := s.validate.Struct(entry); err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	entry.Owner = username
	prev, existed := s.entries[username]
	s.entries[username] = append(slices.Clip(prev), entry)

	rollback := func() {
		if existed {
			s.entries[username] = prev
		} else {
			delete(s.entries, username)
		}
	}

	if err := s.table.Save(ctx, s.entries); err != nil {
		rollback()
		s.log.Error(ctx, "failed to save journal entry", "user", username, "error", err)
		return false, nil
	}
	s.log.Debug(ctx, "journal entry saved", "user", username, "count", len(s.entries[username]))

	reloaded, err := s.table.Load(ctx)
	if err != nil {
		rollback()
		s.log.Error(ctx, "failed to reload journal entries after save", "user", username, "error", err)
		return false, nil
	}
	if reloaded == nil {
		reloaded = map[string][]models.JournalEntry{}
	}
	s.entries = reloaded
	return true, nil
}
