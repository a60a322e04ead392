package models

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout new entries are stamped with.
const TimestampLayout = time.RFC3339Nano

// timestampLayouts are tried in order when a stored timestamp is parsed.
// The zone-less forms cover files written by older versions of the app.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// JournalEntry is one reflection. Entries are append-only: once saved they
// are never edited.
//
// Timestamp is kept as the stored ISO-8601 string so that re-hydrating an
// entry from disk preserves it byte for byte.
type JournalEntry struct {
	Owner      string `json:"-"`
	Timestamp  string `json:"timestamp" validate:"required,timestamp"`
	Mood       Mood   `json:"mood" validate:"required,mood"`
	Wins       string `json:"wins" validate:"required,notblank,max=200"`
	Challenges string `json:"challenges" validate:"required,notblank,max=200"`
	Gratitude  string `json:"gratitude" validate:"required,notblank,max=200"`
	Goals      string `json:"goals" validate:"required,notblank,max=200"`
}

// NewJournalEntry builds an entry for owner stamped with now.
func NewJournalEntry(owner string, mood Mood, wins, challenges, gratitude, goals string, now time.Time) JournalEntry {
	return JournalEntry{
		Owner:      owner,
		Timestamp:  now.Format(TimestampLayout),
		Mood:       mood,
		Wins:       wins,
		Challenges: challenges,
		Gratitude:  gratitude,
		Goals:      goals,
	}
}

// ParseTimestamp parses an ISO-8601 entry timestamp. Zone-less values are
// read as local time.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// CreatedAt parses the stored timestamp.
func (e JournalEntry) CreatedAt() (time.Time, error) {
	return ParseTimestamp(e.Timestamp)
}

// DisplayTime formats the timestamp as dd-mm-yyyy HH:MM, falling back to the
// raw stored value when it cannot be parsed.
func (e JournalEntry) DisplayTime() string {
	t, err := e.CreatedAt()
	if err != nil {
		return e.Timestamp
	}
	return t.Format("02-01-2006 15:04")
}
