package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_RecordRoundTrip(t *testing.T) {
	acc := UserAccount{Username: "alice01", PasswordHash: "$2a$12$abc"}

	b, err := json.Marshal(acc.Record())
	require.NoError(t, err)
	assert.JSONEq(t, `{"hashed_password":"$2a$12$abc"}`, string(b))

	var rec AccountRecord
	require.NoError(t, json.Unmarshal(b, &rec))
	assert.Equal(t, &acc, AccountFromRecord("alice01", rec))
	assert.Equal(t, "alice01", acc.String())
}

func TestMoodFromRating(t *testing.T) {
	tests := []struct {
		rating  int
		want    Mood
		wantErr bool
	}{
		{rating: 1, want: MoodAwful},
		{rating: 2, want: MoodSad},
		{rating: 3, want: MoodOkay},
		{rating: 4, want: MoodGood},
		{rating: 5, want: MoodGreat},
		{rating: 0, wantErr: true},
		{rating: 6, wantErr: true},
	}
	for _, tt := range tests {
		got, err := MoodFromRating(tt.rating)
		if tt.wantErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.rating, got.Rating())
		assert.True(t, got.Valid())
	}
	assert.False(t, Mood("Meh").Valid())
}

func TestJournalEntry_SerializedShape(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	e := NewJournalEntry("alice01", MoodGood, "shipped feature", "none", "team", "ship more", now)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"timestamp": "2025-03-14T09:26:53Z",
		"mood": "Good",
		"wins": "shipped feature",
		"challenges": "none",
		"gratitude": "team",
		"goals": "ship more"
	}`, string(b))
}

func TestJournalEntry_RehydrationKeepsTimestamp(t *testing.T) {
	raw := `{"timestamp":"2024-11-02T21:05:11.482913","mood":"Okay","wins":"a walk","challenges":"rain","gratitude":"tea","goals":"sleep early"}`

	var e JournalEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	assert.Equal(t, "2024-11-02T21:05:11.482913", e.Timestamp)

	got, err := e.CreatedAt()
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, "02-11-2024 21:05", e.DisplayTime())
}

func TestJournalEntry_DisplayTimeFallsBackToRaw(t *testing.T) {
	e := JournalEntry{Timestamp: "yesterday"}
	_, err := e.CreatedAt()
	require.Error(t, err)
	assert.Equal(t, "yesterday", e.DisplayTime())
}
