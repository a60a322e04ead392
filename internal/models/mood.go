package models

import "fmt"

// Mood is the label stored in a journal entry's mood field.
type Mood string

const (
	MoodAwful Mood = "Awful"
	MoodSad   Mood = "Sad"
	MoodOkay  Mood = "Okay"
	MoodGood  Mood = "Good"
	MoodGreat Mood = "Great"
)

// Moods lists the mood levels in rating order: Moods[0] is rating 1.
var Moods = []Mood{MoodAwful, MoodSad, MoodOkay, MoodGood, MoodGreat}

// MoodFromRating resolves a 1..5 rating to its label.
func MoodFromRating(rating int) (Mood, error) {
	if rating < 1 || rating > len(Moods) {
		return "", fmt.Errorf("mood rating must be between 1 and %d, got %d", len(Moods), rating)
	}
	return Moods[rating-1], nil
}

// Rating is the inverse of MoodFromRating; unknown labels give 0.
func (m Mood) Rating() int {
	for i, v := range Moods {
		if v == m {
			return i + 1
		}
	}
	return 0
}

func (m Mood) Valid() bool {
	return m.Rating() != 0
}
