package cli

import "github.com/dmitrijs2005/mindfulmoments/internal/models"

var encouragementQuotes = map[models.Mood][]string{
	models.MoodAwful: {
		"It's okay to have rough days. You're doing your best.",
		"Even the strongest people have bad days. Tomorrow's a fresh start.",
		"Small steps forward count, even on rough days.",
		"Remember, it's okay to pause, take your time to breathe and reset.",
		"Hang in there, you're stronger than any moment of overwhelm.",
		"One deep breath at a time. You've got this.",
	},
	models.MoodSad: {
		"Feeling low is part of being human. Be kind to yourself.",
		"It's okay to pause and breathe. Keep going at your own pace.",
		"Sometimes slow progress is still progress.",
		"Sad days are just chapters, not the whole story. Remember, this feeling is temporary",
		"Allow yourself to feel, then gently move forward.",
		"This too shall pass. One step at a time. You've got this.",
	},
	models.MoodOkay: {
		"Sometimes showing up is the biggest win.",
		"Steady progress is still progress.",
		"Nothing wrong with a quiet day, take some time to recharge your batteries.",
		"You're building strength even on the slow days.",
		"A neutral day means you're ready to take on what's next.",
		"Keep going - your effort matters.",
	},
	models.MoodGood: {
		"Nice vibes today! Keep that energy flowing.",
		"Good days build momentum - ride the wave!",
		"Celebrate your wins, no matter the size.",
		"Your positive energy is contagious - keep it up!",
		"Keep shining, you're doing great!",
		"Let today's good feelings fuel tomorrow's success.",
	},
	models.MoodGreat: {
		"Wow, look at you! Keep smashing it!",
		"Your energy is on fire - enjoy the glow!",
		"Celebrate those wins - you earned them!",
		"Take a moment to soak in your awesomeness.",
		"Amazing days like this are proof of your hard work.",
		"Let this feeling inspire your next big move.",
	},
}

// quoteFor picks one of the quotes for mood using pick(n), which must return
// a value in [0, n).
func quoteFor(mood models.Mood, pick func(n int) int) string {
	quotes := encouragementQuotes[mood]
	if len(quotes) == 0 {
		return ""
	}
	return quotes[pick(len(quotes))]
}
