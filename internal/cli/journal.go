package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
)

func (a *App) runJournal(ctx context.Context) error {
	a.printBanner("Welcome to your Journal")
	a.printf("Welcome back %s to your Journal\n", a.user().Username)

	for {
		choice, err := a.menuChoice("JOURNAL MENU", journalMenu)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.println("You have chosen to create a new Journal Entry")
			if err := a.CreateEntry(ctx); err != nil {
				return err
			}
		case "2":
			a.println("You have chosen to View Past Journal Entries")
			a.ViewEntries(ctx)
		case "3":
			a.printf("Thanks for using Mindful Moments. Goodbye and see you next time %s!\n", a.user().Username)
			a.Logout(ctx)
			return nil
		}
	}
}

func moodMenu() []menuItem {
	items := make([]menuItem, len(models.Moods))
	for i, m := range models.Moods {
		items[i] = menuItem{key: strconv.Itoa(i + 1), label: string(m)}
	}
	return items
}

func (a *App) chooseMood() (models.Mood, error) {
	a.println("How are you feeling today? Choose your Mood Rating: [1, 2, 3, 4 or 5]")
	choice, err := a.menuChoice("MOOD RATING", moodMenu())
	if err != nil {
		return "", err
	}
	rating, _ := strconv.Atoi(choice)
	mood, err := models.MoodFromRating(rating)
	if err != nil {
		return "", err
	}

	a.printf("You have rated your daily mood as: %s\n", mood)
	if q := quoteFor(mood, a.pick); q != "" {
		a.println(q)
	}
	return mood, nil
}

// CreateEntry collects a mood and the four reflections and appends them as a
// new entry for the session user.
func (a *App) CreateEntry(ctx context.Context) error {
	a.println("Starting new journal entry")
	a.println("Take a moment to reflect on your day... (Daily Mood, Wins, Challenges, Gratitude and Goal for tomorrow)")

	mood, err := a.chooseMood()
	if err != nil {
		return err
	}

	prompts := []struct {
		prompt string
		field  string
	}{
		{"What went well today?", "Wins"},
		{"What were the challenges you faced today?", "Challenges"},
		{"What are you grateful for today?", "Gratitude"},
		{"What is your goal for tomorrow?", "Goal"},
	}
	answers := make([]string, len(prompts))
	for i, p := range prompts {
		answers[i], err = a.validInput(p.prompt, textRule(p.field), false)
		if err != nil {
			return err
		}
	}

	username := ""
	if u := a.user(); u != nil {
		username = u.Username
	}
	entry := models.NewJournalEntry(username, mood, answers[0], answers[1], answers[2], answers[3], a.now())

	ok, err := a.entries.Append(ctx, username, entry)
	switch {
	case errors.Is(err, common.ErrNoSession):
		a.println("No user is currently logged in.")
	case err != nil:
		a.log.Error(ctx, "journal entry rejected", "user", username, "error", err)
		a.println("Sorry! There was an error during creating your journal entry.")
	case !ok:
		a.println("Sorry! There was a problem saving your entry.")
	default:
		a.println("Your journal entry was saved successfully.")
	}
	return nil
}

// ViewEntries prints every entry of the session user, oldest first.
func (a *App) ViewEntries(ctx context.Context) {
	username := ""
	if u := a.user(); u != nil {
		username = u.Username
	}

	list, err := a.entries.EntriesFor(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			a.println("No user is currently logged in.")
			return
		}
		a.log.Error(ctx, "listing journal entries failed", "user", username, "error", err)
		a.println("Sorry! Your journal entries could not be loaded.")
		return
	}
	if len(list) == 0 {
		a.println("Sorry! No journal entries found.")
		return
	}

	for _, e := range list {
		a.printEntry(e)
	}
}

func (a *App) printEntry(e models.JournalEntry) {
	a.println("Mindful Moments Reflections")
	a.println(separator)
	a.printf("%-26s %s\n", "Journal Entry created on", e.DisplayTime())
	a.printf("%-26s %s\n", "Mood Rating", e.Mood)
	a.printf("%-26s %s\n", "Wins of the day", e.Wins)
	a.printf("%-26s %s\n", "Challenges of the day", e.Challenges)
	a.printf("%-26s %s\n", "Gratitude of the day", e.Gratitude)
	a.printf("%-26s %s\n", "Goal for tomorrow", e.Goals)
	a.println(separator)
	a.println()
}
