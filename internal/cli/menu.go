package cli

import (
	"strings"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
)

const separator = "============================================================"

type menuItem struct {
	key   string
	label string
}

var welcomeMenu = []menuItem{
	{"1", "Login (Existing Users)"},
	{"2", "Create an Account (New Users)"},
	{"3", "Exit App"},
}

var journalMenu = []menuItem{
	{"1", "Create a Journal Entry"},
	{"2", "View Past Journal Entries"},
	{"3", "Logout"},
}

func (a *App) showMenu(title string, items []menuItem) {
	a.println(separator)
	a.println(title + ":")
	a.println(separator)
	for _, it := range items {
		a.printf("%s. %s\n", it.key, it.label)
	}
}

// menuChoice shows the menu and asks until one of its keys is entered.
func (a *App) menuChoice(title string, items []menuItem) (string, error) {
	a.showMenu(title, items)
	for {
		choice, err := GetSimpleText(a.reader, "Choose a menu option. Enter a number:", a.out)
		if err != nil {
			return "", err
		}
		for _, it := range items {
			if it.key == choice {
				return choice, nil
			}
		}
		a.println("You have entered an Invalid option. Please try again.")
	}
}

// retryPrompt asks a y/n question and reports whether the user wants to retry.
func (a *App) retryPrompt() (bool, error) {
	for {
		answer, err := GetSimpleText(a.reader, "Would you like to try again? [y/n]:", a.out)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		a.println("Invalid input. Please enter [y/n]")
	}
}

// validInput asks until the answer passes rule. hidden reads it as a password.
func (a *App) validInput(prompt string, rule fieldRule, hidden bool) (string, error) {
	for {
		value, err := a.read(prompt, hidden)
		if err != nil {
			return "", err
		}
		if err := rule.check(a.validate, value); err != nil {
			a.printf("%s. Please try again!\n", err)
			continue
		}
		return value, nil
	}
}

func (a *App) read(prompt string, hidden bool) (string, error) {
	if !hidden {
		return GetSimpleText(a.reader, prompt, a.out)
	}
	pw, err := GetPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}
