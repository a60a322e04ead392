package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/mindfulmoments/internal/common"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
)

// Login asks for a username and password until they match an account or the
// user gives up. On success the account is bound to the entry store as the
// session user. Only input errors are returned; rejected credentials are not errors.
func (a *App) Login(ctx context.Context) error {
	a.println("Login with your account details to get started!")

	for {
		username, err := a.validInput("Enter your username:", usernameRule, false)
		if err != nil {
			return err
		}
		username = strings.ToLower(username)

		acc, err := a.creds.Get(username)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				a.println("User not found. Please try again.")
			} else {
				a.log.Error(ctx, "account lookup failed", "user", username, "error", err)
				a.println("Oops! There was a problem retrieving your account data.")
			}
			retry, err := a.retryPrompt()
			if err != nil || !retry {
				return err
			}
			continue
		}

		ok, err := a.checkPassword(ctx, acc)
		if err != nil || !ok {
			return err
		}

		a.entries.Bind(acc)
		a.log.Info(ctx, "user logged in", "user", acc.Username)
		a.println("Login Successful.")
		a.printf("Welcome back %s!\n", acc.Username)
		return nil
	}
}

func (a *App) checkPassword(ctx context.Context, acc *models.UserAccount) (bool, error) {
	for {
		password, err := a.read("Enter your password:", true)
		if err != nil {
			return false, err
		}

		ok, err := a.creds.Authenticate(acc, password)
		switch {
		case err != nil:
			a.log.Error(ctx, "password check failed", "user", acc.Username, "error", err)
			a.println("Oops! Your password could not be verified.")
		case ok:
			return true, nil
		default:
			a.log.Warn(ctx, "wrong password", "user", acc.Username)
			a.println("Login Unsuccessful. Incorrect password.")
		}

		retry, err := a.retryPrompt()
		if err != nil || !retry {
			return false, err
		}
	}
}

// Logout clears the session user.
func (a *App) Logout(ctx context.Context) {
	if u := a.user(); u != nil {
		a.log.Info(ctx, "user logged out", "user", u.Username)
	}
	a.entries.Unbind()
}

// CreateAccount walks the user through choosing a free username and a
// confirmed password, then registers the account.
func (a *App) CreateAccount(ctx context.Context) error {
	a.println("Let's get you setup with a new account to get started!")

	for {
		username, ok, err := a.chooseUsername()
		if err != nil || !ok {
			return err
		}
		password, ok, err := a.choosePassword()
		if err != nil || !ok {
			return err
		}

		_, err = a.creds.Register(ctx, username, password)
		if err == nil {
			a.println("Your user account is successfully created.")
			a.println("You can now Login from the main menu!")
			return nil
		}

		a.log.Error(ctx, "registration failed", "user", username, "error", err)
		if errors.Is(err, common.ErrAlreadyExists) {
			a.println("Sorry! That Username is already taken.")
		} else {
			a.println("There was a problem registering your account. Please try again.")
		}
		retry, err := a.retryPrompt()
		if err != nil || !retry {
			return err
		}
	}
}

func (a *App) chooseUsername() (string, bool, error) {
	for {
		username, err := a.validInput("Choose a Username:", usernameRule, false)
		if err != nil {
			return "", false, err
		}
		username = strings.ToLower(username)

		if !a.creds.Exists(username) {
			a.println("Yay! Username is available!")
			return username, true, nil
		}

		a.println("Sorry! That Username is already taken. Please choose a different username.")
		retry, err := a.retryPrompt()
		if err != nil || !retry {
			return "", false, err
		}
	}
}

func (a *App) choosePassword() (string, bool, error) {
	for {
		password, err := a.validInput("Choose a password:", passwordRule, true)
		if err != nil {
			return "", false, err
		}
		confirm, err := a.read("Confirm your password:", true)
		if err != nil {
			return "", false, err
		}

		if password == confirm {
			a.println("Passwords match and confirmed.")
			return password, true, nil
		}

		a.println("Passwords do not match.")
		retry, err := a.retryPrompt()
		if err != nil || !retry {
			return "", false, err
		}
	}
}
