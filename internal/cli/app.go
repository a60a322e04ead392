package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/mindfulmoments/internal/logging"
	"github.com/dmitrijs2005/mindfulmoments/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CredentialStore is the account surface the App needs.
type CredentialStore interface {
	Exists(username string) bool
	Get(username string) (*models.UserAccount, error)
	Register(ctx context.Context, username, password string) (*models.UserAccount, error)
	Authenticate(acc *models.UserAccount, password string) (bool, error)
}

// EntryStore is the journal surface the App needs.
type EntryStore interface {
	Bind(user *models.UserAccount)
	Unbind()
	Current() *models.UserAccount
	EntriesFor(ctx context.Context, username string) ([]models.JournalEntry, error)
	Append(ctx context.Context, username string, entry models.JournalEntry) (bool, error)
}

type App struct {
	creds   CredentialStore
	entries EntryStore

	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
	validate *validator.Validate

	now  func() time.Time
	pick func(n int) int
}

// NewApp wires the stores to the given terminal streams. Every App gets its
// own session id, attached to everything it logs.
func NewApp(creds CredentialStore, entries EntryStore, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		creds:    creds,
		entries:  entries,
		reader:   bufio.NewReader(in),
		out:      out,
		log:      log.With("session", uuid.NewString()),
		validate: newFieldValidator(),
		now:      time.Now,
		pick:     rand.IntN,
	}
}

// user is the session user held by the entry store, or nil.
func (a *App) user() *models.UserAccount {
	return a.entries.Current()
}

func (a *App) isLoggedIn() bool {
	return a.user() != nil
}

// Run shows the welcome menu until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "session started")
	defer a.log.Info(ctx, "session ended")

	a.printBanner("Welcome to Mindful Moments")
	a.println("Your Personal Reflection Journaling App!")

	err := a.welcome(ctx)
	if errors.Is(err, io.EOF) {
		a.println()
		a.println("Input closed. Goodbye!")
		return nil
	}
	return err
}

func (a *App) welcome(ctx context.Context) error {
	for {
		choice, err := a.menuChoice("MENU OPTIONS", welcomeMenu)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.println("You have chosen to Login")
			if err := a.Login(ctx); err != nil {
				return err
			}
			if a.isLoggedIn() {
				if err := a.runJournal(ctx); err != nil {
					return err
				}
			}
		case "2":
			a.println("You have chosen to Create a New User Account")
			if err := a.CreateAccount(ctx); err != nil {
				return err
			}
		case "3":
			a.println("Exiting App... Goodbye!")
			return nil
		}
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printBanner(title string) {
	a.println(separator)
	a.printf("  %s\n", title)
	a.println(separator)
}
