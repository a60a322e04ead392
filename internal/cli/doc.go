// Package cli implements the interactive, menu-driven front end of the
// journal.
//
// The App shows a welcome menu (login, create an account, exit). After a
// successful login it switches to the journal menu (create an entry, view
// past entries, logout). All prompts re-ask until the input passes the field
// rules, and every failure offers a retry-or-cancel choice. End of input
// ends the session the same way the Exit option does.
//
// Accounts and entries are handled by the stores passed to NewApp; this
// package never touches storage directly.
package cli
