// Package models defines the journal's record types and their serialized
// forms: user accounts, journal entries and the closed set of mood levels.
package models
