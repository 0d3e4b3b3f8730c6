// Package storage persists per-user preferences in a SQLite database.
// The only stored preference today is the interface language; absence of a
// row means the user has not chosen a language yet.
package storage
