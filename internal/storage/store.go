package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/spotymate/spotymate-bot/internal/constants"
)

//go:generate $MOCKGEN -source=store.go -destination=mocks/store_mock.go

// ErrEmptyDatabasePath is returned when the store is created without a database path.
var ErrEmptyDatabasePath = errors.New("database path is empty")

const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id  INTEGER PRIMARY KEY,
    language TEXT NOT NULL
);`

// Store reads and writes per-user preferences.
type Store interface {
	// GetLanguage returns the stored language tag for the user.
	// The boolean result is false when the user has no stored preference.
	GetLanguage(ctx context.Context, userID int64) (string, bool, error)
	// SetLanguage stores the language tag for the user, replacing any previous value.
	SetLanguage(ctx context.Context, userID int64, language string) error
	// Close releases the underlying database handle.
	Close() error
}

// StoreImpl implements Store on top of a SQLite database file.
type StoreImpl struct {
	db *sql.DB
}

var _ Store = (*StoreImpl)(nil)

// NewStore opens (creating if necessary) the SQLite database at databasePath
// and ensures the schema exists. The parent directory is created when missing.
func NewStore(ctx context.Context, databasePath string) (*StoreImpl, error) {
	if databasePath == "" {
		return nil, ErrEmptyDatabasePath
	}

	if err := os.MkdirAll(filepath.Dir(databasePath), constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &StoreImpl{db: db}, nil
}

// GetLanguage returns the stored language tag for the user.
func (s *StoreImpl) GetLanguage(ctx context.Context, userID int64) (string, bool, error) {
	var language string

	err := s.db.QueryRowContext(ctx,
		"SELECT language FROM users WHERE user_id = ?", userID).Scan(&language)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read user language: %w", err)
	}

	return language, true, nil
}

// SetLanguage stores the language tag for the user, replacing any previous value.
func (s *StoreImpl) SetLanguage(ctx context.Context, userID int64, language string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, language) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET language = excluded.language`,
		userID, language)
	if err != nil {
		return fmt.Errorf("failed to store user language: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *StoreImpl) Close() error {
	return s.db.Close()
}
