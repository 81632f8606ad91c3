package session

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const tokenName = "access_token"

// CredentialStore is the persistent client-local key-value store for the
// session token. It survives restarts until an explicit Clear.
type CredentialStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SQLiteStore keeps credentials in a small local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "learnsmart.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS credentials (
		name TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at_unix INTEGER NOT NULL
	);`)
	return err
}

// Token returns the stored token, or "" when none is stored.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE name = ?`, tokenName,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (name, value, updated_at_unix) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at_unix = excluded.updated_at_unix`,
		tokenName, token, time.Now().Unix(),
	)
	return err
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE name = ?`, tokenName,
	)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
