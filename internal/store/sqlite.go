package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS credentials (
    name TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// apiKeyName is the credentials row holding the LLM API key.
const apiKeyName = "llm_api_key"

// CredentialStore retains the user's API credential across restarts. Quiz
// state itself is never persisted; this is the only durable piece of the
// session, and the pipeline works fine when it is empty (generation just
// reports that a credential is needed).
type CredentialStore struct {
	db *sql.DB
}

// NewCredentialStore opens (and if needed creates) the SQLite database at
// dbPath.
func NewCredentialStore(dbPath string) (*CredentialStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &CredentialStore{db: db}, nil
}

// SaveAPIKey stores or overwrites the API key.
func (c *CredentialStore) SaveAPIKey(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO credentials (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		apiKeyName, key)
	return err
}

// APIKey returns the stored API key, or "" with no error when none has
// been saved yet.
func (c *CredentialStore) APIKey(ctx context.Context) (string, error) {
	var value string
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE name = ?`, apiKeyName).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// DeleteAPIKey removes the stored API key.
func (c *CredentialStore) DeleteAPIKey(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE name = ?`, apiKeyName)
	return err
}

func (c *CredentialStore) Close() error {
	return c.db.Close()
}
