// Package store persists the single resumable game snapshot in a local
// SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"

	"minesweeper/internal/game"
)

// SaveName keys the one resumable snapshot; there is never more than a
// single saved game.
const SaveName = "current"

// ErrNoSave is returned by Load when nothing has been saved.
var ErrNoSave = errors.New("no saved game")

// GameStore defines the interface for snapshot persistence.
type GameStore interface {
	Load(ctx context.Context) (*game.Snapshot, error)
	Save(ctx context.Context, snap *game.Snapshot) error
	Delete(ctx context.Context) error
	Close() error
}

type sqliteStore struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	name     TEXT PRIMARY KEY,
	game_id  TEXT NOT NULL,
	state    TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
);`

// Open opens (creating if needed) the save database at path.
func Open(path string) (GameStore, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open save database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create saves table: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

type saveRow struct {
	Name    string    `db:"name"`
	GameID  string    `db:"game_id"`
	State   string    `db:"state"`
	SavedAt time.Time `db:"saved_at"`
}

// Load retrieves the saved snapshot, or ErrNoSave when there is none.
func (s *sqliteStore) Load(ctx context.Context) (*game.Snapshot, error) {
	var row saveRow
	err := s.db.GetContext(ctx, &row,
		"SELECT name, game_id, state, saved_at FROM saves WHERE name = ?", SaveName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}

	var snap game.Snapshot
	if err := json.Unmarshal([]byte(row.State), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode save for game %s: %w", row.GameID, err)
	}
	return &snap, nil
}

// Save upserts the snapshot under the fixed save name.
func (s *sqliteStore) Save(ctx context.Context, snap *game.Snapshot) error {
	state, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saves (name, game_id, state, saved_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET game_id = excluded.game_id,
			state = excluded.state, saved_at = excluded.saved_at`,
		SaveName, snap.ID, string(state), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

// Delete removes the snapshot. Deleting when nothing is saved is fine;
// it is called on every terminal game.
func (s *sqliteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM saves WHERE name = ?", SaveName); err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
