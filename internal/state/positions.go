package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/pagescroll/internal/db"
)

// Position is the last fragment shown for a deck file.
type Position struct {
	DeckPath  string
	Fragment  string
	UpdatedAt time.Time
}

func getPosition(db *sql.DB, deckPath string) (*Position, error) {
	row := db.QueryRow(`
		SELECT fragment, updated_at FROM deck_positions WHERE deck_path = ?
	`, deckPath)

	p := Position{DeckPath: deckPath}
	var updatedAt int64
	err := row.Scan(&p.Fragment, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved position is valid on first open
	}
	if err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Unix(updatedAt, 0)
	return &p, nil
}

func savePositions(db *sql.DB, positions map[string]Position) error {
	if len(positions) == 0 {
		return nil
	}
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		for _, p := range positions {
			_, err := tx.Exec(`
				INSERT INTO deck_positions (deck_path, fragment, updated_at)
				VALUES (?, ?, ?)
				ON CONFLICT(deck_path) DO UPDATE SET
					fragment = excluded.fragment,
					updated_at = excluded.updated_at
			`, p.DeckPath, p.Fragment, p.UpdatedAt.Unix())
			if err != nil {
				return err
			}
		}
		return nil
	})
}
