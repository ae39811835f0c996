package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// HighScoreBackend keeps one game's best score in the high_scores table. It
// satisfies hiscore.Backend, so a Keeper can use it in place of a save file.
type HighScoreBackend struct {
	store  *Store
	gameID string
}

// HighScores returns the shared high-score backend for gameID.
func (s *Store) HighScores(gameID string) *HighScoreBackend {
	return &HighScoreBackend{store: s, gameID: gameID}
}

// ReadScore returns 0 when nothing is stored.
func (b *HighScoreBackend) ReadScore() (int, error) {
	var score int
	err := b.store.db.QueryRow(`SELECT score FROM high_scores WHERE game_id = ?`, b.gameID).Scan(&score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: read high score of %s: %w", b.gameID, err)
	}
	return score, nil
}

// WriteScore stores score unless a higher one is already there. Several
// keepers share one row over SSH, and each only knows the best it loaded.
func (b *HighScoreBackend) WriteScore(score int) error {
	_, err := b.store.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (game_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score >= high_scores.score`,
		b.gameID, score, b.store.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("storage: write high score of %s: %w", b.gameID, err)
	}
	return nil
}
