package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome says how a run ended.
type Outcome string

const (
	OutcomeWin  Outcome = "win"  // grid cleared
	OutcomeLose Outcome = "lose" // no lives left
	OutcomeQuit Outcome = "quit" // abandoned mid-game
)

type Run struct {
	ID        int64
	RunID     string // uuid
	GameID    string
	Score     int
	Outcome   Outcome
	Duration  time.Duration
	CreatedAt time.Time
}

// SaveRun stores a run and returns its uuid. Durations keep whole seconds.
func (s *Store) SaveRun(gameID string, score int, outcome Outcome, d time.Duration) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, score, outcome, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, gameID, score, string(outcome), int64(d/time.Second), s.now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: save run: %w", err)
	}
	return id, nil
}

const selectRuns = `SELECT id, run_id, game_id, score, outcome, duration_secs, created_at FROM runs `

// TopRuns lists the best runs of a game, earliest first among equal scores.
// limit <= 0 means 10.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.runs(selectRuns+`WHERE game_id = ? ORDER BY score DESC, id LIMIT ?`, gameID, limit)
}

// RecentRuns lists the newest runs of every game. limit <= 0 means 20.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.runs(selectRuns+`ORDER BY id DESC LIMIT ?`, limit)
}

// RunByID returns nil, nil when no run has that uuid.
func (s *Store) RunByID(runID string) (*Run, error) {
	found, err := s.runs(selectRuns+`WHERE run_id = ?`, runID)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}

func (s *Store) runs(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r        Run
			secs, at int64
			outcome  string
		)
		if err := rows.Scan(&r.ID, &r.RunID, &r.GameID, &r.Score, &outcome, &secs, &at); err != nil {
			return nil, fmt.Errorf("storage: scan run: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Duration = time.Duration(secs) * time.Second
		r.CreatedAt = time.Unix(at, 0)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: query runs: %w", err)
	}
	return out, nil
}

// HighScore is the best run score of a game, 0 without runs. The shared
// high score table is separate; see HighScores.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM runs WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearRuns forgets every run and the stored high score of a game.
func (s *Store) ClearRuns(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	for _, q := range []string{
		`DELETE FROM runs WHERE game_id = ?`,
		`DELETE FROM high_scores WHERE game_id = ?`,
	} {
		if _, err := tx.Exec(q, gameID); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: clear %s: %w", gameID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

// GameStats aggregates every stored run of one game.
type GameStats struct {
	GameID     string
	RunsCount  int
	Wins       int
	HighScore  int
	AvgScore   float64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// GetAllGamesStats returns stats keyed by game ID for games with runs.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`
		SELECT game_id, COUNT(*), SUM(outcome = 'win'), MAX(score), AVG(score),
		       SUM(duration_secs), MAX(created_at)
		FROM runs GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st       GameStats
			secs, at int64
		)
		if err := rows.Scan(&st.GameID, &st.RunsCount, &st.Wins, &st.HighScore, &st.AvgScore, &secs, &at); err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		st.TotalTime = time.Duration(secs) * time.Second
		st.LastPlayed = time.Unix(at, 0)
		stats[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	return stats, nil
}
